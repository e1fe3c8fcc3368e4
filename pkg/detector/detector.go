package detector

import (
	"context"
	"sync"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"
	"github.com/core-tools/hsu-sjw/pkg/registry"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"

	"github.com/juju/clock"
	"golang.org/x/sync/errgroup"
)

const (
	sourceTick    = "tick"
	sourceRescan  = "rescan"
	sourceTrigger = "trigger"
	sourceStartup = "startup"
)

type Config struct {
	PollInterval         time.Duration `yaml:"poll_interval"`
	AdapterTimeout       time.Duration `yaml:"adapter_timeout"`
	MaxConcurrentQueries int           `yaml:"max_concurrent_queries"`
}

func DefaultConfig() Config {
	return Config{
		PollInterval:         2 * time.Second,
		AdapterTimeout:       5 * time.Second,
		MaxConcurrentQueries: 8,
	}
}

// UnitSource is the read side of the service manager adapter.
type UnitSource interface {
	List(ctx context.Context) ([]servicemanager.UnitInfo, error)
	Query(ctx context.Context, id string) (domain.Observation, error)
}

type Publisher interface {
	Publish(record domain.ChangeRecord)
}

// Detector polls the service manager, applies observations to the registry
// and publishes a ChangeRecord for every confirmed change. Ticks, rescans and
// triggers are merged by one scheduler goroutine; cycles never overlap.
type Detector struct {
	config    Config
	source    UnitSource
	registry  *registry.Registry
	publisher Publisher
	clock     clock.Clock
	logger    logging.Logger

	tracked map[string]bool
	order   []string // tracked IDs in listing order
	pending map[string]chan struct{}
	stopped bool
	mutex   sync.Mutex

	cycleMutex sync.Mutex
	triggerCh  chan struct{}
	rescanCh   chan struct{}
}

func NewDetector(config Config, source UnitSource, registry *registry.Registry, publisher Publisher, clk clock.Clock, logger logging.Logger) *Detector {
	defaults := DefaultConfig()
	if config.PollInterval <= 0 {
		config.PollInterval = defaults.PollInterval
	}
	if config.AdapterTimeout <= 0 {
		config.AdapterTimeout = defaults.AdapterTimeout
	}
	if config.MaxConcurrentQueries <= 0 {
		config.MaxConcurrentQueries = defaults.MaxConcurrentQueries
	}
	if clk == nil {
		clk = clock.WallClock
	}

	return &Detector{
		config:    config,
		source:    source,
		registry:  registry,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
		tracked:   make(map[string]bool),
		pending:   make(map[string]chan struct{}),
		triggerCh: make(chan struct{}, 1),
		rescanCh:  make(chan struct{}, 1),
	}
}

// Trigger requests an off-cycle poll of one unit. The returned channel is
// closed once an observation of the unit that started after this call has
// been applied. Triggers for the same unit before that poll runs share the
// channel.
func (d *Detector) Trigger(id string) <-chan struct{} {
	d.mutex.Lock()
	if d.stopped {
		d.mutex.Unlock()
		done := make(chan struct{})
		close(done)
		return done
	}
	done, exists := d.pending[id]
	if !exists {
		done = make(chan struct{})
		d.pending[id] = done
	}
	d.mutex.Unlock()

	select {
	case d.triggerCh <- struct{}{}:
	default:
	}
	return done
}

// Rescan requests an off-cycle full cycle. Coalesced with any rescan not yet
// started.
func (d *Detector) Rescan() {
	select {
	case d.rescanCh <- struct{}{}:
	default:
	}
}

// Notify routes a change hint: tracked units get a trigger, anything else
// a rescan so discovery can pick it up.
func (d *Detector) Notify(id string) {
	d.mutex.Lock()
	tracked := d.tracked[id]
	d.mutex.Unlock()

	if tracked {
		d.Trigger(id)
		return
	}
	d.Rescan()
}

// Run drives the scheduler until ctx is done.
func (d *Detector) Run(ctx context.Context) error {
	d.logger.Infof("Detector running, poll_interval: %v, adapter_timeout: %v, max_concurrent_queries: %d",
		d.config.PollInterval, d.config.AdapterTimeout, d.config.MaxConcurrentQueries)

	timer := d.clock.NewTimer(d.config.PollInterval)
	defer timer.Stop()
	defer d.releasePending()

	for {
		select {
		case <-ctx.Done():
			d.logger.Infof("Detector stopped")
			return nil
		case <-timer.Chan():
			d.runCycle(ctx, sourceTick)
			timer.Reset(d.config.PollInterval)
		case <-d.rescanCh:
			d.runCycle(ctx, sourceRescan)
		case <-d.triggerCh:
			d.runTriggered(ctx)
		}
	}
}

// PollNow runs one full cycle synchronously.
func (d *Detector) PollNow(ctx context.Context) {
	d.runCycle(ctx, sourceStartup)
}

func (d *Detector) runCycle(ctx context.Context, source string) {
	d.cycleMutex.Lock()
	defer d.cycleMutex.Unlock()

	start := d.clock.Now()

	listCtx, cancel := context.WithTimeout(ctx, d.config.AdapterTimeout)
	infos, err := d.source.List(listCtx)
	cancel()
	if err != nil {
		// Discovery and removal wait for the next successful listing
		metrics.RecordPollError("list")
		d.logger.Warnf("Listing units failed, source: %s, error: %v", source, err)
	} else {
		d.reconcile(infos)
	}

	d.pollUnits(ctx, d.trackedIDs())

	metrics.RecordCycle(source, d.clock.Now().Sub(start))
	metrics.SetUnitsTracked(d.registry.Len())
}

func (d *Detector) runTriggered(ctx context.Context) {
	d.cycleMutex.Lock()
	defer d.cycleMutex.Unlock()

	// Swap the pending set; triggers arriving from here on get a new poll
	d.mutex.Lock()
	pending := d.pending
	d.pending = make(map[string]chan struct{})
	d.mutex.Unlock()

	if len(pending) == 0 {
		return
	}

	start := d.clock.Now()
	ids := make([]string, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}

	d.pollUnits(ctx, ids)

	for _, done := range pending {
		close(done)
	}
	metrics.RecordCycle(sourceTrigger, d.clock.Now().Sub(start))
}

// reconcile tracks newly listed units and marks vanished ones removed.
func (d *Detector) reconcile(infos []servicemanager.UnitInfo) {
	present := make(map[string]bool, len(infos))
	for _, info := range infos {
		present[info.ID] = true
	}

	d.mutex.Lock()
	vanished := make([]string, 0)
	for id := range d.tracked {
		if !present[id] {
			vanished = append(vanished, id)
		}
	}
	for _, info := range infos {
		if !d.tracked[info.ID] {
			d.logger.Infof("Tracking unit %s (%s)", info.ID, info.Observation.Name)
			d.tracked[info.ID] = true
			d.order = append(d.order, info.ID)
		}
	}
	d.mutex.Unlock()

	for _, id := range vanished {
		d.markRemoved(id)
	}
}

func (d *Detector) trackedIDs() []string {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	ids := make([]string, len(d.order))
	copy(ids, d.order)
	return ids
}

// pollUnits queries ids concurrently, then applies the results in ids
// order so units enter the registry in listing order. Failures are isolated
// per unit and summarized in one log line.
func (d *Detector) pollUnits(ctx context.Context, ids []string) {
	observations := make([]domain.Observation, len(ids))
	queryErrors := make([]error, len(ids))

	var group errgroup.Group
	group.SetLimit(d.config.MaxConcurrentQueries)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			observations[i], queryErrors[i] = d.query(ctx, id)
			return nil
		})
	}
	_ = group.Wait()

	failures := errors.NewErrorCollection()
	for i, id := range ids {
		switch err := queryErrors[i]; {
		case err == nil:
			d.apply(id, observations[i])
		case errors.IsNotFoundError(err):
			d.markRemoved(id)
		default:
			failures.Add(err)
		}
	}

	if failures.HasErrors() {
		d.logger.Warnf("Poll of %d units had failures: %v", len(ids), failures)
	}
}

func (d *Detector) query(ctx context.Context, id string) (domain.Observation, error) {
	queryCtx, cancel := context.WithTimeout(ctx, d.config.AdapterTimeout)
	defer cancel()

	observation, err := d.source.Query(queryCtx, id)
	if err == nil || errors.IsNotFoundError(err) {
		return observation, err
	}
	metrics.RecordPollError("query")
	if queryCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		return domain.Observation{}, errors.NewTimeoutError("query unit", err).WithContext("unit_id", id)
	}
	return domain.Observation{}, err
}

// apply updates the registry first and publishes only after it succeeded.
func (d *Detector) apply(id string, observation domain.Observation) {
	observedAt := d.clock.Now()
	result, err := d.registry.Upsert(id, observation, observedAt)
	if err != nil {
		d.logger.Errorf("Registry update failed, unit: %s, error: %v", id, err)
		return
	}
	if !result.Changed {
		return
	}

	d.logger.Infof("Unit %s changed, %s/%s -> %s/%s, enabled: %t",
		id, result.Previous.State, result.Previous.SubState,
		result.Current.Status.State, result.Current.Status.SubState, result.Current.Status.Enabled)

	metrics.RecordChange()
	d.publisher.Publish(domain.ChangeRecord{
		UnitID:     id,
		Previous:   result.Previous,
		New:        result.Current.Status,
		ObservedAt: observedAt,
	})
}

// markRemoved keeps a vanished unit in the registry as unknown/removed and
// stops tracking it until it is listed again.
func (d *Detector) markRemoved(id string) {
	d.mutex.Lock()
	wasTracked := d.tracked[id]
	if wasTracked {
		delete(d.tracked, id)
		for i, tracked := range d.order {
			if tracked == id {
				d.order = append(d.order[:i], d.order[i+1:]...)
				break
			}
		}
	}
	d.mutex.Unlock()

	existing, err := d.registry.Get(id)
	if err != nil {
		return
	}
	if existing.Status.IsRemoved() {
		return
	}
	if wasTracked {
		d.logger.Warnf("Unit %s vanished from the service manager", id)
	}

	d.apply(id, domain.Observation{
		Status: domain.Status{State: domain.UnitStateUnknown, SubState: domain.SubStateRemoved},
	})
}

// releasePending wakes every trigger waiter on shutdown.
func (d *Detector) releasePending() {
	d.mutex.Lock()
	d.stopped = true
	pending := d.pending
	d.pending = make(map[string]chan struct{})
	d.mutex.Unlock()

	for _, done := range pending {
		close(done)
	}
}
