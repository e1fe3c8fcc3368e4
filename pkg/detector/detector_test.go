package detector

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/registry"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager/memory"

	"github.com/juju/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type recordingPublisher struct {
	records []domain.ChangeRecord
	mutex   sync.Mutex
}

func (p *recordingPublisher) Publish(record domain.ChangeRecord) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.records = append(p.records, record)
}

func (p *recordingPublisher) take() []domain.ChangeRecord {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	records := p.records
	p.records = nil
	return records
}

func (p *recordingPublisher) count() int {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	return len(p.records)
}

type fixture struct {
	adapter   *memory.Adapter
	registry  *registry.Registry
	publisher *recordingPublisher
	detector  *Detector
}

func newFixture(interval time.Duration) *fixture {
	f := &fixture{
		adapter:   memory.NewAdapter(),
		registry:  registry.NewRegistry(),
		publisher: &recordingPublisher{},
	}
	f.detector = NewDetector(Config{
		PollInterval:         interval,
		AdapterTimeout:       time.Second,
		MaxConcurrentQueries: 4,
	}, f.adapter, f.registry, f.publisher, clock.WallClock, logging.NewNopLogger())
	return f
}

func (f *fixture) run(t *testing.T) (stop func()) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		assert.NoError(t, f.detector.Run(ctx))
	}()
	return func() {
		cancel()
		<-done
	}
}

func active() domain.Status {
	return domain.Status{State: domain.UnitStateActive, SubState: "running", Enabled: true}
}

func inactive() domain.Status {
	return domain.Status{State: domain.UnitStateInactive, SubState: "dead"}
}

func TestDetector_ScenarioUnitFails(t *testing.T) {
	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.adapter.SetUnit("b", "b.service", "unit b", inactive())

	f.detector.PollNow(context.Background())
	initial := f.publisher.take()
	require.Len(t, initial, 2)
	assert.Equal(t, "a", initial[0].UnitID)
	assert.Equal(t, "b", initial[1].UnitID)
	for _, record := range initial {
		assert.Equal(t, domain.UnitStateUnknown, record.Previous.State)
	}

	f.adapter.SetStatus("a", domain.Status{State: domain.UnitStateFailed, SubState: "failed", Enabled: true})
	f.detector.PollNow(context.Background())

	records := f.publisher.take()
	require.Len(t, records, 1)
	assert.Equal(t, "a", records[0].UnitID)
	assert.Equal(t, domain.UnitStateActive, records[0].Previous.State)
	assert.Equal(t, domain.UnitStateFailed, records[0].New.State)
	assert.Equal(t, "sjw.unit.a", records[0].Topic())
	assert.False(t, records[0].ObservedAt.IsZero())

	units := f.registry.List()
	require.Len(t, units, 2)
	assert.Equal(t, "a", units[0].ID)
	assert.Equal(t, domain.UnitStateFailed, units[0].Status.State)
	assert.Equal(t, "b", units[1].ID)
	assert.Equal(t, domain.UnitStateInactive, units[1].Status.State)
}

// staggeredSource answers queries for earlier listed units last.
type staggeredSource struct {
	*memory.Adapter
	delays map[string]time.Duration
}

func (s *staggeredSource) Query(ctx context.Context, id string) (domain.Observation, error) {
	select {
	case <-time.After(s.delays[id]):
	case <-ctx.Done():
		return domain.Observation{}, ctx.Err()
	}
	return s.Adapter.Query(ctx, id)
}

func TestDetector_RegistryFollowsListingOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	ids := []string{"a", "b", "c", "d", "e"}
	for _, concurrency := range []int{1, len(ids)} {
		t.Run(fmt.Sprintf("concurrency=%d", concurrency), func(t *testing.T) {
			adapter := memory.NewAdapter()
			source := &staggeredSource{Adapter: adapter, delays: map[string]time.Duration{}}
			for i, id := range ids {
				adapter.SetUnit(id, id+".service", "", active())
				source.delays[id] = time.Duration(len(ids)-i) * 10 * time.Millisecond
			}

			reg := registry.NewRegistry()
			publisher := &recordingPublisher{}
			detector := NewDetector(Config{
				PollInterval:         time.Minute,
				AdapterTimeout:       time.Second,
				MaxConcurrentQueries: concurrency,
			}, source, reg, publisher, clock.WallClock, logging.NewNopLogger())

			detector.PollNow(context.Background())
			assert.Equal(t, ids, reg.IDs())

			published := make([]string, 0, len(ids))
			for _, record := range publisher.take() {
				published = append(published, record.UnitID)
			}
			assert.Equal(t, ids, published)

			listed := make([]string, 0, len(ids))
			for _, unit := range reg.List() {
				listed = append(listed, unit.ID)
			}
			assert.Equal(t, ids, listed)

			adapter.SetUnit("late", "late.service", "", inactive())
			source.delays["late"] = 0
			detector.PollNow(context.Background())
			assert.Equal(t, append(append([]string{}, ids...), "late"), reg.IDs())
		})
	}
}

func TestDetector_SteadyStateEmitsNothing(t *testing.T) {
	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())

	f.detector.PollNow(context.Background())
	f.publisher.take()

	for i := 0; i < 5; i++ {
		f.detector.PollNow(context.Background())
	}
	assert.Equal(t, 0, f.publisher.count())
}

func TestDetector_RemovalAndReappearance(t *testing.T) {
	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.detector.PollNow(context.Background())
	f.publisher.take()

	f.adapter.Remove("a")
	f.detector.PollNow(context.Background())

	records := f.publisher.take()
	require.Len(t, records, 1)
	assert.True(t, records[0].New.IsRemoved())

	unit, err := f.registry.Get("a")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStateUnknown, unit.Status.State)
	assert.Equal(t, domain.SubStateRemoved, unit.Status.SubState)
	assert.Equal(t, "a.service", unit.Name)

	// Published once only
	f.detector.PollNow(context.Background())
	assert.Equal(t, 0, f.publisher.count())

	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.detector.PollNow(context.Background())
	records = f.publisher.take()
	require.Len(t, records, 1)
	assert.True(t, records[0].Previous.IsRemoved())
	assert.Equal(t, domain.UnitStateActive, records[0].New.State)
}

func TestDetector_QueryFailureIsIsolated(t *testing.T) {
	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.adapter.SetUnit("b", "b.service", "unit b", inactive())
	f.detector.PollNow(context.Background())
	f.publisher.take()

	f.adapter.SetStatus("a", inactive())
	f.adapter.SetStatus("b", active())
	f.adapter.FailNext("query:a", fmt.Errorf("bus timeout"))
	f.detector.PollNow(context.Background())

	records := f.publisher.take()
	require.Len(t, records, 1)
	assert.Equal(t, "b", records[0].UnitID)

	unit, err := f.registry.Get("a")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStateActive, unit.Status.State)
}

func TestDetector_ListFailureStillPollsTrackedUnits(t *testing.T) {
	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.detector.PollNow(context.Background())
	f.publisher.take()

	f.adapter.SetStatus("a", inactive())
	f.adapter.FailNext("list", fmt.Errorf("list failed"))
	f.detector.PollNow(context.Background())

	records := f.publisher.take()
	require.Len(t, records, 1)
	assert.Equal(t, domain.UnitStateInactive, records[0].New.State)
}

func TestDetector_TriggerCoalesces(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", active())
	f.detector.PollNow(context.Background())
	require.Equal(t, 1, f.adapter.Calls("query:a"))

	first := f.detector.Trigger("a")
	second := f.detector.Trigger("a")
	assert.True(t, first == second)

	stop := f.run(t)
	defer stop()

	select {
	case <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("trigger did not complete")
	}
	assert.Equal(t, 2, f.adapter.Calls("query:a"))

	// A trigger after completion gets its own poll
	third := f.detector.Trigger("a")
	assert.False(t, third == first)
	<-third
	assert.Equal(t, 3, f.adapter.Calls("query:a"))
}

func TestDetector_TriggerAppliesBeforeCompletion(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(time.Minute)
	f.adapter.SetUnit("a", "a.service", "unit a", inactive())
	f.detector.PollNow(context.Background())
	f.publisher.take()

	stop := f.run(t)
	defer stop()

	f.adapter.SetStatus("a", active())
	<-f.detector.Trigger("a")

	unit, err := f.registry.Get("a")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStateActive, unit.Status.State)
	assert.Equal(t, 1, f.publisher.count())
}

func TestDetector_PeriodicPoll(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(10 * time.Millisecond)
	f.adapter.SetUnit("a", "a.service", "unit a", inactive())

	stop := f.run(t)
	defer stop()

	assert.Eventually(t, func() bool {
		unit, err := f.registry.Get("a")
		return err == nil && unit.Status.State == domain.UnitStateInactive
	}, 5*time.Second, 5*time.Millisecond)

	f.adapter.SetStatus("a", active())
	assert.Eventually(t, func() bool {
		unit, _ := f.registry.Get("a")
		return unit.Status.State == domain.UnitStateActive
	}, 5*time.Second, 5*time.Millisecond)
}

func TestDetector_RescanDiscovers(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(time.Minute)
	stop := f.run(t)
	defer stop()

	f.adapter.SetUnit("new", "new.service", "new unit", active())
	f.detector.Notify("new")

	assert.Eventually(t, func() bool {
		_, err := f.registry.Get("new")
		return err == nil
	}, 5*time.Second, 5*time.Millisecond)
}

func TestDetector_TriggerAfterStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newFixture(time.Minute)
	pending := f.detector.Trigger("a")

	stop := f.run(t)
	stop()

	<-pending
	<-f.detector.Trigger("b")
}
