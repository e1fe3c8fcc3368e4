package daemon

import (
	"context"
	"sync"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/dispatcher"
	"github.com/core-tools/hsu-sjw/pkg/distributor"
	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/logtail"
	"github.com/core-tools/hsu-sjw/pkg/registry"
)

var _ domain.Contract = (*UnitHandler)(nil)

// UnitHandler serves the client contract: reads go to the registry, mutations
// to the dispatcher, subscriptions to the distributor and logs to the tailer.
type UnitHandler struct {
	registry    *registry.Registry
	dispatcher  *dispatcher.Dispatcher
	distributor *distributor.Distributor
	logs        logtail.Streamer
	logger      logging.Logger
	done        chan struct{}
	closeOnce   sync.Once
}

func NewUnitHandler(registry *registry.Registry, dispatcher *dispatcher.Dispatcher, distributor *distributor.Distributor,
	logs logtail.Streamer, logger logging.Logger) *UnitHandler {
	return &UnitHandler{
		registry:    registry,
		dispatcher:  dispatcher,
		distributor: distributor,
		logs:        logs,
		logger:      logger,
		done:        make(chan struct{}),
	}
}

// Close ends every open log stream. Subscriptions end with the distributor.
func (h *UnitHandler) Close() {
	h.closeOnce.Do(func() {
		close(h.done)
	})
}

func (h *UnitHandler) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return h.registry.List(), nil
}

func (h *UnitHandler) Query(ctx context.Context, id string) (domain.Unit, error) {
	return h.registry.Get(id)
}

func (h *UnitHandler) Start(ctx context.Context, id string) (bool, error) {
	return h.execute(ctx, id, domain.OperationStart)
}

func (h *UnitHandler) Stop(ctx context.Context, id string) (bool, error) {
	return h.execute(ctx, id, domain.OperationStop)
}

func (h *UnitHandler) Restart(ctx context.Context, id string) (bool, error) {
	return h.execute(ctx, id, domain.OperationRestart)
}

func (h *UnitHandler) Enable(ctx context.Context, id string) (bool, error) {
	return h.execute(ctx, id, domain.OperationEnable)
}

func (h *UnitHandler) Disable(ctx context.Context, id string) (bool, error) {
	return h.execute(ctx, id, domain.OperationDisable)
}

func (h *UnitHandler) execute(ctx context.Context, id string, op domain.Operation) (bool, error) {
	if err := h.dispatcher.Execute(ctx, id, op); err != nil {
		return false, err
	}
	return true, nil
}

func (h *UnitHandler) Subscribe(ctx context.Context, topic string, fn func(domain.Event) error) error {
	sub, err := h.distributor.Subscribe(topic)
	if err != nil {
		return err
	}
	defer h.distributor.Unsubscribe(sub)

	h.logger.Infof("Subscriber attached, topic: %s, subscription: %s", topic, sub.ID())

	for {
		select {
		case <-ctx.Done():
			h.logger.Infof("Subscriber detached, topic: %s, subscription: %s", topic, sub.ID())
			return nil
		case event, ok := <-sub.Events():
			if !ok {
				h.logger.Warnf("Subscription closed, topic: %s, subscription: %s: %v", topic, sub.ID(), sub.Err())
				return sub.Err()
			}
			if err := fn(event); err != nil {
				return err
			}
		}
	}
}

func (h *UnitHandler) Logs(ctx context.Context, id string, since time.Time, fn func(domain.LogEntry) error) error {
	if _, err := h.registry.Get(id); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	entries, err := h.logs.Stream(ctx, id, since)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-h.done:
			return errors.NewCancelledError("daemon is stopping", nil)
		case entry, ok := <-entries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.NewAdapterFailureError("log stream ended unexpectedly", nil).WithContext("unit_id", id)
			}
			if err := fn(entry); err != nil {
				return err
			}
		}
	}
}
