package dispatcher

import (
	"context"
	stderrors "errors"
	"sort"
	"sync"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/metrics"

	"github.com/juju/clock"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/core-tools/hsu-sjw/pkg/dispatcher"

type Config struct {
	OperationTimeout time.Duration `yaml:"operation_timeout"`
	RecheckWait      time.Duration `yaml:"recheck_wait"`
}

func DefaultConfig() Config {
	return Config{
		OperationTimeout: 30 * time.Second,
		RecheckWait:      5 * time.Second,
	}
}

// UnitState is the per-unit admission state.
type UnitState string

const (
	UnitStateIdle    UnitState = "idle"
	UnitStatePending UnitState = "pending"
)

// PendingOperation marks an in-flight mutating command on a unit.
type PendingOperation struct {
	UnitID      string
	Operation   domain.Operation
	ClientToken string
	StartedAt   time.Time
}

type UnitLookup interface {
	Get(id string) (domain.Unit, error)
}

type Mutator interface {
	Mutate(ctx context.Context, id string, op domain.Operation) error
}

type Rechecker interface {
	Trigger(id string) <-chan struct{}
}

type Options struct {
	Clock  clock.Clock
	Tracer trace.Tracer
}

// Dispatcher admits at most one mutating operation per unit, runs it against
// the service manager and forces a re-check of the unit afterwards.
type Dispatcher struct {
	config    Config
	units     UnitLookup
	mutator   Mutator
	rechecker Rechecker
	clock     clock.Clock
	tracer    trace.Tracer
	logger    logging.Logger

	pending map[string]*PendingOperation
	mutex   sync.Mutex
}

func NewDispatcher(config Config, units UnitLookup, mutator Mutator, rechecker Rechecker, options Options, logger logging.Logger) *Dispatcher {
	defaults := DefaultConfig()
	if config.OperationTimeout <= 0 {
		config.OperationTimeout = defaults.OperationTimeout
	}
	if config.RecheckWait <= 0 {
		config.RecheckWait = defaults.RecheckWait
	}
	if options.Clock == nil {
		options.Clock = clock.WallClock
	}
	if options.Tracer == nil {
		options.Tracer = otel.Tracer(tracerName)
	}

	return &Dispatcher{
		config:    config,
		units:     units,
		mutator:   mutator,
		rechecker: rechecker,
		clock:     options.Clock,
		tracer:    options.Tracer,
		logger:    logger,
		pending:   make(map[string]*PendingOperation),
	}
}

// Execute runs op on unit id. It returns once the operation finished and the
// forced re-check completed or timed out, so a following query reflects the
// state the service manager reported.
func (d *Dispatcher) Execute(ctx context.Context, id string, op domain.Operation) error {
	ctx, span := d.tracer.Start(ctx, "sjw.dispatch", trace.WithAttributes(
		attribute.String("sjw.unit_id", id),
		attribute.String("sjw.operation", string(op)),
	))
	defer span.End()

	start := d.clock.Now()
	err := d.execute(ctx, id, op)
	metrics.RecordDispatch(string(op), resultLabel(err), d.clock.Now().Sub(start))

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func (d *Dispatcher) execute(ctx context.Context, id string, op domain.Operation) error {
	if !op.Valid() {
		return errors.NewValidationError("invalid operation", nil).WithContext("operation", string(op))
	}
	if _, err := d.units.Get(id); err != nil {
		return err
	}

	pending, err := d.admit(id, op, domain.ClientToken(ctx))
	if err != nil {
		return err
	}
	trace.SpanFromContext(ctx).SetAttributes(attribute.String("sjw.client_token", pending.ClientToken))
	d.logger.Infof("Dispatching %s on unit %s, client: %s", op, id, pending.ClientToken)

	timedOut, mutateErr := d.mutate(ctx, id, op)

	// Always leave Pending and re-check, whatever the outcome
	recheck := d.rechecker.Trigger(id)
	d.release(id, pending)
	d.waitRecheck(ctx, id, recheck)

	if mutateErr != nil {
		d.logger.Warnf("Operation %s on unit %s failed: %v", op, id, mutateErr)
		return mapError(id, op, mutateErr, timedOut)
	}
	d.logger.Infof("Operation %s on unit %s done in %v", op, id, d.clock.Now().Sub(pending.StartedAt))
	return nil
}

// mutate is bounded only by the operation timeout. A caller that goes away
// does not end it, so the unit stays Pending while the job may still run.
func (d *Dispatcher) mutate(ctx context.Context, id string, op domain.Operation) (timedOut bool, err error) {
	mutateCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.config.OperationTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			err = errors.NewInternalError("mutate panicked", nil).WithContext("panic", r)
		}
	}()

	err = d.mutator.Mutate(mutateCtx, id, op)
	timedOut = stderrors.Is(mutateCtx.Err(), context.DeadlineExceeded)
	return timedOut, err
}

// admit moves a unit from Idle to Pending, rejecting when it is not Idle.
func (d *Dispatcher) admit(id string, op domain.Operation, clientToken string) (*PendingOperation, error) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if existing, busy := d.pending[id]; busy {
		return nil, errors.NewBusyError("another operation is pending on the unit", nil).
			WithContext("unit_id", id).
			WithContext("pending_operation", string(existing.Operation)).
			WithContext("pending_since", existing.StartedAt)
	}

	pending := &PendingOperation{
		UnitID:      id,
		Operation:   op,
		ClientToken: clientToken,
		StartedAt:   d.clock.Now(),
	}
	d.pending[id] = pending
	metrics.AddPending(1)
	return pending, nil
}

func (d *Dispatcher) release(id string, pending *PendingOperation) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if d.pending[id] == pending {
		delete(d.pending, id)
		metrics.AddPending(-1)
	}
}

func (d *Dispatcher) waitRecheck(ctx context.Context, id string, recheck <-chan struct{}) {
	select {
	case <-recheck:
	case <-d.clock.After(d.config.RecheckWait):
		d.logger.Warnf("Re-check of unit %s did not complete within %v", id, d.config.RecheckWait)
	case <-ctx.Done():
	}
}

func mapError(id string, op domain.Operation, err error, timedOut bool) error {
	switch {
	case timedOut || errors.IsTimeoutError(err) || stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewTimeoutError("operation timed out", err).
			WithContext("unit_id", id).
			WithContext("operation", string(op))
	case errors.IsNotFoundError(err):
		return errors.NewNotFoundError("unit not found by service manager", err).WithContext("unit_id", id)
	case errors.IsValidationError(err), errors.IsCancelledError(err), errors.IsAdapterFailureError(err):
		return err
	case stderrors.Is(err, context.Canceled):
		return errors.NewCancelledError("operation cancelled", err).WithContext("unit_id", id)
	default:
		return errors.NewAdapterFailureError("operation failed", err).
			WithContext("unit_id", id).
			WithContext("operation", string(op))
	}
}

func resultLabel(err error) string {
	if err == nil {
		return "ok"
	}
	if t := errors.TypeOf(err); t != "" {
		return string(t)
	}
	return "error"
}

// State returns the admission state of a unit.
func (d *Dispatcher) State(id string) UnitState {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	if _, busy := d.pending[id]; busy {
		return UnitStatePending
	}
	return UnitStateIdle
}

// Pending returns a snapshot of open operations ordered by unit ID.
func (d *Dispatcher) Pending() []PendingOperation {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	ops := make([]PendingOperation, 0, len(d.pending))
	for _, op := range d.pending {
		ops = append(ops, *op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i].UnitID < ops[j].UnitID })
	return ops
}
