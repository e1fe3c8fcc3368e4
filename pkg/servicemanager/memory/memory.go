package memory

import (
	"context"
	"sync"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
	"github.com/core-tools/hsu-sjw/pkg/servicemanager"
)

type unitRecord struct {
	name        string
	description string
	status      domain.Status
}

// Adapter is an in-process service manager. Mutations apply immediately
// unless blocked; used by tests and the memory backend of the daemon.
type Adapter struct {
	units    map[string]*unitRecord
	order    []string
	failNext map[string]error
	blockers map[string]chan struct{}
	watchers []chan string
	calls    map[string]int
	mutex    sync.Mutex
}

func NewAdapter() *Adapter {
	return &Adapter{
		units:    make(map[string]*unitRecord),
		failNext: make(map[string]error),
		blockers: make(map[string]chan struct{}),
		calls:    make(map[string]int),
	}
}

// NewAdapterFromCatalog seeds an adapter with every configured unit, inactive
// and disabled.
func NewAdapterFromCatalog(catalog *servicemanager.Catalog) *Adapter {
	a := NewAdapter()
	for _, spec := range catalog.Configured() {
		a.SetUnit(spec.ID, spec.Name, spec.Name, domain.Status{State: domain.UnitStateInactive, SubState: "dead"})
	}
	return a
}

// SetUnit adds or replaces a unit.
func (a *Adapter) SetUnit(id, name, description string, status domain.Status) {
	a.mutex.Lock()
	if _, exists := a.units[id]; !exists {
		a.order = append(a.order, id)
	}
	a.units[id] = &unitRecord{name: name, description: description, status: status}
	a.mutex.Unlock()

	a.notify(id)
}

// SetStatus changes the status reported for an existing unit.
func (a *Adapter) SetStatus(id string, status domain.Status) {
	a.mutex.Lock()
	unit, exists := a.units[id]
	if exists {
		unit.status = status
	}
	a.mutex.Unlock()

	if exists {
		a.notify(id)
	}
}

// Remove makes the unit vanish from listings and queries.
func (a *Adapter) Remove(id string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	delete(a.units, id)
	for i, existing := range a.order {
		if existing == id {
			a.order = append(a.order[:i], a.order[i+1:]...)
			break
		}
	}
}

// FailNext makes the next call of the given kind ("list", "query:<id>",
// "mutate:<id>") return err.
func (a *Adapter) FailNext(call string, err error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	a.failNext[call] = err
}

// Block makes Mutate on id wait until the returned release func is called
// or the call context ends.
func (a *Adapter) Block(id string) (release func()) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	ch := make(chan struct{})
	a.blockers[id] = ch
	var once sync.Once
	return func() {
		once.Do(func() {
			a.mutex.Lock()
			if a.blockers[id] == ch {
				delete(a.blockers, id)
			}
			a.mutex.Unlock()
			close(ch)
		})
	}
}

// Calls returns how many times a call kind was made.
func (a *Adapter) Calls(call string) int {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	return a.calls[call]
}

func (a *Adapter) takeFailure(call string) error {
	a.calls[call]++
	err, exists := a.failNext[call]
	if !exists {
		return nil
	}
	delete(a.failNext, call)
	return err
}

func (a *Adapter) List(ctx context.Context) ([]servicemanager.UnitInfo, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.takeFailure("list"); err != nil {
		return nil, err
	}

	infos := make([]servicemanager.UnitInfo, 0, len(a.order))
	for _, id := range a.order {
		infos = append(infos, servicemanager.UnitInfo{ID: id, Observation: a.units[id].observation()})
	}
	return infos, nil
}

func (a *Adapter) Query(ctx context.Context, id string) (domain.Observation, error) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	if err := a.takeFailure("query:" + id); err != nil {
		return domain.Observation{}, err
	}
	unit, exists := a.units[id]
	if !exists {
		return domain.Observation{}, errors.NewNotFoundError("unit not found", nil).WithContext("unit_id", id)
	}
	return unit.observation(), nil
}

func (u *unitRecord) observation() domain.Observation {
	return domain.Observation{
		Name:        u.name,
		Description: u.description,
		Status:      u.status,
	}
}

func (a *Adapter) Mutate(ctx context.Context, id string, op domain.Operation) error {
	a.mutex.Lock()
	if err := a.takeFailure("mutate:" + id); err != nil {
		a.mutex.Unlock()
		return err
	}
	blocker := a.blockers[id]
	a.mutex.Unlock()

	if blocker != nil {
		select {
		case <-blocker:
		case <-ctx.Done():
			return errors.NewTimeoutError("mutate", ctx.Err()).WithContext("unit_id", id)
		}
	}

	a.mutex.Lock()
	unit, exists := a.units[id]
	if !exists {
		a.mutex.Unlock()
		return errors.NewNotFoundError("unit not found", nil).WithContext("unit_id", id)
	}
	switch op {
	case domain.OperationStart, domain.OperationRestart:
		unit.status.State = domain.UnitStateActive
		unit.status.SubState = "running"
	case domain.OperationStop:
		unit.status.State = domain.UnitStateInactive
		unit.status.SubState = "dead"
	case domain.OperationEnable:
		unit.status.Enabled = true
		unit.status.UnitFileState = "enabled"
	case domain.OperationDisable:
		unit.status.Enabled = false
		unit.status.UnitFileState = "disabled"
	default:
		a.mutex.Unlock()
		return errors.NewValidationError("unsupported operation", nil).WithContext("operation", string(op))
	}
	a.mutex.Unlock()

	a.notify(id)
	return nil
}

// Watch reports every unit touched through SetUnit, SetStatus or Mutate.
func (a *Adapter) Watch(ctx context.Context) (<-chan string, error) {
	ch := make(chan string, 64)

	a.mutex.Lock()
	a.watchers = append(a.watchers, ch)
	a.mutex.Unlock()

	go func() {
		<-ctx.Done()
		a.mutex.Lock()
		defer a.mutex.Unlock()
		for i, existing := range a.watchers {
			if existing == ch {
				a.watchers = append(a.watchers[:i], a.watchers[i+1:]...)
				break
			}
		}
		close(ch)
	}()
	return ch, nil
}

func (a *Adapter) notify(id string) {
	a.mutex.Lock()
	defer a.mutex.Unlock()

	for _, ch := range a.watchers {
		select {
		case ch <- id:
		default:
		}
	}
}

func (a *Adapter) Close() error {
	return nil
}
