package registry

import (
	"sync"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"
)

// UpsertResult describes the outcome of applying one observation.
type UpsertResult struct {
	Changed  bool
	Created  bool
	Previous domain.Status
	Current  domain.Unit
}

// Registry is the in-memory table of units and their last observed status.
// Upsert is the only mutator; readers always receive copies.
type Registry struct {
	units map[string]*domain.Unit
	order []string // insertion order of first observation
	mutex sync.RWMutex
}

func NewRegistry() *Registry {
	return &Registry{
		units: make(map[string]*domain.Unit),
		order: make([]string, 0),
	}
}

func (r *Registry) Get(id string) (domain.Unit, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	unit, exists := r.units[id]
	if !exists {
		return domain.Unit{}, errors.NewNotFoundError("unit not found", nil).WithContext("unit_id", id)
	}
	return *unit, nil
}

// List returns a snapshot of all units in the order they were first observed.
func (r *Registry) List() []domain.Unit {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	units := make([]domain.Unit, 0, len(r.order))
	for _, id := range r.order {
		units = append(units, *r.units[id])
	}
	return units
}

func (r *Registry) IDs() []string {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	ids := make([]string, len(r.order))
	copy(ids, r.order)
	return ids
}

func (r *Registry) Len() int {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return len(r.order)
}

// Upsert applies an observation taken at observedAt. A unit seen for the
// first time is compared against the implicit unknown baseline.
func (r *Registry) Upsert(id string, observation domain.Observation, observedAt time.Time) (UpsertResult, error) {
	if id == "" {
		return UpsertResult{}, errors.NewValidationError("unit ID cannot be empty", nil)
	}

	r.mutex.Lock()
	defer r.mutex.Unlock()

	unit, exists := r.units[id]
	if !exists {
		unit = &domain.Unit{
			ID:     id,
			Status: domain.Status{State: domain.UnitStateUnknown},
		}
		r.units[id] = unit
		r.order = append(r.order, id)
	}

	previous := unit.Status
	if observation.Name != "" {
		unit.Name = observation.Name
	}
	if observation.Description != "" {
		unit.Description = observation.Description
	}

	next := observation.Status
	changed := !previous.SameAs(next)
	if changed {
		next.LastTransition = observedAt
	} else {
		next.LastTransition = previous.LastTransition
	}
	unit.Status = next

	return UpsertResult{
		Changed:  changed,
		Created:  !exists,
		Previous: previous,
		Current:  *unit,
	}, nil
}
