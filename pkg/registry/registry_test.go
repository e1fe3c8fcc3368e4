package registry

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/errors"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func observe(state domain.UnitState, subState string, enabled bool) domain.Observation {
	return domain.Observation{
		Name:        "nginx.service",
		Description: "A high performance web server",
		Status:      domain.Status{State: state, SubState: subState, Enabled: enabled},
	}
}

func TestRegistry_GetNotFound(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Get("missing")
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}

func TestRegistry_FirstObservationIsChange(t *testing.T) {
	registry := NewRegistry()
	clock := testclock.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	result, err := registry.Upsert("web", observe(domain.UnitStateActive, "running", true), clock.Now())
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Created)
	assert.Equal(t, domain.UnitStateUnknown, result.Previous.State)
	assert.Equal(t, "nginx.service", result.Current.Name)
	assert.Equal(t, clock.Now(), result.Current.Status.LastTransition)
}

func TestRegistry_SteadyStateIsIdempotent(t *testing.T) {
	registry := NewRegistry()
	clock := testclock.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	first, err := registry.Upsert("web", observe(domain.UnitStateActive, "running", true), clock.Now())
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		clock.Advance(2 * time.Second)
		obs := observe(domain.UnitStateActive, "running", true)
		obs.Status.UnitFileState = "enabled"
		result, err := registry.Upsert("web", obs, clock.Now())
		require.NoError(t, err)
		assert.False(t, result.Changed)
		assert.False(t, result.Created)
	}

	unit, err := registry.Get("web")
	require.NoError(t, err)
	assert.Equal(t, first.Current.Status.LastTransition, unit.Status.LastTransition)
	assert.Equal(t, "enabled", unit.Status.UnitFileState)
}

func TestRegistry_DescriptionRefreshIsNotAChange(t *testing.T) {
	registry := NewRegistry()
	now := time.Now()

	_, err := registry.Upsert("web", observe(domain.UnitStateActive, "running", true), now)
	require.NoError(t, err)

	obs := observe(domain.UnitStateActive, "running", true)
	obs.Description = "nginx"
	result, err := registry.Upsert("web", obs, now.Add(time.Second))
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, "nginx", result.Current.Description)
}

func TestRegistry_TransitionUpdatesTimestamp(t *testing.T) {
	registry := NewRegistry()
	clock := testclock.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	_, err := registry.Upsert("a", observe(domain.UnitStateActive, "running", true), clock.Now())
	require.NoError(t, err)

	clock.Advance(time.Minute)
	result, err := registry.Upsert("a", observe(domain.UnitStateFailed, "failed", true), clock.Now())
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.Equal(t, domain.UnitStateActive, result.Previous.State)
	assert.Equal(t, domain.UnitStateFailed, result.Current.Status.State)
	assert.Equal(t, clock.Now(), result.Current.Status.LastTransition)

	// Enabled flag alone counts as a change
	result, err = registry.Upsert("a", observe(domain.UnitStateFailed, "failed", false), clock.Now())
	require.NoError(t, err)
	assert.True(t, result.Changed)
}

func TestRegistry_ListKeepsInsertionOrder(t *testing.T) {
	registry := NewRegistry()
	now := time.Now()

	for _, id := range []string{"c", "a", "b"} {
		_, err := registry.Upsert(id, observe(domain.UnitStateInactive, "dead", false), now)
		require.NoError(t, err)
	}
	_, err := registry.Upsert("a", observe(domain.UnitStateActive, "running", false), now)
	require.NoError(t, err)

	units := registry.List()
	require.Len(t, units, 3)
	assert.Equal(t, "c", units[0].ID)
	assert.Equal(t, "a", units[1].ID)
	assert.Equal(t, domain.UnitStateActive, units[1].Status.State)
	assert.Equal(t, "b", units[2].ID)
	assert.Equal(t, []string{"c", "a", "b"}, registry.IDs())
	assert.Equal(t, 3, registry.Len())
}

func TestRegistry_SnapshotsAreCopies(t *testing.T) {
	registry := NewRegistry()
	_, err := registry.Upsert("web", observe(domain.UnitStateActive, "running", true), time.Now())
	require.NoError(t, err)

	units := registry.List()
	units[0].Status.State = domain.UnitStateFailed

	unit, err := registry.Get("web")
	require.NoError(t, err)
	assert.Equal(t, domain.UnitStateActive, unit.Status.State)
}

func TestRegistry_EmptyID(t *testing.T) {
	_, err := NewRegistry().Upsert("", observe(domain.UnitStateActive, "running", true), time.Now())
	assert.True(t, errors.IsValidationError(err))
}

func TestRegistry_ConcurrentUpserts(t *testing.T) {
	registry := NewRegistry()
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("unit-%d", i%10)
			_, err := registry.Upsert(id, observe(domain.UnitStateActive, "running", i%2 == 0), now)
			assert.NoError(t, err)
			_ = registry.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 10, registry.Len())
}
