package servicemanager

import (
	"context"

	"github.com/core-tools/hsu-sjw/pkg/domain"
)

// UnitInfo is one entry of a unit listing.
type UnitInfo struct {
	ID          string
	Observation domain.Observation
}

// Adapter abstracts the host service manager. Every call may block and
// must honour ctx.
type Adapter interface {
	// List returns every unit the daemon manages, configured and discovered.
	List(ctx context.Context) ([]UnitInfo, error)

	// Query reads the current status of one unit. Returns a NotFound
	// domain error when the service manager no longer knows the unit.
	Query(ctx context.Context, id string) (domain.Observation, error)

	// Mutate runs a mutating operation and returns once the service
	// manager reports its result.
	Mutate(ctx context.Context, id string, op domain.Operation) error

	// Watch streams IDs of units whose sub-state changed. Best effort, the
	// channel is closed when ctx is done.
	Watch(ctx context.Context) (<-chan string, error)

	Close() error
}
