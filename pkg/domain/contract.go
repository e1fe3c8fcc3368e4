package domain

import (
	"context"
	"time"
)

// Contract is the client-visible surface of the daemon, implemented by the
// daemon handler and by the gRPC client gateway.
type Contract interface {
	ListUnits(ctx context.Context) ([]Unit, error)
	Query(ctx context.Context, id string) (Unit, error)
	Start(ctx context.Context, id string) (bool, error)
	Stop(ctx context.Context, id string) (bool, error)
	Restart(ctx context.Context, id string) (bool, error)
	Enable(ctx context.Context, id string) (bool, error)
	Disable(ctx context.Context, id string) (bool, error)

	// Subscribe blocks delivering events of topic to fn until ctx is done,
	// fn returns an error or the subscription is evicted.
	Subscribe(ctx context.Context, topic string, fn func(Event) error) error

	// Logs blocks streaming log entries of unit id since the given time.
	Logs(ctx context.Context, id string, since time.Time, fn func(LogEntry) error) error
}
