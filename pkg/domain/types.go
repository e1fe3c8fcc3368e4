package domain

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnitState is the coarse lifecycle state reported by the service manager.
type UnitState string

const (
	UnitStateActive       UnitState = "active"
	UnitStateInactive     UnitState = "inactive"
	UnitStateActivating   UnitState = "activating"
	UnitStateDeactivating UnitState = "deactivating"
	UnitStateFailed       UnitState = "failed"
	UnitStateUnknown      UnitState = "unknown"
)

// SubStateRemoved marks a unit that vanished from the service manager listing.
const SubStateRemoved = "removed"

// TopicPrefix prefixes every per-unit event topic.
const TopicPrefix = "sjw.unit."

// Status is one observation of a unit.
type Status struct {
	State          UnitState `json:"state"`
	SubState       string    `json:"sub_state"`
	Enabled        bool      `json:"enabled"`
	UnitFileState  string    `json:"unit_file_state,omitempty"`
	LastTransition time.Time `json:"last_transition"`
}

// SameAs reports whether two observations are equal for change detection.
// UnitFileState and LastTransition are informational only.
func (s Status) SameAs(other Status) bool {
	return s.State == other.State && s.SubState == other.SubState && s.Enabled == other.Enabled
}

func (s Status) IsRemoved() bool {
	return s.State == UnitStateUnknown && s.SubState == SubStateRemoved
}

type Unit struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Observation is what an adapter read produced for a unit.
type Observation struct {
	Name        string
	Description string
	Status      Status
}

// ChangeRecord is an immutable observed status transition.
type ChangeRecord struct {
	UnitID     string    `json:"id"`
	Previous   Status    `json:"previous_status"`
	New        Status    `json:"new_status"`
	ObservedAt time.Time `json:"observed_at"`
}

func (r ChangeRecord) Topic() string {
	return Topic(r.UnitID)
}

// Event is a ChangeRecord as delivered on a topic, with the per-topic
// sequence number.
type Event struct {
	Topic  string
	Seq    uint64
	Record ChangeRecord
}

// Topic returns the event topic of a unit.
func Topic(unitID string) string {
	return TopicPrefix + unitID
}

// UnitIDFromTopic extracts the unit ID from a topic, ok is false when the
// topic does not carry the unit prefix.
func UnitIDFromTopic(topic string) (string, bool) {
	if !strings.HasPrefix(topic, TopicPrefix) {
		return "", false
	}
	return strings.TrimPrefix(topic, TopicPrefix), true
}

// Operation is a mutating command on a unit.
type Operation string

const (
	OperationStart   Operation = "start"
	OperationStop    Operation = "stop"
	OperationRestart Operation = "restart"
	OperationEnable  Operation = "enable"
	OperationDisable Operation = "disable"
)

func (op Operation) Valid() bool {
	switch op {
	case OperationStart, OperationStop, OperationRestart, OperationEnable, OperationDisable:
		return true
	}
	return false
}

// LogEntry is one line of a unit's log.
type LogEntry struct {
	UnitID    string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Cursor    string    `json:"cursor,omitempty"`
	Priority  int       `json:"priority"`
	Message   string    `json:"message"`
}

type clientTokenKey struct{}

// WithClientToken attaches the requesting client's token to ctx.
func WithClientToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, clientTokenKey{}, token)
}

// ClientToken returns the client token carried by ctx, or a fresh one.
func ClientToken(ctx context.Context) string {
	if token, ok := ctx.Value(clientTokenKey{}).(string); ok && token != "" {
		return token
	}
	return uuid.NewString()
}
