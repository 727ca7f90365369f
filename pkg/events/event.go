package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all audit events published to the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "WORKSPACE_SAVED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewWorkspaceSaved records an explicit cloud save of a user's workspace.
func NewWorkspaceSaved(userId uuid.UUID, projectCount int) Event {
	return BaseEvent{
		Type: "WORKSPACE_SAVED",
		Data: map[string]interface{}{
			"user_id":       userId.String(),
			"project_count": projectCount,
		},
		OccurredAt: time.Now(),
	}
}

// NewUserSignedIn records a resolved identity, anonymous or not.
func NewUserSignedIn(userId uuid.UUID, method string) Event {
	return BaseEvent{
		Type: "USER_SIGNED_IN",
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"method":  method,
		},
		OccurredAt: time.Now(),
	}
}
