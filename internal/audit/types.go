package audit

import (
	"encoding/json"
	"time"
)

// EventType identifies the kind of planning lifecycle event recorded in
// the audit log.
type EventType string

const (
	EventPlanRequested EventType = "PlanRequested"
	EventPlanSucceeded EventType = "PlanSucceeded"
	EventPlanFailed    EventType = "PlanFailed"
	EventLibraryLoaded EventType = "LibraryLoaded"
)

// Event is an immutable fact recorded about the planner's operation: a
// plan request, its outcome, or a library load. Unlike trace.Entry (which
// holds the full search detail for debugging), Event is the durable,
// append-only record of what happened and when, suitable for compliance
// review or usage reporting.
type Event struct {
	ID         string          `json:"id"`
	EventType  EventType       `json:"event_type"`
	LibraryID  string          `json:"library_id"`
	ActorID    string          `json:"actor_id,omitempty"`
	Timestamp  time.Time       `json:"timestamp"`
	Payload    json.RawMessage `json:"payload"`
}
