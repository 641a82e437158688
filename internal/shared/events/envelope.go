package events

import "time"

// Event is the live-delivery envelope pushed over per-user channels.
// Payload is a view assembled at dispatch time, not a persisted record.
type Event struct {
	EventID       string    `json:"event_id"`
	Name          string    `json:"name"`
	UserID        string    `json:"user_id"`
	OccurredAtUTC time.Time `json:"occurred_at_utc"`
	Payload       any       `json:"payload"`
}
