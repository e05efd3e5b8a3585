package capture

import "time"

// EventNewRequest is the event type broadcast for every captured delivery.
const EventNewRequest = "new_request"

// Event describes a captured delivery to live viewers.
type Event struct {
	Type      string    `json:"type"`
	RequestID int64     `json:"requestId"`
	Endpoint  string    `json:"endpoint"`
	Method    string    `json:"method"`
	Timestamp time.Time `json:"timestamp"`
}

/* Notifier pushes an event to all currently connected viewers.
 * Implementations must never fail the caller: a viewer that cannot take
 * the event is the implementation's problem, not ingestion's.
 */
type Notifier interface {
	Notify(event any)
}
