package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	// EventSessionRevoked fires when an authenticated call comes back 401/403;
	// the local session is no longer valid.
	EventSessionRevoked EventType = "session_revoked"
	// EventSessionEnded fires after an explicit logout completes.
	EventSessionEnded EventType = "session_ended"
	// EventCacheRefreshed fires after the domain cache is rebuilt.
	EventCacheRefreshed EventType = "cache_refreshed"
)

// Event represents an in-process event emitted by the client core.
type Event struct {
	Type      EventType
	Timestamp time.Time
	Payload   interface{}
}

// SessionRevokedPayload carries the status that invalidated the session.
type SessionRevokedPayload struct {
	Status int
	Path   string
}

// CacheRefreshedPayload carries the new snapshot sizes.
type CacheRefreshedPayload struct {
	Members  int
	Trainers int
}
