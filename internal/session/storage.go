package session

import "context"

// Keys persisted by the session store.
const (
	KeyToken = "token"
	KeyUser  = "user"
	KeyRole  = "role"
)

// Storage is durable key-value persistence for session fields. Only the
// session survives a restart; domain data is never persisted.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Clear removes all persisted session fields.
	Clear(ctx context.Context) error
}
