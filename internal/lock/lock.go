// Package lock serializes work on a key, either inside one process or across
// replicas through Redis.
package lock

import (
	"context"
	"time"
)

// Unlock releases a held lock; calling it more than once is a no-op
type Unlock func()

// Locker acquires exclusive access to a key, blocking until ctx is done
type Locker interface {
	Acquire(ctx context.Context, key string) (Unlock, error)
}

// RequestKey scopes a lock to one assignment request
func RequestKey(id string) string {
	return "assignment:request:" + id
}

// CrewKey scopes a lock to one crew's capacity
func CrewKey(id string) string {
	return "assignment:crew:" + id
}

const defaultRetryInterval = 25 * time.Millisecond
