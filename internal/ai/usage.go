package ai

import (
	"fmt"
	"sync"
)

// UsageTracker records token consumption per user. Tracking is advisory:
// nothing in the request path blocks on it.
type UsageTracker interface {
	// Record adds token usage for a user under the named operation.
	Record(userID, operation string, tokens int) error
	// Usage returns total tokens recorded for a user.
	Usage(userID string) (int64, error)
}

// InMemoryUsage is a simple in-memory usage tracker.
type InMemoryUsage struct {
	mu     sync.RWMutex
	totals map[string]int64 // userID -> tokens
	byOp   map[string]int64 // userID:operation -> tokens
}

// NewInMemoryUsage creates a new in-memory usage tracker.
func NewInMemoryUsage() *InMemoryUsage {
	return &InMemoryUsage{
		totals: make(map[string]int64),
		byOp:   make(map[string]int64),
	}
}

func (u *InMemoryUsage) Record(userID, operation string, tokens int) error {
	if tokens < 0 {
		return fmt.Errorf("tokens must be non-negative, got %d", tokens)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	u.totals[userID] += int64(tokens)
	u.byOp[userID+":"+operation] += int64(tokens)
	return nil
}

func (u *InMemoryUsage) Usage(userID string) (int64, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.totals[userID], nil
}

// OperationUsage returns tokens recorded for one user/operation pair.
func (u *InMemoryUsage) OperationUsage(userID, operation string) int64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.byOp[userID+":"+operation]
}
