package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of counting one hit against a client key
type Decision struct {
	Allowed bool
	// Remaining is how many more hits the key has in the current window,
	// zero when the store does not track it.
	Remaining int
	// ResetIn is the time left until the key gets a fresh allowance.
	ResetIn time.Duration
}

// Store counts hits per key and decides whether the newest one is allowed
type Store interface {
	Take(ctx context.Context, key string) (Decision, error)
}
