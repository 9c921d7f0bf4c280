// Package ratelimit provides a token-bucket request gate shared by every
// outbound fetch against an upstream source.
package ratelimit

import (
	"context"

	"golang.org/x/time/rate"
)

// Limiter gates outbound requests at a fixed rate with a matching burst,
// so a burst of R tokens refills continuously at R tokens/second. It is a
// process-lifetime singleton per source; callers share one Limiter across
// all concurrent fetches against that source.
type Limiter struct {
	bucket *rate.Limiter
}

// New creates a Limiter with capacity = burst = requestsPerSecond.
func New(requestsPerSecond int) *Limiter {
	if requestsPerSecond < 1 {
		requestsPerSecond = 1
	}
	return &Limiter{
		bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
	}
}

// Acquire blocks until a token is available or ctx is cancelled.
func (l *Limiter) Acquire(ctx context.Context) error {
	return l.bucket.Wait(ctx)
}
