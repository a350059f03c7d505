package services

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

// Defaults for the bounded-backoff policy applied to backing-store calls.
// Client faults are never fed through this path.
const (
	retryAttempts = 2
	retryBase     = 50 * time.Millisecond
)

func backoff() retry.Backoff {
	return retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBase))
}

// withTimeout bounds one external call. A zero duration disables the bound.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
