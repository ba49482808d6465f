package ratelimit

import (
	"context"
	"time"
)

// Settle blocks for the given delay so the page can re-render after an
// interaction, returning early with the context's error on cancellation.
func Settle(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
