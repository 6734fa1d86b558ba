// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff doubles a delay up to Max.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

func (b Backoff) next(d time.Duration) time.Duration {
	if d <= 0 {
		return b.Initial
	}
	d *= 2
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}

// Retry calls fn until it succeeds or ctx is done, sleeping with b between attempts.
// onRetry, if set, is told about every failed attempt.
func Retry(ctx context.Context, b Backoff, fn func(context.Context) error, onRetry func(attempt int, err error, wait time.Duration)) error {
	var wait time.Duration
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}
		wait = b.next(wait)
		if onRetry != nil {
			onRetry(attempt, err, wait)
		}
		if sleepErr := SleepWithContext(ctx, wait); sleepErr != nil {
			return sleepErr
		}
	}
}
