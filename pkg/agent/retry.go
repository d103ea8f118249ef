package agent

import (
	"context"
	"time"
)

// RetryConfig is the completion retry policy: exponential backoff between
// attempts, applied only to errors the LLM adapter classifies as retryable.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
}

// DefaultRetryConfig matches the production policy: 3 attempts, 5s base,
// tripling up to a 120s ceiling.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		BaseDelay:   5 * time.Second,
		Multiplier:  3,
		MaxDelay:    120 * time.Second,
	}
}

// Delay returns the backoff before the given retry (attempt 1 is the first
// retry, after the initial call).
func (c RetryConfig) Delay(attempt int) time.Duration {
	d := float64(c.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= c.Multiplier
	}
	if max := float64(c.MaxDelay); d > max {
		d = max
	}
	return time.Duration(d)
}

// sleep waits for d or until the context is done.
func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
