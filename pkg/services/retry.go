package services

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"net"
	"strings"
	"time"

	"github.com/patchpilot/patchpilot/pkg/fault"
)

// StoreRetryConfig is the backoff policy for transient store errors:
// exponential with jitter, surfacing fault.StorageFatal on exhaustion.
type StoreRetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	Multiplier  float64
	MaxDelay    time.Duration
	Jitter      float64 // fraction of the delay, e.g. 0.1 for ±10%
}

// DefaultStoreRetryConfig matches the production policy: base 1s, doubling
// to a 30s ceiling with ±10% jitter.
func DefaultStoreRetryConfig() StoreRetryConfig {
	return StoreRetryConfig{
		MaxAttempts: 5,
		BaseDelay:   time.Second,
		Multiplier:  2,
		MaxDelay:    30 * time.Second,
		Jitter:      0.1,
	}
}

// Delay returns the jittered backoff before the given retry.
func (c StoreRetryConfig) Delay(attempt int) time.Duration {
	d := float64(c.BaseDelay)
	for i := 1; i < attempt; i++ {
		d *= c.Multiplier
	}
	if max := float64(c.MaxDelay); d > max {
		d = max
	}
	if c.Jitter > 0 {
		d += d * c.Jitter * (2*rand.Float64() - 1)
	}
	return time.Duration(d)
}

// withRetry runs op under the store retry policy. Non-transient errors
// (not-found, validation, conflicts) return immediately; transient errors
// are retried and reclassified as storage-fatal on exhaustion.
func withRetry(ctx context.Context, cfg StoreRetryConfig, logger *slog.Logger, name string, op func() error) error {
	var lastErr error
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := op()
		if err == nil {
			return nil
		}
		if !isTransient(err) {
			return err
		}
		lastErr = err
		if attempt == cfg.MaxAttempts {
			break
		}

		delay := cfg.Delay(attempt)
		logger.Warn("transient store error, retrying",
			"operation", name, "attempt", attempt, "delay", delay, "error", err)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return fault.New(fault.StorageFatal, ctx.Err())
		case <-timer.C:
		}
	}
	return fault.New(fault.StorageFatal, lastErr)
}

// isTransient classifies store errors worth retrying: network failures,
// serialization/deadlock aborts, and connection pool exhaustion.
func isTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := strings.ToLower(err.Error())
	for _, s := range []string{
		"connection refused",
		"connection reset",
		"broken pipe",
		"serialization failure",
		"deadlock detected",
		"too many clients",
		"the database system is starting up",
		"bad connection",
	} {
		if strings.Contains(msg, s) {
			return true
		}
	}
	return false
}
