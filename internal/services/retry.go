package services

import (
	"context"
	"time"
)

const (
	maxAttempts    = 3
	initialBackoff = 500 * time.Millisecond
)

// withRetry runs fn up to maxAttempts times with exponential backoff. Only
// the outbound messaging and payment calls use it; everything else fails
// straight through.
func withRetry(ctx context.Context, fn func() error) error {
	var err error
	delay := initialBackoff
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
		if err = fn(); err == nil {
			return nil
		}
	}
	return err
}
