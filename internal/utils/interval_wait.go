package utils

import (
	"context"
	"time"
)

// WaitInterval blocks for interval or until the context is done, returning the context error in
// the latter case. A zero interval only reports an already cancelled context.
func WaitInterval(executionContext context.Context, interval time.Duration) error {
	if interval <= 0 {
		return executionContext.Err()
	}

	timer := time.NewTimer(interval)
	defer timer.Stop()

	select {
	case <-executionContext.Done():
		return executionContext.Err()
	case <-timer.C:
		return nil
	}
}
