// Package clock provides context aware waiting.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for d or until ctx is done.
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

// Poll calls check until it reports done, fails, or ctx ends, sleeping
// interval between calls. check runs once before the first sleep.
func Poll(ctx context.Context, interval time.Duration, check func() (bool, error)) error {
	for {
		done, err := check()
		if err != nil || done {
			return err
		}
		if err := SleepWithContext(ctx, interval); err != nil {
			return err
		}
	}
}
