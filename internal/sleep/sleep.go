// Package sleep implements waiting interruptible by a context.
package sleep

import (
	"context"
	"time"
)

type Sleeper struct{}

func New() *Sleeper {
	return &Sleeper{}
}

// Sleep blocks for the given duration, or until the context is canceled
// in which case the context error is returned.
func (s *Sleeper) Sleep(ctx context.Context, duration time.Duration) (err error) {
	timer := time.NewTimer(duration)
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		if !timer.Stop() {
			<-timer.C
		}
		return ctx.Err()
	}
}
