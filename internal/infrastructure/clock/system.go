package clock

import (
	"context"
	"time"

	"github.com/bnema/sidetabs/internal/application/port"
)

// System is the wall clock.
type System struct{}

var _ port.Clock = System{}

// Sleep waits for d or until ctx is done.
func (System) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Instant returns immediately, unless ctx is already done. The simulate
// command uses it to run polling loops without waiting.
type Instant struct{}

var _ port.Clock = Instant{}

// Sleep reports ctx.Err() without blocking.
func (Instant) Sleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}
