package port

import (
	"context"
	"time"
)

// Clock provides the delay primitive used by polling loops.
type Clock interface {
	// Sleep blocks for d or until ctx is done, returning ctx.Err() in that case.
	Sleep(ctx context.Context, d time.Duration) error
}
