// Package snapshot coalesces session tab list writes.
package snapshot

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/sidetabs/internal/application/usecase"
	"github.com/bnema/sidetabs/internal/logging"
)

// Debouncer delays snapshot writes until structural changes settle. A burst
// of Save calls, such as one per tab closed by a single request, results in
// one write of the latest arrangement.
type Debouncer struct {
	saver    usecase.SessionSaver
	interval time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ctx    context.Context
	cancel context.CancelFunc
}

var _ usecase.SessionSaver = (*Debouncer)(nil)

// NewDebouncer wraps saver. Writes happen interval after the last change.
func NewDebouncer(saver usecase.SessionSaver, interval time.Duration) *Debouncer {
	return &Debouncer{
		saver:    saver,
		interval: interval,
	}
}

// Start binds the context used by delayed writes.
func (d *Debouncer) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ctx, d.cancel = context.WithCancel(ctx)
	logging.FromContext(ctx).Debug().Dur("interval", d.interval).Msg("snapshot debouncer started")
}

// Save marks the arrangement dirty and restarts the delay. It never fails;
// errors of delayed writes are logged.
func (d *Debouncer) Save(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dirty = true
	if d.ctx == nil {
		d.ctx, d.cancel = context.WithCancel(ctx)
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, d.fire)
	return nil
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	ctx := d.ctx
	d.mu.Unlock()

	if ctx == nil || ctx.Err() != nil {
		return
	}
	if err := d.write(ctx); err != nil {
		logging.FromContext(ctx).Error().Err(err).Msg("failed to save session tab list")
	}
}

// Flush writes a pending arrangement right away.
func (d *Debouncer) Flush(ctx context.Context) error {
	d.mu.Lock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()

	return d.write(ctx)
}

// Stop cancels delayed writes and flushes what is pending.
func (d *Debouncer) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	d.mu.Unlock()

	return d.Flush(ctx)
}

// Pending reports whether a change has not been written yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dirty
}

func (d *Debouncer) write(ctx context.Context) error {
	d.mu.Lock()
	if !d.dirty {
		d.mu.Unlock()
		return nil
	}
	d.dirty = false
	d.mu.Unlock()

	if err := d.saver.Save(ctx); err != nil {
		d.mu.Lock()
		d.dirty = true
		d.mu.Unlock()
		return err
	}
	return nil
}
