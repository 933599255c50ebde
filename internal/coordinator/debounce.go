package coordinator

import (
	"sync"
	"time"
)

// Debouncer runs only the last function triggered within a quiescence window.
type Debouncer struct {
	mu      sync.Mutex
	window  time.Duration
	timer   *time.Timer
	pending sync.WaitGroup
}

// NewDebouncer creates a Debouncer with the given window.
func NewDebouncer(window time.Duration) *Debouncer {
	return &Debouncer{window: window}
}

// Trigger schedules fn after the window, replacing any not-yet-fired function.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()

	d.pending.Add(1)
	d.timer = time.AfterFunc(d.window, func() {
		defer d.pending.Done()
		fn()
	})
}

// Cancel drops the scheduled function, if it has not fired yet.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopLocked()
}

func (d *Debouncer) stopLocked() bool {
	if d.timer == nil {
		return false
	}
	stopped := d.timer.Stop()
	if stopped {
		d.pending.Done()
	}
	d.timer = nil
	return stopped
}

// Wait blocks until no scheduled function is pending or running.
func (d *Debouncer) Wait() {
	d.pending.Wait()
}
