// Package debounce provides a generic trailing-edge debouncer: bursts of
// calls collapse into a single invocation with the most recent argument once
// a quiet period has elapsed.
package debounce

import (
	"sync"
	"time"
)

// Debouncer wraps a function so that each Call resets a quiet-period timer;
// the wrapped function runs only after delay has passed with no further
// calls, and receives the argument of the latest call.
type Debouncer[T any] struct {
	fn    func(T)
	delay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	latest T
}

// New creates a Debouncer invoking fn after delay of quiet.
func New[T any](fn func(T), delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{fn: fn, delay: delay}
}

// Call records v as the latest argument and restarts the quiet-period timer.
// The previous pending invocation, if any, is cancelled.
func (d *Debouncer[T]) Call(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.latest = v
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *Debouncer[T]) fire() {
	d.mu.Lock()
	v := d.latest
	d.timer = nil
	d.mu.Unlock()

	d.fn(v)
}

// Stop cancels any pending invocation. A later Call re-arms the debouncer.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
