package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded resolves a call replaced by a newer one before its timer fired.
var ErrSuperseded = errors.New("debounce: call superseded")

// ErrStopped resolves a pending call discarded by Stop.
var ErrStopped = errors.New("debounce: stopped")

// Func is the operation being debounced.
type Func[In, Out any] func(ctx context.Context, in In) (Out, error)

// Debouncer schedules Func after a quiet period with no further calls.
// It is safe for concurrent use.
type Debouncer[In, Out any] struct {
	fn   Func[In, Out]
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	pending *Deferred[Out]
}

// New creates a debouncer that runs fn once wait has elapsed without calls.
func New[In, Out any](fn Func[In, Out], wait time.Duration) *Debouncer[In, Out] {
	return &Debouncer[In, Out]{
		fn:   fn,
		wait: wait,
	}
}

// Call schedules fn(ctx, in) and returns its deferred result.
// A pending call that has not fired yet is superseded.
func (d *Debouncer[In, Out]) Call(ctx context.Context, in In) *Deferred[Out] {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.cancelPendingLocked(ErrSuperseded)

	df := newDeferred[Out]()
	d.pending = df
	d.timer = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if d.pending == df {
			d.pending = nil
			d.timer = nil
		}
		d.mu.Unlock()

		if err := ctx.Err(); err != nil {
			var zero Out
			df.resolve(zero, err)
			return
		}
		df.resolve(d.fn(ctx, in))
	})

	return df
}

// Stop discards the pending call, if any. Its Deferred resolves with ErrStopped.
func (d *Debouncer[In, Out]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelPendingLocked(ErrStopped)
}

// SetWait changes the quiet period for calls made after it returns.
// A call already waiting keeps its original deadline.
func (d *Debouncer[In, Out]) SetWait(wait time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.wait = wait
}

// cancelPendingLocked stops the timer if it has not fired yet.
// A timer that already fired owns its Deferred and is left alone.
func (d *Debouncer[In, Out]) cancelPendingLocked(reason error) {
	if d.timer == nil {
		return
	}
	if d.timer.Stop() {
		var zero Out
		d.pending.resolve(zero, reason)
	}
	d.timer = nil
	d.pending = nil
}

// Deferred is the eventual result of a debounced call.
type Deferred[Out any] struct {
	once sync.Once
	done chan struct{}
	out  Out
	err  error
}

func newDeferred[Out any]() *Deferred[Out] {
	return &Deferred[Out]{done: make(chan struct{})}
}

func (d *Deferred[Out]) resolve(out Out, err error) {
	d.once.Do(func() {
		d.out = out
		d.err = err
		close(d.done)
	})
}

// Wait blocks until the result is available or ctx is done.
func (d *Deferred[Out]) Wait(ctx context.Context) (Out, error) {
	select {
	case <-d.done:
		return d.out, d.err
	case <-ctx.Done():
		var zero Out
		return zero, ctx.Err()
	}
}
