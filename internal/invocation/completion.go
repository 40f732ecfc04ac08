package invocation

import (
	"context"
	"sync/atomic"
)

// Callback receives a worker's outcome exactly once: err is nil on
// success, the worker's failure otherwise. The callback, not a worker's
// boolean return, is the authoritative completion signal.
type Callback interface {
	Done(inv *Context, err error)
}

// CallbackFunc adapts a function to the Callback interface.
type CallbackFunc func(inv *Context, err error)

// Done implements Callback.
func (f CallbackFunc) Done(inv *Context, err error) { f(inv, err) }

// Completion is a one-shot future implementing Callback. The first Done
// wins; any later delivery is dropped by the atomic guard, so at-most-once
// holds even under concurrent success/failure races.
type Completion struct {
	fired atomic.Bool
	done  chan struct{}
	err   error
}

// NewCompletion returns an unfired completion.
func NewCompletion() *Completion {
	return &Completion{done: make(chan struct{})}
}

// Done records the outcome and releases waiters. Only the first call has
// any effect.
func (c *Completion) Done(_ *Context, err error) {
	if !c.fired.CompareAndSwap(false, true) {
		return
	}
	c.err = err
	close(c.done)
}

// Fired reports whether an outcome has been delivered.
func (c *Completion) Fired() bool { return c.fired.Load() }

// Wait blocks until the outcome is delivered or ctx is cancelled. It
// returns the delivered error, or ctx.Err() on cancellation.
func (c *Completion) Wait(ctx context.Context) error {
	select {
	case <-c.done:
		return c.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Err returns the delivered outcome. Valid only after Wait returned or
// Fired reports true.
func (c *Completion) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}
