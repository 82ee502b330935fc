package shgo

import "sync/atomic"

// CancelToken is a cooperative cancellation flag, polled between
// refinement iterations (basin polishing does not poll it: once the
// refinement loop returns, every basin is polished) rather than
// threaded through as a context.Context — the teacher never imports
// context (its own blocking operations are in-process map/slice
// mutations under a mutex, not calls crossing an API boundary), and the
// lightweight-atomic-flag idiom matches core.Graph's own atomic counter.
//
// CancelToken satisfies refine.Canceller structurally; refine never
// imports shgo to know this.
type CancelToken struct {
	cancelled atomic.Bool
}

// NewCancelToken returns a fresh, un-cancelled token.
func NewCancelToken() *CancelToken {
	return &CancelToken{}
}

// Cancel marks the token cancelled. Safe to call concurrently and more
// than once.
func (c *CancelToken) Cancel() {
	c.cancelled.Store(true)
}

// Cancelled reports whether Cancel has been called.
func (c *CancelToken) Cancelled() bool {
	return c.cancelled.Load()
}
