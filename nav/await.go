package nav

import (
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// oneshot is a single-use completion primitive. The state machine makes
// double fulfillment structurally impossible (fire removes the handler
// before invoking it), but the CAS guards it anyway.
type oneshot struct {
	done atomic.Bool
	ch   chan RouteState
}

func newOneshot() *oneshot {
	return &oneshot{ch: make(chan RouteState, 1)}
}

// fulfill delivers the state exactly once. It reports false when the
// continuation was already resumed.
func (o *oneshot) fulfill(st RouteState) bool {
	if !o.done.CompareAndSwap(false, true) {
		return false
	}
	o.ch <- st
	return true
}

// RouteToAwait opens a route like RouteTo and returns a channel that
// yields exactly one value, Dismissed(route), when the stored dismiss
// handler fires. The call itself returns immediately; only the channel
// receive waits, so it belongs off the owning goroutine, typically in a
// tea.Cmd (see RouteToCmd).
//
// There is no timeout or cancellation: if the route is never dismissed
// the receive blocks forever. Opening the same identity again before
// dismissal replaces the stored handler (last write wins), leaving the
// earlier caller suspended; neither caller is ever resumed twice.
//
// When the open itself degrades to a no-op (the identity is already
// staged on the other surface) the route never goes on stage and the
// channel resolves immediately.
func (r *Router) RouteToAwait(route Route, opts ...RouteOption) <-chan RouteState {
	call := newRouteCall(route, opts)
	o := newOneshot()
	onDismiss := call.onDismiss

	resume := func() {
		if onDismiss != nil {
			onDismiss()
		}
		if !o.fulfill(Dismissed(route)) {
			r.logger.DPanic("dismiss continuation resumed twice",
				zap.String("route", route.ID()))
		}
	}

	if !r.open(route, call.style, resume) {
		o.fulfill(Dismissed(route))
	}
	return o.ch
}
