package nav

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Router is the navigation state machine for one scope: an ordered push
// stack plus a single modal slot, with a dismiss completion per staged
// route and a broadcast stream of lifecycle events.
//
// A root router is built with New. Child routers are created implicitly
// by ViewFor when a modal route is resolved; they keep a non-owning
// back-reference to their presenting router so that dismissal can be
// delegated up the chain.
//
// All mutating methods must run on the single goroutine that owns the
// router, normally the Bubble Tea update loop.
type Router struct {
	parent *Router

	stack    []Route
	modal    Route
	handlers handlerTable

	mapper   PortalMapper
	logger   *zap.Logger
	schedule func(func())

	subMu sync.Mutex
	subs  map[*Subscription]struct{}
}

// Option configures a root router.
type Option func(*Router)

// WithLogger sets the diagnostics logger. Degraded operations (empty-stack
// pop, dismiss with no modal, unmapped portals) are reported here rather
// than returned as errors. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithPortalMapper sets the cross-module route mapper. Children created
// for modal flows inherit it.
func WithPortalMapper(m PortalMapper) Option {
	return func(r *Router) { r.mapper = m }
}

// New creates a root router.
func New(opts ...Option) *Router {
	r := &Router{
		handlers: newHandlerTable(),
		logger:   zap.NewNop(),
		schedule: func(fn func()) { fn() },
		subs:     make(map[*Subscription]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newChild creates the router that hosts a modal flow. The parent link is
// set once here and never reassigned; the chain is therefore acyclic and
// ends at a root.
func (r *Router) newChild() *Router {
	return &Router{
		parent:   r,
		handlers: newHandlerTable(),
		mapper:   r.mapper,
		logger:   r.logger,
		schedule: r.schedule,
		subs:     make(map[*Subscription]struct{}),
	}
}

// SetScheduler installs the hook Replace uses to defer its second phase
// by one scheduling tick. Container adapters bind this to their update
// loop; the default runs the deferred work immediately.
func (r *Router) SetScheduler(fn func(func())) {
	if fn != nil {
		r.schedule = fn
	}
}

// Parent returns the presenting router, or nil for a root.
func (r *Router) Parent() *Router { return r.parent }

// Stack returns a copy of the push stack, root to top.
func (r *Router) Stack() []Route {
	out := make([]Route, len(r.stack))
	copy(out, r.stack)
	return out
}

// Depth returns the push stack size.
func (r *Router) Depth() int { return len(r.stack) }

// Top returns the top push route, or nil when the stack is empty.
func (r *Router) Top() Route {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Modal returns the route in the modal slot, or nil when none is
// presented.
func (r *Router) Modal() Route { return r.modal }

// Subscribe attaches a new lifecycle event sink. The caller owns the
// subscription and must Close it when done.
func (r *Router) Subscribe() *Subscription {
	s := newSubscription(r)
	r.subMu.Lock()
	r.subs[s] = struct{}{}
	r.subMu.Unlock()
	return s
}

func (r *Router) unsubscribe(s *Subscription) {
	r.subMu.Lock()
	delete(r.subs, s)
	r.subMu.Unlock()
}

func (r *Router) broadcast(st RouteState) {
	r.subMu.Lock()
	for s := range r.subs {
		s.publish(st)
	}
	r.subMu.Unlock()
}

// RouteOption adjusts a single navigation call.
type RouteOption func(*routeCall)

type routeCall struct {
	style     Style
	styleSet  bool
	onDismiss func()
}

// WithStyle overrides the route's own presentation style for this call.
func WithStyle(s Style) RouteOption {
	return func(c *routeCall) {
		c.style = s
		c.styleSet = true
	}
}

// WithOnDismiss registers a completion fired exactly once when the route
// leaves the stage by any path.
func WithOnDismiss(fn func()) RouteOption {
	return func(c *routeCall) { c.onDismiss = fn }
}

func newRouteCall(route Route, opts []RouteOption) routeCall {
	c := routeCall{style: route.Style()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Push opens a route on the push stack regardless of its declared style.
func (r *Router) Push(route Route) {
	r.open(route, StylePush, nil)
}

// RouteTo opens a route using its declared style (or a WithStyle
// override) and returns immediately after the state mutation and the
// Active broadcast. It never blocks.
func (r *Router) RouteTo(route Route, opts ...RouteOption) {
	call := newRouteCall(route, opts)
	r.open(route, call.style, call.onDismiss)
}

// open registers the dismiss handler, stages the route, and broadcasts
// Active. It reports false when the open degraded to a no-op.
func (r *Router) open(route Route, style Style, onDismiss func()) bool {
	id := route.ID()

	if style.Modal() {
		if r.inStack(id) {
			r.logger.Warn("route already on push stack, modal open skipped",
				zap.String("route", id), zap.Stringer("style", style))
			return false
		}
		if r.modal != nil && r.modal.ID() != id {
			// The slot holds one route at a time: the outgoing modal is
			// dismissed with full handler and event semantics.
			old := r.modal
			r.modal = nil
			r.handlers.fire(old.ID())
			r.broadcast(Dismissed(old))
		}
		r.handlers.set(id, onDismiss)
		r.modal = route
		r.broadcast(Active(route))
		return true
	}

	if r.modal != nil && r.modal.ID() == id {
		r.logger.Warn("route already in modal slot, push skipped",
			zap.String("route", id))
		return false
	}
	r.handlers.set(id, onDismiss)
	r.stack = append(r.stack, route)
	r.broadcast(Active(route))
	return true
}

func (r *Router) inStack(id string) bool {
	for _, rt := range r.stack {
		if rt.ID() == id {
			return true
		}
	}
	return false
}

// Pop removes the top push route, fires its dismiss handler and
// broadcasts Dismissed. Popping an empty stack is a reported no-op.
func (r *Router) Pop() {
	if len(r.stack) == 0 {
		r.logger.Debug("pop on empty stack")
		return
	}
	top := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.handlers.fire(top.ID())
	r.broadcast(Dismissed(top))
}

// PopToRoot clears the entire push stack in one mutation. Only the
// handler of the route that was on top fires, and only one Dismissed
// event is broadcast; completions for the covered routes are discarded.
// An empty stack is a reported no-op.
func (r *Router) PopToRoot() {
	if len(r.stack) == 0 {
		r.logger.Debug("pop to root on empty stack")
		return
	}
	top := r.stack[len(r.stack)-1]
	for _, rt := range r.stack[:len(r.stack)-1] {
		r.handlers.discard(rt.ID())
	}
	r.stack = nil
	r.handlers.fire(top.ID())
	r.broadcast(Dismissed(top))
}

// SetStack atomically replaces the push stack and resets the modal slot:
// stack and slot form one navigational scene, so a full replacement
// clears both. No dismiss handlers fire and no events are broadcast for
// the routes removed; callers that need per-route cleanup must use Pop
// or PopToRoot instead.
func (r *Router) SetStack(routes ...Route) {
	if r.modal != nil {
		r.handlers.discard(r.modal.ID())
		r.modal = nil
	}
	for _, rt := range r.stack {
		r.handlers.discard(rt.ID())
	}
	r.stack = append([]Route(nil), routes...)
}

// Replace swaps the scene for a single route in two phases: it clears the
// modal slot, opens the route on the push stack, then one scheduler tick
// later collapses the stack to just that route. The split gives the host
// a chance to run the open transition before the stack is cut underneath
// it. Like SetStack, the routes removed go silently.
func (r *Router) Replace(route Route, opts ...RouteOption) {
	if r.modal != nil {
		r.handlers.discard(r.modal.ID())
		r.modal = nil
	}
	call := newRouteCall(route, opts)
	if !r.open(route, StylePush, call.onDismiss) {
		return
	}
	id := route.ID()
	r.schedule(func() {
		for _, rt := range r.stack {
			if rt.ID() != id {
				r.handlers.discard(rt.ID())
			}
		}
		r.stack = []Route{route}
	})
}

// Dismiss closes the active modal. If this router owns the slot, its
// handler fires and the slot clears. Otherwise the call delegates to the
// presenting parent: a child created to host a modal dismisses the modal
// it lives in. With no modal anywhere the call is a reported no-op.
func (r *Router) Dismiss() {
	if r.modal != nil {
		r.closeModal()
		return
	}
	if p := r.parent; p != nil && p.modal != nil {
		// This router is the transient host of the parent's modal; its
		// own scene goes away with it.
		r.resetSilently()
		p.closeModal()
		return
	}
	r.logger.Debug("dismiss with no active modal")
}

func (r *Router) closeModal() {
	m := r.modal
	r.modal = nil
	r.handlers.fire(m.ID())
	r.broadcast(Dismissed(m))
}

func (r *Router) resetSilently() {
	for _, rt := range r.stack {
		r.handlers.discard(rt.ID())
	}
	r.stack = nil
	if r.modal != nil {
		r.handlers.discard(r.modal.ID())
		r.modal = nil
	}
}

// DismissAllModals walks the presenting chain from this router to the
// root, clearing every modal slot without firing handlers or publishing
// events. Push stacks are untouched. Used for "start a fresh scene"
// flows where per-screen callbacks would only be noise.
func (r *Router) DismissAllModals() {
	for cur := r; cur != nil; cur = cur.parent {
		if cur.modal != nil {
			cur.handlers.discard(cur.modal.ID())
			cur.modal = nil
		}
	}
}

// DismissToRoot delegates a single Dismiss to the presenting parent,
// if any.
func (r *Router) DismissToRoot() {
	if r.parent != nil {
		r.parent.Dismiss()
	}
}

// ViewFor resolves a route to its renderable content. Push routes share
// this router's navigation context; modal routes get a fresh child
// router so each modal flow is isolated, with the portal mapper carried
// over.
//
// The container adapter that displays the returned model must call
// ContentRemoved when the content leaves display by a platform gesture,
// so the dismiss handler fires exactly once no matter which side
// initiated the removal.
func (r *Router) ViewFor(route Route) tea.Model {
	if route.Style().Modal() {
		return route.Content(r.newChild())
	}
	return route.Content(r)
}

// ContentRemoved reports that a route's rendered content left the display
// through the platform rather than through this API (back gesture,
// host-side clear). It reconciles stage state and guarantees the dismiss
// handler fires at most once across both removal paths.
func (r *Router) ContentRemoved(route Route) {
	id := route.ID()

	if r.modal != nil && r.modal.ID() == id {
		r.closeModal()
		return
	}
	for i := len(r.stack) - 1; i >= 0; i-- {
		if r.stack[i].ID() == id {
			r.stack = append(r.stack[:i], r.stack[i+1:]...)
			r.handlers.fire(id)
			r.broadcast(Dismissed(route))
			return
		}
	}
	// Already off stage: fire any straggler completion, at most once.
	r.handlers.fire(id)
}
