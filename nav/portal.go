package nav

import "go.uber.org/zap"

// PortalMapper translates cross-module route tokens into routes this
// router recognizes. Feature modules publish opaque token types; the
// application wires one mapper that knows every module's screens.
type PortalMapper interface {
	// OnBeforeMap is invoked unconditionally before translation, mapped
	// or not. Side-effect point for analytics and logging.
	OnBeforeMap(external any)
	// MapRoute translates a token. ok=false means this router has no
	// screen for it.
	MapRoute(external any) (route Route, ok bool)
}

// Portal opens the route a cross-module token maps to. The mapper's
// OnBeforeMap hook always runs first; a failed translation is a silent
// no-op: no navigation happens and no handler is registered.
func (r *Router) Portal(external any, opts ...RouteOption) {
	route, ok := r.mapPortal(external)
	if !ok {
		return
	}
	r.RouteTo(route, opts...)
}

// PortalAwait is the suspending counterpart of Portal. ok=false signals
// that translation failed and nothing was opened; otherwise the channel
// resolves like RouteToAwait once the mapped route is dismissed.
func (r *Router) PortalAwait(external any, opts ...RouteOption) (<-chan RouteState, bool) {
	route, ok := r.mapPortal(external)
	if !ok {
		return nil, false
	}
	return r.RouteToAwait(route, opts...), true
}

func (r *Router) mapPortal(external any) (Route, bool) {
	if r.mapper == nil {
		r.logger.Debug("portal requested with no mapper configured")
		return nil, false
	}
	r.mapper.OnBeforeMap(external)
	route, ok := r.mapper.MapRoute(external)
	if !ok {
		r.logger.Debug("portal token not mapped", zap.Any("external", external))
		return nil, false
	}
	return route, true
}
