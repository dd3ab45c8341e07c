package nav

import "go.uber.org/zap"

// Client is a narrow navigation capability over one router: a fixed set
// of operation closures that can be handed to a sub-feature (or replaced
// with test doubles) without exposing the Router type. The type
// parameter is the route type the holder is allowed to open.
type Client[R Route] struct {
	RouteTo          func(route R, opts ...RouteOption)
	RouteToAwait     func(route R, opts ...RouteOption) <-chan State[R]
	Pop              func()
	PopToRoot        func()
	Dismiss          func()
	DismissAllModals func()
	Replace          func(route R)
	Portal           func(external any, opts ...RouteOption)
	PortalAwait      func(external any, opts ...RouteOption) (<-chan RouteState, bool)

	logger *zap.Logger
}

// NewClient builds the full-width client for a router.
func NewClient(r *Router) Client[Route] {
	return Client[Route]{
		RouteTo:          r.RouteTo,
		RouteToAwait:     r.RouteToAwait,
		Pop:              r.Pop,
		PopToRoot:        r.PopToRoot,
		Dismiss:          r.Dismiss,
		DismissAllModals: r.DismissAllModals,
		Replace:          func(route Route) { r.Replace(route) },
		Portal:           r.Portal,
		PortalAwait:      r.PortalAwait,
		logger:           r.logger,
	}
}

// ChildClient projects a parent-scoped client into a child-scoped one
// via an embed/project pair: embed lifts a child route into the parent's
// route type before every outgoing call, and project narrows lifecycle
// results back down.
//
// project is a partial mapping. When it rejects the parent route coming
// back from an await (structurally possible once a route type evolves)
// the client does not fabricate an answer: it reports the mismatch
// (DPanic: panics in development loggers, logs in production) and falls
// back to the child value that was originally sent, which may not name
// the dismissed route's true identity.
func ChildClient[C Route, P Route](parent Client[P], embed func(C) P, project func(P) (C, bool)) Client[C] {
	logger := parent.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return Client[C]{
		RouteTo: func(route C, opts ...RouteOption) {
			parent.RouteTo(embed(route), opts...)
		},
		RouteToAwait: func(route C, opts ...RouteOption) <-chan State[C] {
			in := parent.RouteToAwait(embed(route), opts...)
			out := make(chan State[C], 1)
			sent := route
			go func() {
				st := <-in
				narrowed, ok := project(st.Route)
				if !ok {
					logger.DPanic("child route projection failed, falling back to the sent route",
						zap.String("route", st.Route.ID()))
					narrowed = sent
				}
				out <- State[C]{Phase: st.Phase, Route: narrowed}
			}()
			return out
		},
		Pop:              parent.Pop,
		PopToRoot:        parent.PopToRoot,
		Dismiss:          parent.Dismiss,
		DismissAllModals: parent.DismissAllModals,
		Replace: func(route C) {
			parent.Replace(embed(route))
		},
		Portal:      parent.Portal,
		PortalAwait: parent.PortalAwait,
		logger:      logger,
	}
}
