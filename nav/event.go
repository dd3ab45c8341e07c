package nav

import "sync"

// Phase classifies a route lifecycle transition.
type Phase int

const (
	// PhaseActive means the route just went on stage.
	PhaseActive Phase = iota
	// PhaseDismissed means the route just left the stage.
	PhaseDismissed
)

func (p Phase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseDismissed:
		return "dismissed"
	default:
		return "unknown"
	}
}

// State is one lifecycle transition of a route. The type parameter lets a
// narrowed Client report states in its own route type; the router itself
// always produces RouteState.
type State[R Route] struct {
	Phase Phase
	Route R
}

// RouteState is the event type published on a router's broadcast stream.
// It doubles as a tea.Msg when pumped into a Bubble Tea program.
type RouteState = State[Route]

// Active builds the on-stage transition for a route.
func Active(route Route) RouteState {
	return RouteState{Phase: PhaseActive, Route: route}
}

// Dismissed builds the off-stage transition for a route.
func Dismissed(route Route) RouteState {
	return RouteState{Phase: PhaseDismissed, Route: route}
}

// Subscription is one consumer's live view of a router's lifecycle
// events. Each subscriber owns an independent unbounded backlog, so a
// slow consumer never blocks the router or other subscribers. Events
// arrive in publish order, exactly once each, until Close.
type Subscription struct {
	router *Router

	mu      sync.Mutex
	backlog []RouteState

	wake chan struct{}
	done chan struct{}
	out  chan RouteState

	closeOnce sync.Once
}

func newSubscription(r *Router) *Subscription {
	s := &Subscription{
		router: r,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		out:    make(chan RouteState),
	}
	go s.pump()
	return s
}

// Events returns the delivery channel. It is closed after Close.
func (s *Subscription) Events() <-chan RouteState {
	return s.out
}

// Close detaches the subscription from its router and ends delivery.
// Safe to call more than once and from any goroutine.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.router.unsubscribe(s)
	})
}

// publish enqueues an event without blocking. Called on the router's
// owning goroutine.
func (s *Subscription) publish(st RouteState) {
	s.mu.Lock()
	s.backlog = append(s.backlog, st)
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Subscription) pump() {
	defer close(s.out)
	for {
		s.mu.Lock()
		pending := s.backlog
		s.backlog = nil
		s.mu.Unlock()

		for _, st := range pending {
			select {
			case s.out <- st:
			case <-s.done:
				return
			}
		}

		select {
		case <-s.wake:
		case <-s.done:
			return
		}
	}
}
