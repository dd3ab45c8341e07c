package nav

import tea "github.com/charmbracelet/bubbletea"

// PortalUnmappedMsg is delivered by PortalCmd when the mapper had no
// route for the token. Distinguishes translation failure from a normal
// dismissal.
type PortalUnmappedMsg struct {
	External any
}

// SubscriptionClosedMsg is delivered by NextState once a subscription's
// event channel has been closed.
type SubscriptionClosedMsg struct{}

// RouteToCmd opens a route and returns a command that delivers the
// route's Dismissed state as a message. The open happens now, on the
// caller's goroutine; only the wait runs inside the command.
func RouteToCmd(r *Router, route Route, opts ...RouteOption) tea.Cmd {
	ch := r.RouteToAwait(route, opts...)
	return func() tea.Msg {
		return <-ch
	}
}

// PortalCmd is RouteToCmd for cross-module tokens. An unmapped token
// yields PortalUnmappedMsg instead of a RouteState.
func PortalCmd(r *Router, external any, opts ...RouteOption) tea.Cmd {
	ch, ok := r.PortalAwait(external, opts...)
	if !ok {
		return func() tea.Msg {
			return PortalUnmappedMsg{External: external}
		}
	}
	return func() tea.Msg {
		return <-ch
	}
}

// NextState waits for the subscription's next lifecycle event and
// delivers it as a message. Re-issue it after each event to keep the
// stream flowing into the program.
func NextState(sub *Subscription) tea.Cmd {
	return func() tea.Msg {
		st, ok := <-sub.Events()
		if !ok {
			return SubscriptionClosedMsg{}
		}
		return st
	}
}
