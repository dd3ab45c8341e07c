// Package nav provides a navigation-state controller for Bubble Tea
// applications: an ordered push stack, a single modal slot, per-route
// dismiss handlers, and a broadcast stream of lifecycle events.
//
// A Router tracks which route is on stage and exposes one API for all
// presentation styles. Feature modules that must open screens owned by
// other modules go through a PortalMapper instead of importing their
// concrete route types, or receive a narrowed Client capability.
//
// All Router state lives on a single goroutine, normally the Bubble Tea
// update loop. Mutating methods must be called from there. The *Await
// variants register a one-shot continuation and return a channel
// immediately; waiting on the channel happens off the loop, typically
// inside a tea.Cmd (see RouteToCmd).
//
// # Basic Usage
//
//	router := nav.New(nav.WithLogger(logger))
//	host := teahost.New(router)
//	router.Push(homeRoute())
//	p := tea.NewProgram(host, tea.WithAltScreen())
//
// Inside a screen's Update, open a sheet and react to its dismissal:
//
//	case key.Matches(msg, keys.Settings):
//	    return m, nav.RouteToCmd(m.router, settingsRoute())
//	case nav.RouteState:
//	    if msg.Phase == nav.PhaseDismissed { ... }
package nav
