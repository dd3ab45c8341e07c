// Package teahost renders a nav.Router inside a Bubble Tea program: the
// top push route as the base screen, the modal slot as a sheet or
// full-screen surface above it. It owns no navigation state of its own;
// it consumes the router's stack and slot and reports platform-driven
// removal (the back key) into the dismiss-handler path.
//
// The host renders one router scope. A modal's content receives its own
// child router from nav.Router.ViewFor; nested modal flows keep their
// state machines, but rendering deeper than one modal level is up to the
// modal's own model.
package teahost

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagehand-tui/stagehand/nav"
)

// flushMsg triggers the deferred work queued by the router's scheduler
// hook, one update cycle after it was queued.
type flushMsg struct{}

// streamMsg carries one event from the host's own subscription pump.
// Keeping it private separates pump deliveries from nav.RouteState values
// that resolve out of RouteToCmd/PortalCmd commands: those belong to the
// screens and are forwarded to them, not consumed here.
type streamMsg struct {
	state nav.RouteState
}

// Host is the top-level tea.Model that displays a router's scene.
type Host struct {
	router *nav.Router
	sub    *nav.Subscription
	keys   KeyMap

	width  int
	height int

	// content caches resolved screen models by route identity; entries
	// appear on Active events and drop on Dismissed ones.
	content map[string]tea.Model

	deferred []func()

	emptyHint string
}

// HostOption configures a Host.
type HostOption func(*Host)

// WithKeyMap replaces the default host bindings.
func WithKeyMap(km KeyMap) HostOption {
	return func(h *Host) { h.keys = km }
}

// WithEmptyHint sets the line shown when nothing is on stage.
func WithEmptyHint(hint string) HostOption {
	return func(h *Host) { h.emptyHint = hint }
}

// New wraps a router. The host subscribes to the router's lifecycle
// events and installs itself as the router's scheduler so that
// Replace's second phase lands on the next update cycle.
func New(router *nav.Router, opts ...HostOption) *Host {
	h := &Host{
		router:    router,
		sub:       router.Subscribe(),
		keys:      DefaultKeyMap(),
		content:   make(map[string]tea.Model),
		emptyHint: "nothing on stage",
	}
	for _, opt := range opts {
		opt(h)
	}
	router.SetScheduler(func(fn func()) {
		h.deferred = append(h.deferred, fn)
	})
	return h
}

// Router returns the wrapped router.
func (h *Host) Router() *nav.Router { return h.router }

func (h *Host) Init() tea.Cmd {
	return h.withFlush(h.nextState())
}

// nextState waits for the subscription's next lifecycle event. Exactly
// one of these is in flight at a time; each streamMsg re-arms it.
func (h *Host) nextState() tea.Cmd {
	return func() tea.Msg {
		st, ok := <-h.sub.Events()
		if !ok {
			return nav.SubscriptionClosedMsg{}
		}
		return streamMsg{state: st}
	}
}

func (h *Host) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.width, h.height = msg.Width, msg.Height
		for id, m := range h.content {
			updated, cmd := m.Update(h.contentSize())
			h.content[id] = updated
			cmds = append(cmds, cmd)
		}

	case flushMsg:
		pending := h.deferred
		h.deferred = nil
		for _, fn := range pending {
			fn()
		}

	case streamMsg:
		st := msg.state
		switch st.Phase {
		case nav.PhaseActive:
			model := h.router.ViewFor(st.Route)
			h.content[st.Route.ID()] = model
			cmds = append(cmds, model.Init())
			if h.width > 0 {
				updated, cmd := model.Update(h.contentSize())
				h.content[st.Route.ID()] = updated
				cmds = append(cmds, cmd)
			}
		case nav.PhaseDismissed:
			delete(h.content, st.Route.ID())
		}
		cmds = append(cmds, h.nextState())

	case nav.SubscriptionClosedMsg:
		// Router went away; nothing left to pump.

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			return h, tea.Quit
		case key.Matches(msg, h.keys.Back):
			// Platform-driven removal goes through ContentRemoved so the
			// dismiss handler fires exactly once either way.
			if modal := h.router.Modal(); modal != nil {
				h.router.ContentRemoved(modal)
			} else if top := h.router.Top(); top != nil {
				h.router.ContentRemoved(top)
			}
		case key.Matches(msg, h.keys.Root):
			h.router.DismissAllModals()
			h.router.PopToRoot()
		default:
			cmds = append(cmds, h.updateFocused(msg))
		}

	default:
		// Ticks, command-resolved route states and other screen-bound
		// messages reach every live screen.
		for id, m := range h.content {
			updated, cmd := m.Update(msg)
			h.content[id] = updated
			cmds = append(cmds, cmd)
		}
	}

	return h, h.withFlush(tea.Batch(cmds...))
}

// withFlush appends a flush command when the router scheduled deferred
// work during this update.
func (h *Host) withFlush(cmd tea.Cmd) tea.Cmd {
	if len(h.deferred) == 0 {
		return cmd
	}
	flush := func() tea.Msg { return flushMsg{} }
	if cmd == nil {
		return flush
	}
	return tea.Batch(cmd, flush)
}

// focused returns the route whose content currently receives key input:
// the modal when one is presented, the stack top otherwise.
func (h *Host) focused() nav.Route {
	if modal := h.router.Modal(); modal != nil {
		return modal
	}
	return h.router.Top()
}

func (h *Host) updateFocused(msg tea.Msg) tea.Cmd {
	route := h.focused()
	if route == nil {
		return nil
	}
	m, ok := h.content[route.ID()]
	if !ok {
		return nil
	}
	updated, cmd := m.Update(msg)
	h.content[route.ID()] = updated
	return cmd
}

func (h *Host) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: h.width, Height: max(0, h.height-2)}
}

func (h *Host) View() string {
	base := h.renderBase()
	if modal := h.router.Modal(); modal != nil {
		return h.renderModal(modal)
	}
	return base
}

func (h *Host) renderBase() string {
	top := h.router.Top()
	if top == nil {
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center,
			emptyStyle.Render(h.emptyHint))
	}

	body := ""
	if m, ok := h.content[top.ID()]; ok {
		body = m.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, h.breadcrumb(), body)
}

// breadcrumb renders the push stack root to top.
func (h *Host) breadcrumb() string {
	titles := make([]string, 0, h.router.Depth())
	for _, route := range h.router.Stack() {
		titles = append(titles, nav.TitleFor(route))
	}
	sep := crumbSepStyle.Render(" > ")
	return crumbStyle.Render(strings.Join(titles, sep))
}

func (h *Host) renderModal(modal nav.Route) string {
	body := ""
	if m, ok := h.content[modal.ID()]; ok {
		body = m.View()
	}

	if modal.Style() == nav.StyleFullScreen {
		inner := lipgloss.JoinVertical(lipgloss.Left,
			crumbStyle.Render(nav.TitleFor(modal)),
			body,
			statusStyle.Render("esc: close"))
		box := fullScreenStyle.Width(max(0, h.width-2)).Height(max(0, h.height-2)).Render(inner)
		return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, box)
	}

	opts := nav.SheetOptionsFor(modal)
	sheetHeight := int(float64(h.height) * opts.HeightFraction)
	if sheetHeight < 3 {
		sheetHeight = 3
	}
	sheetWidth := max(0, h.width-8)

	parts := make([]string, 0, 3)
	if opts.ShowGrabber {
		parts = append(parts, grabberStyle.Width(max(0, sheetWidth-2)).Render("────"))
	}
	parts = append(parts, body, statusStyle.Render("esc: close"))
	inner := lipgloss.JoinVertical(lipgloss.Left, parts...)

	box := sheetStyle.Width(max(0, sheetWidth-2)).Height(max(0, sheetHeight-2)).Render(inner)
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Bottom, box)
}
