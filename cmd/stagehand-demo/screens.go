package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/stagehand-tui/stagehand/nav"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	entryStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	noteStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	headlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true)
)

type menuKeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Enter key.Binding
}

func defaultMenuKeyMap() menuKeyMap {
	return menuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
	}
}

type menuEntry struct {
	label string
	open  func(m *homeModel) tea.Cmd
}

// homeModel is the demo's root screen: a menu that exercises every
// navigation surface.
type homeModel struct {
	router  *nav.Router
	billing *billingFeature
	keys    menuKeyMap

	cursor  int
	entries []menuEntry
	note    string
}

func newHomeModel(r *nav.Router) tea.Model {
	m := &homeModel{
		router:  r,
		billing: newBillingFeature(nav.NewClient(r)),
		keys:    defaultMenuKeyMap(),
	}
	m.entries = []menuEntry{
		{label: "Order alpha (push)", open: func(m *homeModel) tea.Cmd {
			return nav.RouteToCmd(m.router, detailRoute("alpha"))
		}},
		{label: "Order beta (push)", open: func(m *homeModel) tea.Cmd {
			return nav.RouteToCmd(m.router, detailRoute("beta"))
		}},
		{label: "Live metrics (push)", open: func(m *homeModel) tea.Cmd {
			m.router.RouteTo(metricsRoute())
			return nil
		}},
		{label: "Settings (sheet)", open: func(m *homeModel) tea.Cmd {
			return nav.RouteToCmd(m.router, settingsRoute())
		}},
		{label: "About (full screen)", open: func(m *homeModel) tea.Cmd {
			m.router.RouteTo(aboutRoute())
			return nil
		}},
		{label: "Upgrade plan (portal)", open: func(m *homeModel) tea.Cmd {
			return nav.PortalCmd(m.router, BillingPortal{Plan: "pro"})
		}},
		{label: "Upgrade plan (feature client)", open: func(m *homeModel) tea.Cmd {
			return m.billing.upgradeCmd("team")
		}},
	}
	return m
}

func (m *homeModel) Init() tea.Cmd { return nil }

func (m *homeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Enter):
			return m, m.entries[m.cursor].open(m)
		}

	case nav.RouteState:
		if msg.Phase == nav.PhaseDismissed {
			m.note = fmt.Sprintf("dismissed: %s", msg.Route.ID())
		}

	case billingDoneMsg:
		m.note = fmt.Sprintf("billing flow closed on plan %q", msg.Route.plan)

	case nav.PortalUnmappedMsg:
		m.note = "portal token had no destination"
	}
	return m, nil
}

func (m *homeModel) View() string {
	var b strings.Builder
	for i, entry := range m.entries {
		cursor := "  "
		style := entryStyle
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			style = cursorStyle
		}
		b.WriteString(cursor + style.Render(entry.label) + "\n")
	}
	if m.note != "" {
		b.WriteString("\n" + noteStyle.Render(m.note) + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("↑/↓ move · enter open · esc back · ctrl+c quit"))
	return b.String()
}

// detailModel is a pushed screen; it also demonstrates Replace.
type detailModel struct {
	router *nav.Router
	item   string
}

func newDetailModel(r *nav.Router, item string) tea.Model {
	return detailModel{router: r, item: item}
}

func (m detailModel) Init() tea.Cmd { return nil }

func (m detailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "m":
			// Swap the whole scene for metrics: open now, collapse the
			// stack underneath one tick later.
			m.router.Replace(metricsRoute())
		case "r":
			m.router.PopToRoot()
		}
	}
	return m, nil
}

func (m detailModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render("Order "+m.item),
		entryStyle.Render("Everything about "+m.item+" lives here."),
		"",
		hintStyle.Render("m replace with metrics · r pop to root · esc back"),
	)
}

// settingsModel runs inside a sheet, on a child router.
type settingsModel struct {
	router  *nav.Router
	cursor  int
	toggles []settingsToggle
}

type settingsToggle struct {
	label string
	on    bool
}

func newSettingsModel(r *nav.Router) tea.Model {
	return &settingsModel{
		router: r,
		toggles: []settingsToggle{
			{label: "Notifications", on: true},
			{label: "Autosave", on: false},
			{label: "Telemetry", on: false},
		},
	}
}

func (m *settingsModel) Init() tea.Cmd { return nil }

func (m *settingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.toggles)-1 {
				m.cursor++
			}
		case " ", "enter":
			m.toggles[m.cursor].on = !m.toggles[m.cursor].on
		case "q":
			// The sheet's content closes itself through its own router:
			// the dismiss is delegated up to the presenting parent.
			m.router.Dismiss()
		}
	}
	return m, nil
}

func (m *settingsModel) View() string {
	var b strings.Builder
	b.WriteString(headlineStyle.Render("Settings") + "\n\n")
	for i, tog := range m.toggles {
		mark := "[ ]"
		if tog.on {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, tog.label)
		if i == m.cursor {
			line = cursorStyle.Render("> " + line)
		} else {
			line = entryStyle.Render("  " + line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + hintStyle.Render("space toggle · q close"))
	return b.String()
}

type aboutModel struct{}

func newAboutModel() tea.Model { return aboutModel{} }

func (aboutModel) Init() tea.Cmd                         { return nil }
func (m aboutModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }

func (aboutModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render("stagehand demo"),
		entryStyle.Render("A navigation controller for Bubble Tea applications:"),
		entryStyle.Render("push stacks, sheets, full-screen covers, portals and"),
		entryStyle.Render("narrowed navigation clients for feature modules."),
	)
}
