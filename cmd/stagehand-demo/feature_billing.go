package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/stagehand-tui/stagehand/nav"
)

// BillingPortal is the cross-module token other features use to request
// the billing screens without importing billing's route types.
type BillingPortal struct {
	Plan string
}

// billingRoute is billing's own route type, the narrow shape its
// navigation client is scoped to.
type billingRoute struct {
	plan string
}

func (b billingRoute) ID() string       { return "billing/" + b.plan }
func (b billingRoute) Style() nav.Style { return nav.StyleSheet }
func (b billingRoute) Title() string    { return "Billing" }
func (b billingRoute) Content(r *nav.Router) tea.Model {
	return newBillingModel(r, b.plan)
}

// billingDoneMsg reports the end of a billing flow back to whoever
// started it, already narrowed to billing's route type.
type billingDoneMsg = nav.State[billingRoute]

// billingFeature holds a navigation capability narrowed to billing
// routes: it can open its own screens and close flows, nothing else.
type billingFeature struct {
	client nav.Client[billingRoute]
}

func newBillingFeature(parent nav.Client[nav.Route]) *billingFeature {
	return &billingFeature{
		client: nav.ChildClient(parent,
			func(b billingRoute) nav.Route { return b },
			func(p nav.Route) (billingRoute, bool) {
				b, ok := p.(billingRoute)
				return b, ok
			}),
	}
}

// upgradeCmd opens the upgrade sheet and reports its dismissal as a
// billingDoneMsg.
func (f *billingFeature) upgradeCmd(plan string) tea.Cmd {
	ch := f.client.RouteToAwait(billingRoute{plan: plan})
	return func() tea.Msg {
		return <-ch
	}
}

// appMapper is the application's portal mapper: the one place that knows
// every module's screens.
type appMapper struct {
	logger *zap.Logger
}

func newAppMapper(logger *zap.Logger) *appMapper {
	return &appMapper{logger: logger}
}

func (m *appMapper) OnBeforeMap(external any) {
	m.logger.Info("portal requested", zap.Any("token", external))
}

func (m *appMapper) MapRoute(external any) (nav.Route, bool) {
	switch tok := external.(type) {
	case BillingPortal:
		plan := tok.Plan
		if plan == "" {
			plan = "pro"
		}
		return billingRoute{plan: plan}, true
	default:
		return nil, false
	}
}

type billingModel struct {
	router *nav.Router
	plan   string
}

func newBillingModel(r *nav.Router, plan string) tea.Model {
	return billingModel{router: r, plan: plan}
}

func (m billingModel) Init() tea.Cmd { return nil }

func (m billingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "enter":
			m.router.Dismiss()
		}
	}
	return m, nil
}

func (m billingModel) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		headlineStyle.Render("Upgrade to "+strings.ToUpper(m.plan)),
		entryStyle.Render("Unlock more stages, more drama."),
		"",
		hintStyle.Render("enter confirm · esc cancel"),
	)
}
