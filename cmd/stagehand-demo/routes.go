package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagehand-tui/stagehand/nav"
)

// appRoute is the demo's route shape: identity, title, style and a
// screen builder.
type appRoute struct {
	id    string
	title string
	style nav.Style
	build func(r *nav.Router) tea.Model
}

func (a appRoute) ID() string                      { return a.id }
func (a appRoute) Style() nav.Style                { return a.style }
func (a appRoute) Content(r *nav.Router) tea.Model { return a.build(r) }
func (a appRoute) Title() string                   { return a.title }

func homeRoute() nav.Route {
	return appRoute{
		id:    "home",
		title: "Home",
		style: nav.StylePush,
		build: newHomeModel,
	}
}

func detailRoute(item string) nav.Route {
	return appRoute{
		id:    "detail/" + item,
		title: "Detail: " + item,
		style: nav.StylePush,
		build: func(r *nav.Router) tea.Model { return newDetailModel(r, item) },
	}
}

func metricsRoute() nav.Route {
	return appRoute{
		id:    "metrics",
		title: "Metrics",
		style: nav.StylePush,
		build: func(*nav.Router) tea.Model { return newMetricsModel() },
	}
}

func aboutRoute() nav.Route {
	return appRoute{
		id:    "about",
		title: "About",
		style: nav.StyleFullScreen,
		build: func(*nav.Router) tea.Model { return newAboutModel() },
	}
}

// settingsSheet demonstrates the optional sheet-styling capability: a
// short sheet with a grabber instead of the default presentation.
type settingsSheet struct {
	appRoute
}

func (settingsSheet) SheetOptions() nav.SheetOptions {
	return nav.SheetOptions{HeightFraction: 0.4, ShowGrabber: true}
}

func settingsRoute() nav.Route {
	return settingsSheet{appRoute{
		id:    "settings",
		title: "Settings",
		style: nav.StyleSheet,
		build: newSettingsModel,
	}}
}

// startRoute maps the configured start screen to a route, falling back
// to home for anything unknown.
func startRoute(name string) nav.Route {
	switch name {
	case "metrics":
		return metricsRoute()
	case "about":
		return aboutRoute()
	default:
		return homeRoute()
	}
}
