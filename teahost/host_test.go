package teahost

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/stagehand-tui/stagehand/nav"
)

type staticModel struct {
	text string
}

func (m staticModel) Init() tea.Cmd                       { return nil }
func (m staticModel) Update(tea.Msg) (tea.Model, tea.Cmd) { return m, nil }
func (m staticModel) View() string                        { return m.text }

type hostRoute struct {
	id    string
	style nav.Style
	text  string
}

func (r hostRoute) ID() string                    { return r.id }
func (r hostRoute) Style() nav.Style              { return r.style }
func (r hostRoute) Content(*nav.Router) tea.Model { return staticModel{text: r.text} }
func (r hostRoute) Title() string                 { return strings.ToUpper(r.id) }

// deliver feeds the pending lifecycle events into the host the way the
// Bubble Tea runtime would, one message per queued event.
func deliver(t *testing.T, h *Host, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		st, ok := <-h.sub.Events()
		if !ok {
			t.Fatal("event stream closed early")
		}
		h.Update(streamMsg{state: st})
	}
}

func newTestHost(t *testing.T) (*Host, *nav.Router) {
	t.Helper()
	r := nav.New()
	h := New(r)
	h.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return h, r
}

func TestHost_RendersTopRouteWithBreadcrumb(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	r.Push(hostRoute{id: "home", text: "welcome home"})
	deliver(t, h, 1)

	view := h.View()
	if !strings.Contains(view, "welcome home") {
		t.Fatalf("view missing screen content:\n%s", view)
	}
	if !strings.Contains(view, "HOME") {
		t.Fatalf("view missing breadcrumb title:\n%s", view)
	}
}

func TestHost_SheetCoversBaseScreen(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	r.Push(hostRoute{id: "home", text: "base content"})
	r.RouteTo(hostRoute{id: "prefs", style: nav.StyleSheet, text: "sheet content"})
	deliver(t, h, 2)

	view := h.View()
	if !strings.Contains(view, "sheet content") {
		t.Fatalf("view missing sheet content:\n%s", view)
	}
	if strings.Contains(view, "base content") {
		t.Fatalf("sheet did not cover the base screen:\n%s", view)
	}
}

func TestHost_BackKeyFiresDismissHandlerExactlyOnce(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	fired := 0
	r.RouteTo(hostRoute{id: "prefs", style: nav.StyleSheet, text: "sheet"},
		nav.WithOnDismiss(func() { fired++ }))
	deliver(t, h, 1)

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if r.Modal() != nil {
		t.Fatal("modal still presented after back key")
	}
	if fired != 1 {
		t.Fatalf("handler fired %d times, want 1", fired)
	}

	// Nothing left on stage: another back key changes nothing.
	h.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if fired != 1 {
		t.Fatalf("handler fired %d times after second back key, want 1", fired)
	}
}

func TestHost_BackKeyPopsPushStack(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	r.Push(hostRoute{id: "home", text: "home"})
	r.Push(hostRoute{id: "detail", text: "detail"})
	deliver(t, h, 2)

	h.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if got := r.Depth(); got != 1 {
		t.Fatalf("depth = %d, want 1", got)
	}
	if got := r.Top().ID(); got != "home" {
		t.Fatalf("top = %q, want home", got)
	}
}

func TestHost_DismissedContentIsDroppedFromCache(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	r.Push(hostRoute{id: "home", text: "home"})
	deliver(t, h, 1)

	if _, ok := h.content["home"]; !ok {
		t.Fatal("active route has no cached content")
	}

	r.Pop()
	deliver(t, h, 1)

	if _, ok := h.content["home"]; ok {
		t.Fatal("dismissed route still cached")
	}
}

func TestHost_ReplaceSecondPhaseRunsOnFlush(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	r.Push(hostRoute{id: "a", text: "a"})
	r.Push(hostRoute{id: "b", text: "b"})

	r.Replace(hostRoute{id: "fresh", text: "fresh"})

	if got := r.Depth(); got != 3 {
		t.Fatalf("depth before flush = %d, want 3", got)
	}

	h.Update(flushMsg{})

	if got := r.Depth(); got != 1 {
		t.Fatalf("depth after flush = %d, want 1", got)
	}
	if got := r.Top().ID(); got != "fresh" {
		t.Fatalf("top = %q, want fresh", got)
	}
}

type routeStateSink struct {
	seen *int
}

func (m routeStateSink) Init() tea.Cmd { return nil }
func (m routeStateSink) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(nav.RouteState); ok {
		*m.seen++
	}
	return m, nil
}
func (m routeStateSink) View() string { return "" }

type sinkRoute struct {
	hostRoute
	seen *int
}

func (r sinkRoute) Content(*nav.Router) tea.Model { return routeStateSink{seen: r.seen} }

func TestHost_CommandRouteStatesForwardToScreens(t *testing.T) {
	t.Parallel()

	h, r := newTestHost(t)
	seen := 0
	r.Push(sinkRoute{hostRoute: hostRoute{id: "home"}, seen: &seen})
	deliver(t, h, 1)

	// A state resolving out of RouteToCmd arrives as a plain
	// nav.RouteState. The host must hand it to the screens, not treat it
	// as its own pump delivery.
	h.Update(nav.Dismissed(hostRoute{id: "other"}))

	if seen != 1 {
		t.Fatalf("screen saw %d route states, want 1", seen)
	}
	if _, ok := h.content["home"]; !ok {
		t.Fatal("forwarded state disturbed the content cache")
	}
}

func TestHost_EmptyStageShowsHint(t *testing.T) {
	t.Parallel()

	r := nav.New()
	h := New(r, WithEmptyHint("open something"))
	h.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	if view := h.View(); !strings.Contains(view, "open something") {
		t.Fatalf("view missing empty hint:\n%s", view)
	}
}
