package nav

import tea "github.com/charmbracelet/bubbletea"

// Style selects how a route is put on stage.
type Style int

const (
	// StylePush stacks the route on the back-navigable push stack.
	StylePush Style = iota
	// StyleSheet presents the route in the modal slot as a partial overlay.
	StyleSheet
	// StyleFullScreen presents the route in the modal slot covering everything.
	StyleFullScreen
)

// Modal reports whether the style occupies the modal slot rather than the
// push stack.
func (s Style) Modal() bool {
	return s == StyleSheet || s == StyleFullScreen
}

func (s Style) String() string {
	switch s {
	case StylePush:
		return "push"
	case StyleSheet:
		return "sheet"
	case StyleFullScreen:
		return "fullscreen"
	default:
		return "unknown"
	}
}

// Route describes a destination screen. Implementations are immutable
// values; equality, hashing and dismiss-handler keying use ID() alone,
// so two routes with equal IDs are the same logical screen.
//
// Content receives the router the screen should navigate with: the
// presenting router for push routes, a fresh child router for modal
// routes (see Router.ViewFor).
type Route interface {
	ID() string
	Style() Style
	Content(r *Router) tea.Model
}

// Titler is an optional route capability: a human-readable title the
// container adapter can show in headers and breadcrumbs.
type Titler interface {
	Title() string
}

// TitleFor returns the route's title, falling back to its ID.
func TitleFor(route Route) string {
	if t, ok := route.(Titler); ok {
		return t.Title()
	}
	return route.ID()
}

// SheetOptions carries presentation metadata for sheet-style routes.
type SheetOptions struct {
	// HeightFraction is the share of the host height the sheet covers,
	// in (0, 1]. Zero means the default.
	HeightFraction float64
	// ShowGrabber draws a grab handle hint in the sheet's top border.
	ShowGrabber bool
}

// SheetStyler is an optional route capability for customizing sheet
// presentation. Routes without it get DefaultSheetOptions.
type SheetStyler interface {
	SheetOptions() SheetOptions
}

// DefaultSheetOptions is used for sheet routes that do not implement
// SheetStyler.
var DefaultSheetOptions = SheetOptions{HeightFraction: 0.6, ShowGrabber: true}

// SheetOptionsFor resolves a route's sheet presentation metadata.
func SheetOptionsFor(route Route) SheetOptions {
	if s, ok := route.(SheetStyler); ok {
		opts := s.SheetOptions()
		if opts.HeightFraction <= 0 || opts.HeightFraction > 1 {
			opts.HeightFraction = DefaultSheetOptions.HeightFraction
		}
		return opts
	}
	return DefaultSheetOptions
}
