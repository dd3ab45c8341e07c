package teahost

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the host-level bindings. Everything else is forwarded
// to the focused screen.
type KeyMap struct {
	Back key.Binding
	Root key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default host bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back/close"),
		),
		Root: key.NewBinding(
			key.WithKeys("ctrl+home"),
			key.WithHelp("ctrl+home", "back to root"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
