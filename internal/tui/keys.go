package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/mmcdole/reel/internal/tui/components"
)

// KeyMap defines the application-level key bindings. Carousel navigation
// lives in components.CarouselKeys.
type KeyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Escape     key.Binding
	ToggleSnap key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		ToggleSnap: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle snap"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		components.CarouselKeys.Prev,
		components.CarouselKeys.Next,
		components.CarouselKeys.Filter,
		components.RefreshKeys.Pull,
		k.Help,
		k.Quit,
	}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{
			components.CarouselKeys.Prev,
			components.CarouselKeys.Next,
			components.CarouselKeys.First,
			components.CarouselKeys.Last,
		},
		{
			components.CarouselKeys.Select,
			components.CarouselKeys.Filter,
			components.CarouselKeys.Jump,
			components.CarouselKeys.Escape,
		},
		{
			components.RefreshKeys.Pull,
			k.ToggleSnap,
			k.Help,
			k.Quit,
		},
	}
}
