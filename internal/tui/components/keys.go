package components

import "github.com/charmbracelet/bubbles/key"

// CarouselKeyMap defines key bindings for carousel navigation
type CarouselKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	First  key.Binding
	Last   key.Binding
	Select key.Binding
	Filter key.Binding
	Jump   key.Binding
	Escape key.Binding
	Accept key.Binding
}

// DefaultCarouselKeyMap returns the default carousel key bindings
func DefaultCarouselKeyMap() CarouselKeyMap {
	return CarouselKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "previous"),
		),
		Next: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "next"),
		),
		First: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "first"),
		),
		Last: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "last"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Jump: key.NewBinding(
			key.WithKeys(":"),
			key.WithHelp(":", "jump to"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "clear"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "accept"),
		),
	}
}

// RefreshKeyMap defines key bindings for the refresh control
type RefreshKeyMap struct {
	Pull key.Binding
}

// DefaultRefreshKeyMap returns the default refresh key bindings
func DefaultRefreshKeyMap() RefreshKeyMap {
	return RefreshKeyMap{
		Pull: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Package-level key map instances
var (
	CarouselKeys = DefaultCarouselKeyMap()
	RefreshKeys  = DefaultRefreshKeyMap()
)
