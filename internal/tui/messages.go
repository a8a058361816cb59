package tui

import (
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/ziplist"
)

// Message types for the TUI

// FocusChangedMsg signals that the carousel moved its focus
type FocusChangedMsg struct {
	Shift ziplist.Shift
}

// ItemActivatedMsg signals that a card was tapped or selected with enter
type ItemActivatedMsg struct {
	ItemID string
}

// RefreshRequestedMsg signals a request to reload the catalog
type RefreshRequestedMsg struct {
	Source string
}

// CatalogLoadedMsg carries the result of a catalog load
type CatalogLoadedMsg struct {
	Catalog domain.Catalog
	Err     error
}

// SnapChangedMsg signals that snap mode was changed outside the UI, e.g. by
// a config file edit
type SnapChangedMsg struct {
	Snap bool
}

// StatusMsg displays a status message
type StatusMsg struct {
	Message string
	IsError bool
}

// ClearStatusMsg clears the status message
type ClearStatusMsg struct{}
