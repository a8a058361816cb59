package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/domain"
)

// CatalogLoader produces the catalog to display
type CatalogLoader func() (*domain.Catalog, error)

// Command factories for async operations

// LoadCatalogCmd loads the catalog off the UI loop
func LoadCatalogCmd(load CatalogLoader) tea.Cmd {
	return func() tea.Msg {
		cat, err := load()
		if err != nil {
			return CatalogLoadedMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: *cat}
	}
}

// SaveFocusCmd persists the focused item. Failures surface as a status
// message.
func SaveFocusCmd(store domain.FocusStore, key, itemID string) tea.Cmd {
	return func() tea.Msg {
		if err := store.SaveFocus(key, itemID); err != nil {
			return StatusMsg{Message: "saving focus: " + err.Error(), IsError: true}
		}
		return nil
	}
}

// ClearStatusCmd returns a command that clears status after a delay
func ClearStatusCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{}
	})
}
