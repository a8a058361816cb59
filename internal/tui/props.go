package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/carousel"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/refresh"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/ziplist"
)

// cardEvent is what catalog cards emit before being lifted into app
// messages
type cardEvent struct {
	shift    ziplist.Shift
	moved    bool
	activate string
}

// liftCardEvent turns a card event into an application message
func liftCardEvent(e cardEvent) tea.Msg {
	if e.moved {
		return FocusChangedMsg{Shift: e.shift}
	}
	return ItemActivatedMsg{ItemID: e.activate}
}

// catalogProperties describes cat as carousel cards speaking cardEvent
func catalogProperties(cat domain.Catalog, focus int, snap bool) carousel.Properties[cardEvent] {
	items := make([]carousel.Item[cardEvent], len(cat.Items))
	for i, entry := range cat.Items {
		items[i] = carousel.Item[cardEvent]{
			ID:    entry.ID,
			Title: entry.Title,
			OnTap: func() (cardEvent, bool) {
				return cardEvent{activate: entry.ID}, true
			},
			Render: func(width int, focused bool) string {
				return components.RenderCard(entry.DisplayTitle(), entry.Subtitle, width, focused)
			},
		}
	}

	return carousel.Properties[cardEvent]{
		Items: items,
		Focus: focus,
		Snap:  snap,
		OnSelectionChange: func(op ziplist.Shift) (cardEvent, bool) {
			return cardEvent{shift: op, moved: true}, true
		},
	}
}

// appCarouselProperties lifts the catalog cards into app messages
func appCarouselProperties(cat domain.Catalog, focus int, snap bool) carousel.Properties[tea.Msg] {
	return carousel.MapProperties(catalogProperties(cat, focus, snap), liftCardEvent)
}

// reloadRequest is the refresh control's local trigger
type reloadRequest struct {
	source string
}

// refreshProperties builds the refresh control state for title
func refreshProperties(title string, searching bool) refresh.Properties[tea.Msg] {
	state := refresh.Idle(reloadRequest{source: "pull"})
	if searching {
		state = refresh.Searching[reloadRequest]()
	}
	return refresh.Map(refresh.New(state, refresh.WithTitle(title)), func(r reloadRequest) tea.Msg {
		return RefreshRequestedMsg{Source: r.source}
	})
}
