package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/reel/internal/ziplist"
)

func TestAppCarouselPropertiesLiftMessages(t *testing.T) {
	p := appCarouselProperties(testCatalog(), 2, true)

	require.Len(t, p.Items, 4)
	assert.Equal(t, 2, p.Focus)
	assert.True(t, p.Snap)

	msg, ok := p.OnSelectionChange(ziplist.Right(2))
	assert.True(t, ok)
	assert.Equal(t, FocusChangedMsg{Shift: ziplist.Right(2)}, msg)

	msg, ok = p.Items[3].Tap()
	assert.True(t, ok)
	assert.Equal(t, ItemActivatedMsg{ItemID: "stalker"}, msg)

	assert.Contains(t, p.Items[1].Render(20, true), "Vertigo (1958)")
}

func TestRefreshPropertiesLiftTrigger(t *testing.T) {
	idle := refreshProperties("Films", false)
	msg, ok := idle.Trigger()
	assert.True(t, ok)
	assert.Equal(t, tea.Msg(RefreshRequestedMsg{Source: "pull"}), msg)
	assert.Equal(t, "Films", idle.Title)

	searching := refreshProperties("Films", true)
	_, ok = searching.Trigger()
	assert.False(t, ok)
	assert.True(t, searching.State.IsSearching())
}
