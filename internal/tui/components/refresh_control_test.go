package components

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/reel/internal/refresh"
)

type reloadMsg struct{ source string }

func TestRefreshPullEmitsTrigger(t *testing.T) {
	r := NewRefreshControl(refresh.New(refresh.Idle(reloadMsg{source: "pull"}), refresh.WithTitle("Catalog")))

	cmd := r.Pull()
	require.NotNil(t, cmd)
	assert.Equal(t, reloadMsg{source: "pull"}, cmd())
	assert.Contains(t, ansi.Strip(r.View()), "Catalog")
}

func TestRefreshPullWhileSearching(t *testing.T) {
	r := NewRefreshControl(refresh.New(refresh.Searching[reloadMsg]()))

	assert.Nil(t, r.Pull())
	assert.True(t, r.IsSearching())
	assert.Contains(t, ansi.Strip(r.View()), "Refreshing")
}

func TestRefreshSetPropertiesStartsSpinner(t *testing.T) {
	r := NewRefreshControl(refresh.New(refresh.Idle(reloadMsg{})))

	r, cmd := r.SetProperties(refresh.New(refresh.Searching[reloadMsg]()))
	assert.NotNil(t, cmd)
	assert.True(t, r.IsSearching())

	// Already searching: no second spinner loop
	r, cmd = r.SetProperties(refresh.New(refresh.Searching[reloadMsg]()))
	assert.Nil(t, cmd)

	r, cmd = r.SetProperties(refresh.New(refresh.Idle(reloadMsg{})))
	assert.Nil(t, cmd)
	assert.False(t, r.IsSearching())
}

func TestRefreshIgnoresSpinnerWhenIdle(t *testing.T) {
	r := NewRefreshControl(refresh.New(refresh.Idle(reloadMsg{})))

	_, cmd := r.Update(spinner.TickMsg{})
	assert.Nil(t, cmd)
}
