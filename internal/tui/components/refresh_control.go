package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/reel/internal/refresh"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// RefreshControl shows pull-to-refresh state and emits the idle state's
// trigger message when pulled
type RefreshControl[M any] struct {
	props   refresh.Properties[M]
	spinner spinner.Model
	width   int
}

// NewRefreshControl creates a refresh control
func NewRefreshControl[M any](props refresh.Properties[M]) RefreshControl[M] {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	return RefreshControl[M]{
		props:   props,
		spinner: s,
	}
}

// Init starts the spinner if the control begins in the searching state
func (r RefreshControl[M]) Init() tea.Cmd {
	if r.IsSearching() {
		return r.spinner.Tick
	}
	return nil
}

// SetProperties replaces the control state. Entering the searching state
// starts the spinner.
func (r RefreshControl[M]) SetProperties(props refresh.Properties[M]) (RefreshControl[M], tea.Cmd) {
	wasSearching := r.props.State.IsSearching()
	r.props = props
	if props.State.IsSearching() && !wasSearching {
		return r, r.spinner.Tick
	}
	return r, nil
}

// Properties returns the current properties
func (r RefreshControl[M]) Properties() refresh.Properties[M] {
	return r.props
}

// SetWidth sets the rendered width
func (r *RefreshControl[M]) SetWidth(width int) {
	r.width = width
}

// IsSearching returns true while a refresh is in flight
func (r RefreshControl[M]) IsSearching() bool {
	return r.props.State.IsSearching()
}

// Pull returns a command delivering the trigger message. Nil while
// searching.
func (r RefreshControl[M]) Pull() tea.Cmd {
	msg, ok := r.props.Trigger()
	if !ok {
		return nil
	}
	return func() tea.Msg { return msg }
}

// Update advances the spinner while searching
func (r RefreshControl[M]) Update(msg tea.Msg) (RefreshControl[M], tea.Cmd) {
	if _, ok := msg.(spinner.TickMsg); !ok || !r.IsSearching() {
		return r, nil
	}
	var cmd tea.Cmd
	r.spinner, cmd = r.spinner.Update(msg)
	return r, cmd
}

// View renders the control
func (r RefreshControl[M]) View() string {
	title := r.props.Title
	if title == "" {
		title = "Refresh"
	}

	var line string
	if r.IsSearching() {
		line = r.spinner.View() + " " + styles.AccentStyle.Render("Refreshing "+title+"…")
	} else {
		line = styles.DimStyle.Render("↻ " + title)
	}

	if r.width > 0 {
		return styles.Truncate(line, r.width)
	}
	return line
}
