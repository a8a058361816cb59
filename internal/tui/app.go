package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/reel/internal/carousel"
	"github.com/mmcdole/reel/internal/domain"
	"github.com/mmcdole/reel/internal/tui/components"
	"github.com/mmcdole/reel/internal/tui/styles"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Layout
const (
	// Header, refresh line and footer
	ChromeHeight = 3

	// Card strip plus its status bar and border
	CarouselHeight = components.CardHeight + components.StatusBarLines + 2
)

// Options configures the application model
type Options struct {
	Loader       CatalogLoader
	Store        domain.FocusStore // optional
	Snap         bool
	ItemWidth    int
	RestoreFocus bool
	Logger       *slog.Logger
}

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	opts   Options
	logger *slog.Logger

	// Data
	Catalog    domain.Catalog
	hasCatalog bool

	// UI Components
	Carousel components.Carousel[tea.Msg]
	Refresh  components.RefreshControl[tea.Msg]
	help     help.Model

	// Dimensions
	Width  int
	Height int

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusOK    bool
	snap        bool
}

// NewModel creates a new application model
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ItemWidth <= 0 {
		opts.ItemWidth = 24
	}

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	return Model{
		State:   StateBrowsing,
		opts:    opts,
		logger:  logger,
		Refresh: components.NewRefreshControl(refreshProperties("Catalog", true)),
		help:    h,
		snap:    opts.Snap,
	}
}

// Init starts the initial catalog load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.Refresh.Init(),
		LoadCatalogCmd(m.opts.Loader),
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp {
			return m, m.Refresh.Pull()
		}
		return m.updateCarousel(msg)

	case carousel.TickMsg:
		return m.updateCarousel(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Refresh, cmd = m.Refresh.Update(msg)
		return m, cmd

	case FocusChangedMsg:
		return m.handleFocusChanged(msg)

	case ItemActivatedMsg:
		idx := m.Catalog.IndexOf(msg.ItemID)
		if idx < 0 {
			err := fmt.Errorf("activate %q: %w", msg.ItemID, domain.ErrItemNotFound)
			m.logger.Warn("activation failed", "error", err)
			return m, m.setStatus(err.Error(), true)
		}
		return m, m.setStatus("Selected: "+m.Catalog.Items[idx].DisplayTitle(), false)

	case RefreshRequestedMsg:
		m.logger.Info("catalog refresh requested", "source", msg.Source)
		var cmd tea.Cmd
		m.Refresh, cmd = m.Refresh.SetProperties(refreshProperties(m.catalogTitle(), true))
		return m, tea.Batch(cmd, LoadCatalogCmd(m.opts.Loader))

	case CatalogLoadedMsg:
		return m.handleCatalogLoaded(msg)

	case SnapChangedMsg:
		m.setSnap(msg.Snap)
		return m, nil

	case StatusMsg:
		return m, m.setStatus(msg.Message, msg.IsError)

	case ClearStatusMsg:
		m.StatusMsg = ""
		m.StatusIsErr = false
		m.statusOK = false
		return m, nil
	}

	return m.updateCarousel(msg)
}

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.State == StateHelp {
		if key.Matches(msg, Keys.Escape, Keys.Help, Keys.Quit) {
			m.State = StateBrowsing
		}
		return m, nil
	}

	// Filter and jump inputs own the keyboard
	if m.hasCatalog && m.Carousel.IsTyping() {
		return m.updateCarousel(msg)
	}

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.State = StateHelp
		return m, nil

	case key.Matches(msg, components.RefreshKeys.Pull):
		return m, m.Refresh.Pull()

	case key.Matches(msg, Keys.ToggleSnap):
		m.setSnap(!m.snap)
		if m.snap {
			return m, m.setStatus("Snap on", false)
		}
		return m, m.setStatus("Snap off", false)
	}

	return m.updateCarousel(msg)
}

func (m Model) updateCarousel(msg tea.Msg) (tea.Model, tea.Cmd) {
	if !m.hasCatalog {
		return m, nil
	}
	var cmd tea.Cmd
	m.Carousel, cmd = m.Carousel.Update(msg)
	return m, cmd
}

func (m Model) handleFocusChanged(msg FocusChangedMsg) (tea.Model, tea.Cmd) {
	item, ok := m.currentItem()
	if !ok {
		return m, nil
	}

	m.logger.Debug("focus changed", "shift", msg.Shift.String(), "itemID", item.ID)

	cmds := []tea.Cmd{m.setStatus(fmt.Sprintf("%s  %s", item.DisplayTitle(), msg.Shift), false)}
	if m.opts.Store != nil {
		cmds = append(cmds, SaveFocusCmd(m.opts.Store, m.Catalog.Name, item.ID))
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleCatalogLoaded(msg CatalogLoadedMsg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg.Err != nil {
		m.logger.Error("catalog load failed", "error", msg.Err)
		var cmd tea.Cmd
		m.Refresh, cmd = m.Refresh.SetProperties(refreshProperties(m.catalogTitle(), false))
		cmds = append(cmds, cmd, m.setStatus("loading catalog: "+msg.Err.Error(), true))
		return m, tea.Batch(cmds...)
	}

	cat := msg.Catalog
	focus := m.initialFocus(cat)
	props := appCarouselProperties(cat, focus, m.snap)

	if m.hasCatalog {
		if err := m.Carousel.SetProperties(props); err != nil {
			return m, m.setStatus(err.Error(), true)
		}
	} else {
		c, err := components.NewCarousel(cat.Name, props, m.opts.ItemWidth, m.logger)
		if err != nil {
			return m, m.setStatus(err.Error(), true)
		}
		m.Carousel = c
		m.Carousel.SetFocused(true)
	}

	m.Catalog = cat
	m.hasCatalog = true
	m.updateLayout()
	m.logger.Info("catalog loaded", "name", cat.Name, "items", len(cat.Items), "focus", focus)

	var cmd tea.Cmd
	m.Refresh, cmd = m.Refresh.SetProperties(refreshProperties(m.catalogTitle(), false))
	cmds = append(cmds, cmd, m.setSuccess(fmt.Sprintf("Loaded %d items", len(cat.Items))))
	return m, tea.Batch(cmds...)
}

// initialFocus keeps the current item across reloads, otherwise restores
// the persisted focus
func (m Model) initialFocus(cat domain.Catalog) int {
	if item, ok := m.currentItem(); ok {
		if idx := cat.IndexOf(item.ID); idx >= 0 {
			return idx
		}
	}
	if m.opts.RestoreFocus && m.opts.Store != nil {
		if id, ok := m.opts.Store.GetFocus(cat.Name); ok {
			if idx := cat.IndexOf(id); idx >= 0 {
				return idx
			}
		}
	}
	return 0
}

// currentItem returns the catalog entry under the carousel focus
func (m Model) currentItem() (domain.CatalogItem, bool) {
	if !m.hasCatalog {
		return domain.CatalogItem{}, false
	}
	card, ok := m.Carousel.Current()
	if !ok {
		return domain.CatalogItem{}, false
	}
	idx := m.Catalog.IndexOf(card.ID)
	if idx < 0 {
		return domain.CatalogItem{}, false
	}
	return m.Catalog.Items[idx], true
}

func (m *Model) setSnap(snap bool) {
	m.snap = snap
	if m.hasCatalog {
		m.Carousel.SetSnap(snap)
	}
}

func (m *Model) setSuccess(text string) tea.Cmd {
	cmd := m.setStatus(text, false)
	m.statusOK = true
	return cmd
}

func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.StatusMsg = text
	m.StatusIsErr = isErr
	m.statusOK = false
	if isErr {
		return ClearStatusCmd(5 * time.Second)
	}
	return ClearStatusCmd(3 * time.Second)
}

func (m Model) catalogTitle() string {
	if m.Catalog.Name != "" {
		return m.Catalog.Name
	}
	return "Catalog"
}

// updateLayout updates component sizes based on window size
func (m *Model) updateLayout() {
	if m.Width == 0 || m.Height == 0 {
		return
	}
	m.help.Width = m.Width
	m.Refresh.SetWidth(m.Width)
	if m.hasCatalog {
		m.Carousel.SetSize(m.Width, min(CarouselHeight, max(m.Height-ChromeHeight, 0)))
	}
}

// View renders the application
func (m Model) View() string {
	if !m.Ready {
		return "Loading..."
	}

	if m.State == StateHelp {
		return m.renderHelp()
	}

	header := styles.TitleStyle.Render(m.catalogTitle())

	var body string
	if m.hasCatalog {
		body = m.Carousel.View()
	} else {
		body = lipgloss.Place(m.Width, CarouselHeight, lipgloss.Center, lipgloss.Center,
			styles.DimStyle.Render("Loading catalog..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		m.Refresh.View(),
	)

	// Pad so the footer sits on the last line
	gap := m.Height - lipgloss.Height(content) - 1
	if gap > 0 {
		content += strings.Repeat("\n", gap)
	}
	return content + "\n" + m.renderFooter()
}

// renderFooter renders status on the left and key hints on the right
func (m Model) renderFooter() string {
	var left string
	if m.StatusMsg != "" {
		switch {
		case m.StatusIsErr:
			left = styles.ErrorStyle.Render(m.StatusMsg)
		case m.statusOK:
			left = styles.SuccessStyle.Render(m.StatusMsg)
		default:
			left = styles.DimStyle.Render(m.StatusMsg)
		}
	}

	right := m.help.ShortHelpView(Keys.ShortHelp())

	leftWidth := lipgloss.Width(left)
	rightWidth := lipgloss.Width(right)
	if leftWidth+rightWidth+1 > m.Width {
		right = styles.AccentStyle.Render("?") + styles.DimStyle.Render(" help")
		rightWidth = lipgloss.Width(right)
	}

	gap := max(m.Width-leftWidth-rightWidth, 0)
	return left + strings.Repeat(" ", gap) + right
}

// renderHelp renders the help screen
func (m Model) renderHelp() string {
	body := styles.TitleStyle.Render("Keys") + "\n\n" +
		m.help.FullHelpView(Keys.FullHelp()) + "\n\n" +
		styles.DimStyle.Render("Drag or use the horizontal wheel to swipe. Wheel up refreshes.") + "\n" +
		styles.DimStyle.Render("Press ? or esc to return...")

	return lipgloss.Place(m.Width, m.Height,
		lipgloss.Center, lipgloss.Center,
		styles.ActiveBorder.Padding(1, 2).Render(body))
}
