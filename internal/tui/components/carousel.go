package components

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mmcdole/reel/internal/carousel"
	"github.com/mmcdole/reel/internal/mailbox"
	"github.com/mmcdole/reel/internal/search"
	"github.com/mmcdole/reel/internal/tui/styles"
	"github.com/mmcdole/reel/internal/ziplist"
)

// inputMode is what the bottom bar input is being used for
type inputMode int

const (
	inputNone inputMode = iota
	inputFilter
	inputJump
)

// StatusBarLines is the line under the strip for position, filter and jump
const StatusBarLines = 1

// Carousel is a horizontally scrolling, focus-tracking strip of cards. Drags,
// wheel and keys are resolved by a carousel.Controller; messages it produces
// are returned from Update as commands.
type Carousel[M any] struct {
	all  []carousel.Item[M] // unfiltered items
	seq  ziplist.ZipList[carousel.Item[M]]
	none bool // filter matched nothing; seq holds the last non-empty result

	props carousel.Properties[M]
	ctrl  *carousel.Controller[M]
	view  *ScrollView
	sched *carousel.Deferred
	box   *mailbox.Queue

	// Dimensions
	width   int
	height  int
	focused bool

	title string

	// Mouse drag state
	dragging  bool
	dragX     int
	dragMoved bool

	// Bottom bar
	mode        inputMode
	input       textinput.Model
	filterQuery string
	notice      string

	logger *slog.Logger
}

// NewCarousel creates a carousel showing props. Fails if props has no items
// or an out-of-range focus.
func NewCarousel[M any](title string, props carousel.Properties[M], itemWidth int, logger *slog.Logger) (Carousel[M], error) {
	if logger == nil {
		logger = slog.Default()
	}

	ti := textinput.New()
	ti.PromptStyle = styles.FilterPromptStyle
	ti.TextStyle = styles.FilterStyle

	c := Carousel[M]{
		title:  title,
		view:   NewScrollView(itemWidth),
		sched:  carousel.NewDeferred(),
		box:    &mailbox.Queue{},
		input:  ti,
		logger: logger,
	}
	if err := c.SetProperties(props); err != nil {
		return Carousel[M]{}, err
	}
	return c, nil
}

// SetProperties replaces the items, focus and snap mode. Any filter is
// cleared.
func (c *Carousel[M]) SetProperties(props carousel.Properties[M]) error {
	seq, err := props.Sequence()
	if err != nil {
		return fmt.Errorf("carousel %q: %w", c.title, err)
	}

	ctrl, err := carousel.NewController(carousel.Options[M]{
		Count:             seq.Len(),
		Selected:          seq.CenterIndex(),
		Snap:              props.Snap,
		OnSelectionChange: props.OnSelectionChange,
		Scroller:          c.view,
		Scheduler:         c.sched,
		Mailbox:           c.box,
		Logger:            c.logger,
	})
	if err != nil {
		return err
	}

	c.props = props
	c.all = seq.Items()
	c.seq = seq
	c.none = false
	c.ctrl = ctrl
	c.filterQuery = ""
	c.notice = ""
	c.closeInput()

	c.view.SetCount(seq.Len())
	c.view.CenterOn(seq.CenterIndex())
	return nil
}

// SetSize updates the component dimensions
func (c *Carousel[M]) SetSize(width, height int) {
	c.width = width
	c.height = height
	frameW, _ := styles.ActiveBorder.GetFrameSize()
	c.view.SetSize(width - frameW)
	c.view.CenterOn(c.ctrl.Selected())
	c.input.Width = max(width-frameW-4, 1)
}

// SetFocused sets the focus state
func (c *Carousel[M]) SetFocused(focused bool) {
	c.focused = focused
}

// SetSnap enables or disables snap mode
func (c *Carousel[M]) SetSnap(snap bool) {
	c.ctrl.SetSnap(snap)
	c.props.Snap = snap
	if snap {
		c.view.CenterOn(c.ctrl.Selected())
	}
}

// Snap reports whether snap mode is enabled
func (c Carousel[M]) Snap() bool { return c.ctrl.Snap() }

// Selected returns the focused index within the visible items
func (c Carousel[M]) Selected() int { return c.seq.CenterIndex() }

// Len returns the number of visible items
func (c Carousel[M]) Len() int {
	if c.none {
		return 0
	}
	return c.seq.Len()
}

// Current returns the focused item. False when a filter matches nothing.
func (c Carousel[M]) Current() (carousel.Item[M], bool) {
	if c.none {
		return carousel.Item[M]{}, false
	}
	return c.seq.Center(), true
}

// IsTyping returns true while the filter or jump input has the keyboard
func (c Carousel[M]) IsTyping() bool {
	return c.mode != inputNone
}

// IsFiltering returns true if a filter query is applied
func (c Carousel[M]) IsFiltering() bool {
	return c.filterQuery != ""
}

// Offset returns the scroll view's content offset
func (c Carousel[M]) Offset() int {
	return c.view.ContentOffset()
}

// Init initializes the component
func (c Carousel[M]) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (c Carousel[M]) Update(msg tea.Msg) (Carousel[M], tea.Cmd) {
	var inputCmd tea.Cmd

	switch msg := msg.(type) {
	case carousel.TickMsg:
		msg.Run()
		if c.dragging {
			// A recenter landed under a held button; measure from here.
			c.ctrl.DragBegan()
		}
		return c, nil

	case tea.MouseMsg:
		if !c.none {
			c.handleMouse(msg)
		}

	case tea.KeyMsg:
		if c.mode != inputNone {
			inputCmd = c.handleInputKey(msg)
		} else {
			c.handleKey(msg)
		}

	default:
		if c.mode != inputNone {
			c.input, inputCmd = c.input.Update(msg)
		}
	}

	return c, tea.Batch(inputCmd, c.flush())
}

// flush hands deferred recenters and dispatched messages to the runtime
func (c *Carousel[M]) flush() tea.Cmd {
	return tea.Batch(c.sched.Tick(), c.box.Drain())
}

func (c *Carousel[M]) handleKey(msg tea.KeyMsg) {
	if !c.focused {
		return
	}
	c.notice = ""

	switch {
	case key.Matches(msg, CarouselKeys.Filter):
		c.openInput(inputFilter, "/ ", c.filterQuery)
		return
	case key.Matches(msg, CarouselKeys.Escape):
		if c.filterQuery != "" {
			c.applyFilter("")
		}
		return
	}

	if c.none {
		return
	}

	switch {
	case key.Matches(msg, CarouselKeys.Prev):
		c.swipe(-1)
	case key.Matches(msg, CarouselKeys.Next):
		c.swipe(1)
	case key.Matches(msg, CarouselKeys.First):
		c.jump(0)
	case key.Matches(msg, CarouselKeys.Last):
		c.jump(c.seq.Len() - 1)
	case key.Matches(msg, CarouselKeys.Select):
		c.tap()
	case key.Matches(msg, CarouselKeys.Jump):
		c.openInput(inputJump, ": ", "")
	}
}

func (c *Carousel[M]) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelLeft:
			c.swipe(-1)
		case tea.MouseButtonWheelRight:
			c.swipe(1)
		case tea.MouseButtonLeft:
			c.dragging = true
			c.dragMoved = false
			c.dragX = msg.X
			c.ctrl.DragBegan()
		}

	case tea.MouseActionMotion:
		if !c.dragging {
			return
		}
		// Content follows the pointer
		if dx := c.dragX - msg.X; dx != 0 {
			c.view.ScrollBy(dx)
			c.dragX = msg.X
			c.dragMoved = true
		}

	case tea.MouseActionRelease:
		if !c.dragging {
			return
		}
		c.dragging = false
		if !c.dragMoved {
			// A click is a tap, whatever the view did in between.
			c.ctrl.CancelDrag()
			c.tap()
			return
		}
		c.settle(c.ctrl.DragWillEnd(c.view.ContentOffset()))
	}
}

// swipe simulates a drag of one item width in the given direction
func (c *Carousel[M]) swipe(step int) {
	c.ctrl.DragBegan()
	c.view.ScrollBy(step * c.view.ItemWidth())
	c.settle(c.ctrl.DragWillEnd(c.view.ContentOffset()))
}

// settle mirrors a gesture outcome into the sequence. When nothing moved
// and snap is on, the view springs back to the focused item itself.
func (c *Carousel[M]) settle(out carousel.Outcome) {
	if out.Moved {
		c.seq = c.seq.Apply(out.Shift)
		return
	}
	if c.ctrl.Snap() {
		c.view.CenterOn(c.ctrl.Selected())
	}
}

func (c *Carousel[M]) jump(index int) {
	out := c.ctrl.JumpTo(index)
	if out.Moved {
		c.seq = c.seq.Apply(out.Shift)
	}
}

func (c *Carousel[M]) tap() {
	if msg, ok := c.seq.Center().Tap(); ok {
		c.box.Dispatch(msg)
	}
}

func (c *Carousel[M]) openInput(mode inputMode, prompt, value string) {
	c.mode = mode
	c.input.Prompt = prompt
	c.input.SetValue(value)
	c.input.CursorEnd()
	c.input.Focus()
}

func (c *Carousel[M]) closeInput() {
	c.mode = inputNone
	c.input.Blur()
}

func (c *Carousel[M]) handleInputKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, CarouselKeys.Escape):
		if c.mode == inputFilter {
			c.applyFilter("")
		}
		c.closeInput()
		return nil

	case key.Matches(msg, CarouselKeys.Accept):
		if c.mode == inputJump {
			c.jumpTo(c.input.Value())
		}
		c.closeInput()
		return nil
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	if c.mode == inputFilter {
		c.applyFilter(c.input.Value())
	}
	return cmd
}

// applyFilter narrows the visible items to those matching query, keeping
// the focused item when it survives
func (c *Carousel[M]) applyFilter(query string) {
	c.filterQuery = strings.TrimSpace(query)

	items := c.all
	if c.filterQuery != "" {
		matches := search.Filter(c.filterQuery, titlesOf(c.all))
		items = make([]carousel.Item[M], 0, len(matches))
		for _, idx := range search.Indexes(matches) {
			items = append(items, c.all[idx])
		}
	}

	if len(items) == 0 {
		c.none = true
		return
	}

	focus := 0
	current := c.seq.Center().ID
	for i, item := range items {
		if item.ID == current {
			focus = i
			break
		}
	}

	seq, err := ziplist.New(items, focus)
	if err != nil {
		c.logger.Error("filter produced invalid sequence", "query", c.filterQuery, "error", err)
		return
	}
	if err := c.ctrl.SetItems(seq.Len(), focus); err != nil {
		c.logger.Error("filter produced invalid selection", "query", c.filterQuery, "error", err)
		return
	}

	c.seq = seq
	c.none = false
	c.view.SetCount(seq.Len())
	c.view.CenterOn(focus)

	if next := seq.Center().ID; next != current {
		c.announceRefocus(current, next)
	}
}

// announceRefocus reports a focus change forced by filtering. The shift is
// measured in the unfiltered list, since filtered indices are not stable.
func (c *Carousel[M]) announceRefocus(fromID, toID string) {
	if c.props.OnSelectionChange == nil {
		return
	}
	op, ok := ziplist.DeriveShift(indexOfID(c.all, toID), indexOfID(c.all, fromID))
	if !ok {
		return
	}
	if msg, ok := c.props.OnSelectionChange(op); ok {
		c.box.Dispatch(msg)
	}
	c.logger.Debug("filter moved carousel focus", "from", fromID, "to", toID, "shift", op.String())
}

func indexOfID[M any](items []carousel.Item[M], id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// jumpTo focuses the best match for query
func (c *Carousel[M]) jumpTo(query string) {
	if c.none {
		return
	}
	idx, ok := search.Best(query, titlesOf(c.seq.Items()))
	if !ok {
		c.notice = fmt.Sprintf("no match for %q", query)
		return
	}
	c.jump(idx)
}

func titlesOf[M any](items []carousel.Item[M]) []string {
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	return titles
}

// View renders the component
func (c Carousel[M]) View() string {
	style := styles.InactiveBorder
	if c.focused {
		style = styles.ActiveBorder
	}

	content := c.renderStrip() + "\n" + c.renderBar()

	// Subtract frame (border) size so total rendered size equals c.width x c.height
	frameW, frameH := style.GetFrameSize()

	return style.
		Width(max(c.width-frameW, 0)).
		Height(max(c.height-frameH, 0)).
		Render(content)
}

func (c Carousel[M]) renderStrip() string {
	if c.none {
		blank := strings.Repeat("\n", CardHeight/2)
		return blank + styles.DimStyle.Render("No matches") + blank
	}

	width := c.view.ItemWidth()
	cards := make([]string, c.seq.Len())
	for i := range cards {
		item := c.seq.At(i)
		focused := i == c.seq.CenterIndex()
		if item.Render != nil {
			cards[i] = item.Render(width, focused)
		} else {
			cards[i] = RenderCard(item.Title, "", width, focused)
		}
	}

	strip := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	lines := strings.Split(strip, "\n")
	for i, line := range lines {
		lines[i] = viewportLine(line, c.view.ContentOffset(), c.view.Width())
	}
	return strings.Join(lines, "\n")
}

func (c Carousel[M]) renderBar() string {
	if c.mode != inputNone {
		return c.input.View()
	}

	pos := "0/0"
	if !c.none {
		pos = fmt.Sprintf("‹ %d/%d ›", c.seq.CenterIndex()+1, c.seq.Len())
	}
	bar := styles.DimStyle.Render(pos)

	if c.filterQuery != "" {
		bar += "  " + styles.FilterPromptStyle.Render("/ ") + styles.FilterStyle.Render(c.filterQuery) +
			styles.DimStyle.Render(fmt.Sprintf(" [%d/%d]", c.Len(), len(c.all)))
	}
	if !c.ctrl.Snap() {
		bar += "  " + styles.DimStyle.Render("free scroll")
	}
	if c.notice != "" {
		bar += "  " + styles.ErrorStyle.Render(c.notice)
	}
	return bar
}

// viewportLine cuts the visible columns [offset, offset+width) out of line.
// Negative offsets show blank space before the first item.
func viewportLine(line string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	if offset < 0 {
		pad := min(-offset, width)
		return strings.Repeat(" ", pad) + ansi.Cut(line, 0, width-pad)
	}
	return ansi.Cut(line, offset, offset+width)
}
