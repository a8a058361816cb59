// Package carousel binds a focused sequence to a scrollable view. It turns
// drag gestures into focus shifts, re-centers the view on the next UI tick
// and dispatches the resulting application messages.
package carousel

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/reel/internal/mailbox"
	"github.com/mmcdole/reel/internal/ziplist"
)

// Phase is the gesture phase of a controller
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Scroller is the scrollable view being synchronized.
type Scroller interface {
	// ContentOffset reports the current scroll coordinate.
	ContentOffset() int
	// CenterOn positions the view so the item at index is centered.
	CenterOn(index int)
}

// SelectionMapper turns a focus shift into an optional application message.
type SelectionMapper[M any] func(ziplist.Shift) (M, bool)

// Options configures a Controller.
type Options[M any] struct {
	Count             int
	Selected          int
	Snap              bool
	OnSelectionChange SelectionMapper[M]

	Scroller  Scroller
	Scheduler Scheduler
	Mailbox   mailbox.Mailbox
	Logger    *slog.Logger
}

// Outcome describes how a gesture resolved.
type Outcome struct {
	Moved      bool
	Shift      ziplist.Shift
	Index      int
	Dispatched bool
}

// Controller owns the selected index of a carousel. All methods must be
// called from the UI loop.
type Controller[M any] struct {
	scroller  Scroller
	scheduler Scheduler
	mailbox   mailbox.Mailbox
	mapper    SelectionMapper[M]
	logger    *slog.Logger

	count      int
	selected   int
	lastOffset int
	snap       bool
	phase      Phase
}

// NewController validates the initial selection and creates a controller.
func NewController[M any](opts Options[M]) (*Controller[M], error) {
	if err := validate(opts.Count, opts.Selected); err != nil {
		return nil, err
	}
	if opts.Scroller == nil {
		return nil, fmt.Errorf("carousel: scroller is required")
	}

	c := &Controller[M]{
		scroller:  opts.Scroller,
		scheduler: opts.Scheduler,
		mailbox:   opts.Mailbox,
		mapper:    opts.OnSelectionChange,
		logger:    opts.Logger,
		count:     opts.Count,
		selected:  opts.Selected,
		snap:      opts.Snap,
	}
	if c.scheduler == nil {
		c.scheduler = NewDeferred()
	}
	if c.mailbox == nil {
		c.mailbox = mailbox.Discard
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c, nil
}

func validate(count, selected int) error {
	if count < 1 {
		return fmt.Errorf("%w: empty sequence", ziplist.ErrInvalidFocus)
	}
	if selected < 0 || selected >= count {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ziplist.ErrInvalidFocus, selected, count)
	}
	return nil
}

// Selected returns the selected index
func (c *Controller[M]) Selected() int { return c.selected }

// Count returns the number of items
func (c *Controller[M]) Count() int { return c.count }

// Snap reports whether snap mode is enabled
func (c *Controller[M]) Snap() bool { return c.snap }

// Phase returns the gesture phase
func (c *Controller[M]) Phase() Phase { return c.phase }

// LastOffset returns the scroll coordinate captured at drag start
func (c *Controller[M]) LastOffset() int { return c.lastOffset }

// SetSnap enables or disables snap mode.
func (c *Controller[M]) SetSnap(snap bool) {
	c.snap = snap
}

// SetItems replaces the item count and selection, e.g. after filtering. An
// in-flight drag is abandoned.
func (c *Controller[M]) SetItems(count, selected int) error {
	if err := validate(count, selected); err != nil {
		return err
	}
	c.count = count
	c.selected = selected
	c.phase = PhaseIdle
	return nil
}

// DragBegan records the scroll coordinate at the start of a drag.
func (c *Controller[M]) DragBegan() {
	c.lastOffset = c.scroller.ContentOffset()
	c.phase = PhaseDragging
}

// CancelDrag abandons an in-flight drag without resolving it.
func (c *Controller[M]) CancelDrag() {
	c.phase = PhaseIdle
}

// DragWillEnd resolves a drag given the coordinate the view is about to
// settle on. Selection tracking is only reliable with snap enabled, so
// nothing happens otherwise. Overshooting either end is absorbed silently.
func (c *Controller[M]) DragWillEnd(candidate int) Outcome {
	defer func() { c.phase = PhaseIdle }()

	idle := Outcome{Index: c.selected}
	if c.phase != PhaseDragging || !c.snap {
		return idle
	}

	switch {
	case candidate > c.lastOffset && c.selected < c.count-1:
		return c.commit(c.selected + 1)
	case candidate < c.lastOffset && c.selected >= 1:
		return c.commit(c.selected - 1)
	default:
		return idle
	}
}

// JumpTo moves the selection directly to index, clamped into range. Works
// regardless of snap mode.
func (c *Controller[M]) JumpTo(index int) Outcome {
	c.phase = PhaseIdle
	index = max(0, min(index, c.count-1))
	if index == c.selected {
		return Outcome{Index: c.selected}
	}
	return c.commit(index)
}

func (c *Controller[M]) commit(next int) Outcome {
	prev := c.selected
	c.selected = next

	// Recenter after the current gesture pass so the view's own settle
	// animation does not fight it.
	scroller := c.scroller
	c.scheduler.Post(func() { scroller.CenterOn(next) })

	op, _ := ziplist.DeriveShift(next, prev)
	out := Outcome{Moved: true, Shift: op, Index: next}

	if c.mapper != nil {
		if msg, ok := c.mapper(op); ok {
			c.mailbox.Dispatch(msg)
			out.Dispatched = true
		}
	}

	c.logger.Debug("carousel selection changed",
		"from", prev,
		"to", next,
		"shift", op.String(),
		"dispatched", out.Dispatched,
	)
	return out
}
