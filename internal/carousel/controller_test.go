package carousel

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/reel/internal/mailbox"
	"github.com/mmcdole/reel/internal/ziplist"
)

type fakeScroller struct {
	offset   int
	centered []int
}

func (f *fakeScroller) ContentOffset() int { return f.offset }
func (f *fakeScroller) CenterOn(index int) { f.centered = append(f.centered, index) }

type shiftedMsg struct {
	op ziplist.Shift
}

type harness struct {
	ctrl      *Controller[shiftedMsg]
	scroller  *fakeScroller
	scheduler *Deferred
	box       *mailbox.Queue
}

func newHarness(t *testing.T, count, selected int, snap bool, mapper SelectionMapper[shiftedMsg]) harness {
	t.Helper()
	h := harness{
		scroller:  &fakeScroller{},
		scheduler: NewDeferred(),
		box:       &mailbox.Queue{},
	}
	if mapper == nil {
		mapper = func(op ziplist.Shift) (shiftedMsg, bool) { return shiftedMsg{op}, true }
	}
	ctrl, err := NewController(Options[shiftedMsg]{
		Count:             count,
		Selected:          selected,
		Snap:              snap,
		OnSelectionChange: mapper,
		Scroller:          h.scroller,
		Scheduler:         h.scheduler,
		Mailbox:           h.box,
	})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

// drag simulates a drag starting at from and predicted to end at to.
func (h harness) drag(from, to int) Outcome {
	h.scroller.offset = from
	h.ctrl.DragBegan()
	return h.ctrl.DragWillEnd(to)
}

func TestNewControllerRejectsInvalidFocus(t *testing.T) {
	tests := []struct {
		name     string
		count    int
		selected int
	}{
		{"empty", 0, 0},
		{"negative", 3, -1},
		{"past end", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl, err := NewController(Options[shiftedMsg]{
				Count:    tt.count,
				Selected: tt.selected,
				Scroller: &fakeScroller{},
			})
			require.Error(t, err)
			assert.True(t, errors.Is(err, ziplist.ErrInvalidFocus))
			assert.Nil(t, ctrl)
		})
	}
}

func TestNewControllerRequiresScroller(t *testing.T) {
	_, err := NewController(Options[shiftedMsg]{Count: 1})
	assert.Error(t, err)
}

func TestDragForwardAdvancesFocus(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)

	out := h.drag(100, 150)

	assert.True(t, out.Moved)
	assert.Equal(t, 3, out.Index)
	assert.Equal(t, 3, h.ctrl.Selected())
	assert.Equal(t, ziplist.Left(1), out.Shift)
	assert.True(t, out.Dispatched)
	assert.Equal(t, 100, h.ctrl.LastOffset())
	assert.Equal(t, PhaseIdle, h.ctrl.Phase())

	// Recenter is deferred, not applied inside the gesture callback
	assert.Empty(t, h.scroller.centered)
	assert.Equal(t, 1, h.scheduler.Pending())
	assert.Equal(t, 1, h.scheduler.Flush())
	assert.Equal(t, []int{3}, h.scroller.centered)

	assert.Equal(t, []tea.Msg{shiftedMsg{ziplist.Left(1)}}, h.box.Messages())
}

func TestDragBackRetreatsFocus(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)

	out := h.drag(100, 40)

	assert.True(t, out.Moved)
	assert.Equal(t, 1, h.ctrl.Selected())
	assert.Equal(t, ziplist.Right(1), out.Shift)
	h.scheduler.Flush()
	assert.Equal(t, []int{1}, h.scroller.centered)
	assert.Equal(t, []tea.Msg{shiftedMsg{ziplist.Right(1)}}, h.box.Messages())
}

func TestDragAtBoundarySaturates(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		from, to int
	}{
		{"past last", 4, 100, 150},
		{"before first", 0, 100, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 5, tt.selected, true, nil)

			out := h.drag(tt.from, tt.to)

			assert.False(t, out.Moved)
			assert.Equal(t, tt.selected, h.ctrl.Selected())
			assert.Equal(t, 0, h.scheduler.Pending())
			assert.Equal(t, 0, h.box.Len())
		})
	}
}

func TestDragWithoutSnapIsInert(t *testing.T) {
	for _, to := range []int{-500, 0, 99, 101, 10000} {
		h := newHarness(t, 5, 2, false, nil)

		out := h.drag(100, to)

		assert.False(t, out.Moved, "candidate %d", to)
		assert.Equal(t, 2, h.ctrl.Selected())
		assert.Equal(t, 0, h.scheduler.Pending())
		assert.Equal(t, 0, h.box.Len())
		assert.Equal(t, PhaseIdle, h.ctrl.Phase())
	}
}

func TestDragWithoutMovement(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)

	out := h.drag(100, 100)

	assert.False(t, out.Moved)
	assert.Equal(t, 2, h.ctrl.Selected())
	assert.Equal(t, 0, h.scheduler.Pending())
	assert.Equal(t, 0, h.box.Len())
}

func TestDragEndWithoutBeginIsIgnored(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)

	out := h.ctrl.DragWillEnd(500)

	assert.False(t, out.Moved)
	assert.Equal(t, 2, h.ctrl.Selected())
}

func TestCancelDragDiscardsGesture(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)

	h.scroller.offset = 100
	h.ctrl.DragBegan()
	h.ctrl.CancelDrag()
	assert.Equal(t, PhaseIdle, h.ctrl.Phase())

	out := h.ctrl.DragWillEnd(500)
	assert.False(t, out.Moved)
	assert.Equal(t, 2, h.ctrl.Selected())
	assert.Equal(t, 0, h.box.Len())
}

func TestMapperMayDeclineMessage(t *testing.T) {
	var seen []ziplist.Shift
	h := newHarness(t, 5, 2, true, func(op ziplist.Shift) (shiftedMsg, bool) {
		seen = append(seen, op)
		return shiftedMsg{}, false
	})

	out := h.drag(0, 10)

	assert.True(t, out.Moved)
	assert.False(t, out.Dispatched)
	assert.Equal(t, 3, h.ctrl.Selected())
	assert.Equal(t, 1, h.scheduler.Pending())
	assert.Equal(t, 0, h.box.Len())
	assert.Equal(t, []ziplist.Shift{ziplist.Left(1)}, seen)
}

func TestLaterRecenterWins(t *testing.T) {
	h := newHarness(t, 5, 0, true, nil)

	h.drag(0, 10)
	h.drag(10, 20)
	h.scheduler.Flush()

	require.Len(t, h.scroller.centered, 2)
	assert.Equal(t, 2, h.scroller.centered[len(h.scroller.centered)-1])
	assert.Equal(t, 2, h.box.Len())
}

func TestJumpTo(t *testing.T) {
	h := newHarness(t, 10, 2, false, nil)

	out := h.ctrl.JumpTo(7)
	assert.True(t, out.Moved)
	assert.Equal(t, ziplist.Left(5), out.Shift)
	assert.Equal(t, 7, h.ctrl.Selected())

	out = h.ctrl.JumpTo(-3)
	assert.Equal(t, ziplist.Right(7), out.Shift)
	assert.Equal(t, 0, h.ctrl.Selected())

	out = h.ctrl.JumpTo(0)
	assert.False(t, out.Moved)

	h.scheduler.Flush()
	assert.Equal(t, []int{7, 0}, h.scroller.centered)
	assert.Equal(t, 2, h.box.Len())
}

func TestSetItems(t *testing.T) {
	h := newHarness(t, 5, 4, true, nil)

	require.NoError(t, h.ctrl.SetItems(2, 1))
	assert.Equal(t, 2, h.ctrl.Count())
	assert.Equal(t, 1, h.ctrl.Selected())

	err := h.ctrl.SetItems(2, 2)
	assert.True(t, errors.Is(err, ziplist.ErrInvalidFocus))
	assert.Equal(t, 1, h.ctrl.Selected(), "failed update must not change state")

	assert.Error(t, h.ctrl.SetItems(0, 0))
}

func TestSetSnapTogglesTracking(t *testing.T) {
	h := newHarness(t, 5, 2, false, nil)

	assert.False(t, h.drag(0, 10).Moved)
	h.ctrl.SetSnap(true)
	assert.True(t, h.ctrl.Snap())
	assert.True(t, h.drag(0, 10).Moved)
}

func TestTickMsgRunsOnUpdate(t *testing.T) {
	h := newHarness(t, 5, 2, true, nil)
	h.drag(0, 10)

	cmd := h.scheduler.Tick()
	require.NotNil(t, cmd)
	assert.Nil(t, h.scheduler.Tick())

	msg, ok := cmd().(TickMsg)
	require.True(t, ok)
	assert.Equal(t, 1, msg.Len())
	assert.Empty(t, h.scroller.centered)

	msg.Run()
	assert.Equal(t, []int{3}, h.scroller.centered)
}
