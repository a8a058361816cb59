package carousel

import "github.com/mmcdole/reel/internal/ziplist"

// Item is a renderable carousel entry. M is the message type its tap
// handler produces.
type Item[M any] struct {
	ID     string
	Title  string
	OnTap  func() (M, bool)
	Render func(width int, focused bool) string
}

// Tap returns the item's tap message, if it has one.
func (i Item[M]) Tap() (M, bool) {
	if i.OnTap == nil {
		var zero M
		return zero, false
	}
	return i.OnTap()
}

// MapItem rewrites the message type an item's tap handler produces.
func MapItem[A, B any](item Item[A], f func(A) B) Item[B] {
	out := Item[B]{
		ID:     item.ID,
		Title:  item.Title,
		Render: item.Render,
	}
	if item.OnTap != nil {
		tap := item.OnTap
		out.OnTap = func() (B, bool) {
			a, ok := tap()
			if !ok {
				var zero B
				return zero, false
			}
			return f(a), true
		}
	}
	return out
}

// Properties is the state a parent hands to a carousel.
type Properties[M any] struct {
	Items             []Item[M]
	Focus             int
	Snap              bool
	OnSelectionChange SelectionMapper[M]
}

// Plain describes a carousel over items that never reports selection
// changes. Focus starts on the first item; taps still produce messages.
func Plain[M any](items []Item[M], snap bool) Properties[M] {
	return Properties[M]{Items: items, Snap: snap}
}

// Sequence builds the focused sequence described by p.
func (p Properties[M]) Sequence() (ziplist.ZipList[Item[M]], error) {
	return ziplist.New(p.Items, p.Focus)
}

// MapProperties rewrites every message a carousel can emit, so a carousel
// built for one message type can be embedded in a parent with another.
func MapProperties[A, B any](p Properties[A], f func(A) B) Properties[B] {
	out := Properties[B]{
		Items: make([]Item[B], len(p.Items)),
		Focus: p.Focus,
		Snap:  p.Snap,
	}
	for i, item := range p.Items {
		out.Items[i] = MapItem(item, f)
	}
	if p.OnSelectionChange != nil {
		mapper := p.OnSelectionChange
		out.OnSelectionChange = func(op ziplist.Shift) (B, bool) {
			a, ok := mapper(op)
			if !ok {
				var zero B
				return zero, false
			}
			return f(a), true
		}
	}
	return out
}
