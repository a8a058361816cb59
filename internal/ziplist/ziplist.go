// Package ziplist provides an immutable, non-empty sequence with exactly one
// focused element.
package ziplist

import (
	"errors"
	"fmt"
)

// ErrInvalidFocus indicates an empty source collection or an out-of-range
// initial focus index.
var ErrInvalidFocus = errors.New("invalid focus")

// ZipList is a non-empty ordered sequence with one focused item.
// The zero value is not valid; use New.
type ZipList[T any] struct {
	items []T
	focus int
}

// New creates a ZipList focused at the given index.
func New[T any](items []T, focus int) (ZipList[T], error) {
	if len(items) == 0 {
		return ZipList[T]{}, fmt.Errorf("%w: empty sequence", ErrInvalidFocus)
	}
	if focus < 0 || focus >= len(items) {
		return ZipList[T]{}, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidFocus, focus, len(items))
	}

	owned := make([]T, len(items))
	copy(owned, items)
	return ZipList[T]{items: owned, focus: focus}, nil
}

// Map transforms every item, keeping length and focus.
func Map[T, U any](z ZipList[T], f func(T) U) ZipList[U] {
	out := make([]U, len(z.items))
	for i, item := range z.items {
		out[i] = f(item)
	}
	return ZipList[U]{items: out, focus: z.focus}
}

// TryMap is Map for fallible transforms. The first error aborts the whole
// operation and no partial result is returned.
func TryMap[T, U any](z ZipList[T], f func(T) (U, error)) (ZipList[U], error) {
	out := make([]U, len(z.items))
	for i, item := range z.items {
		v, err := f(item)
		if err != nil {
			return ZipList[U]{}, fmt.Errorf("map item %d: %w", i, err)
		}
		out[i] = v
	}
	return ZipList[U]{items: out, focus: z.focus}, nil
}

// Shift moves focus by a signed delta, saturating at both ends.
func (z ZipList[T]) Shift(by int) ZipList[T] {
	if len(z.items) == 0 {
		return z
	}
	// Compare against the remaining room so extreme deltas cannot overflow.
	focus := z.focus
	switch last := len(z.items) - 1; {
	case by > last-focus:
		focus = last
	case by < -focus:
		focus = 0
	default:
		focus += by
	}
	return ZipList[T]{items: z.items, focus: focus}
}

// Apply moves focus according to a shift operation.
func (z ZipList[T]) Apply(op Shift) ZipList[T] {
	return z.Shift(op.Delta())
}

// Focus returns a copy focused at index, clamped into range.
func (z ZipList[T]) Focus(index int) ZipList[T] {
	if len(z.items) == 0 {
		return z
	}
	return ZipList[T]{items: z.items, focus: clamp(index, 0, len(z.items)-1)}
}

// CenterIndex returns the focused index.
func (z ZipList[T]) CenterIndex() int {
	return z.focus
}

// Center returns the focused item.
func (z ZipList[T]) Center() T {
	return z.items[z.focus]
}

// Len returns the number of items.
func (z ZipList[T]) Len() int {
	return len(z.items)
}

// At returns the item at index i.
func (z ZipList[T]) At(i int) T {
	return z.items[i]
}

// Items returns a copy of all items.
func (z ZipList[T]) Items() []T {
	out := make([]T, len(z.items))
	copy(out, z.items)
	return out
}

// Before returns the items preceding the focus, nearest last.
func (z ZipList[T]) Before() []T {
	out := make([]T, z.focus)
	copy(out, z.items[:z.focus])
	return out
}

// After returns the items following the focus.
func (z ZipList[T]) After() []T {
	if len(z.items) == 0 {
		return nil
	}
	rest := z.items[z.focus+1:]
	out := make([]T, len(rest))
	copy(out, rest)
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
