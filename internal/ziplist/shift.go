package ziplist

import "fmt"

// Direction is the gesture direction of a shift.
type Direction int

const (
	// DirectionLeft is a leftward swipe; focus advances to higher indices.
	DirectionLeft Direction = iota
	// DirectionRight is a rightward swipe; focus moves to lower indices.
	DirectionRight
)

// String returns the direction name
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "unknown"
	}
}

// Shift describes a requested or observed focus movement. Shifts built by
// Left and Right have a magnitude of at least 1. The zero value is None.
type Shift struct {
	dir   Direction
	count int
}

// None is the zero shift. It has no magnitude and leaves focus unchanged.
var None = Shift{}

// IsNone reports whether s is the zero shift.
func (s Shift) IsNone() bool { return s.count == 0 }

// Left returns a leftward shift of n items.
func Left(n int) Shift {
	return Shift{dir: DirectionLeft, count: max(n, 1)}
}

// Right returns a rightward shift of n items.
func Right(n int) Shift {
	return Shift{dir: DirectionRight, count: max(n, 1)}
}

// Direction returns the shift direction
func (s Shift) Direction() Direction { return s.dir }

// Count returns the shift magnitude, 0 for None
func (s Shift) Count() int { return s.count }

// Delta returns the signed change to the focus index.
func (s Shift) Delta() int {
	if s.dir == DirectionRight {
		return -s.Count()
	}
	return s.Count()
}

func (s Shift) String() string {
	if s.IsNone() {
		return "none"
	}
	return fmt.Sprintf("%s(%d)", s.dir, s.Count())
}

// DeriveShift returns the shift that moves focus from previous to actual.
// It returns None and false when the indices are equal.
func DeriveShift(actual, previous int) (Shift, bool) {
	switch {
	case actual > previous:
		return Left(actual - previous), true
	case actual < previous:
		return Right(previous - actual), true
	default:
		return None, false
	}
}
