package components

// ScrollView is a horizontal strip of equally wide items seen through a
// fixed-width viewport. Offset is the content column at the viewport's left
// edge; it may be negative so the first item can sit in the center.
type ScrollView struct {
	offset    int
	width     int
	itemWidth int
	count     int
}

// NewScrollView creates a scroll view for items of the given width
func NewScrollView(itemWidth int) *ScrollView {
	return &ScrollView{itemWidth: max(itemWidth, 1)}
}

// SetSize sets the viewport width
func (s *ScrollView) SetSize(width int) {
	s.width = max(width, 0)
	s.clamp()
}

// SetCount sets the number of items in the strip
func (s *ScrollView) SetCount(count int) {
	s.count = max(count, 0)
	s.clamp()
}

// Width returns the viewport width
func (s *ScrollView) Width() int { return s.width }

// ItemWidth returns the width of one item
func (s *ScrollView) ItemWidth() int { return s.itemWidth }

// ContentOffset returns the scroll coordinate (implements carousel.Scroller)
func (s *ScrollView) ContentOffset() int { return s.offset }

// CenterOn scrolls so item index is centered (implements carousel.Scroller)
func (s *ScrollView) CenterOn(index int) {
	if s.count == 0 {
		s.offset = 0
		return
	}
	index = max(0, min(index, s.count-1))
	s.offset = s.centerOffset(index)
}

// ScrollBy moves the viewport by dx columns. The strip can be pulled up to
// half an item past either end.
func (s *ScrollView) ScrollBy(dx int) {
	s.offset += dx
	s.clamp()
}

func (s *ScrollView) centerOffset(index int) int {
	return index*s.itemWidth + s.itemWidth/2 - s.width/2
}

func (s *ScrollView) clamp() {
	if s.count == 0 {
		s.offset = 0
		return
	}
	lo := s.centerOffset(0) - s.itemWidth/2
	hi := s.centerOffset(s.count-1) + s.itemWidth/2
	s.offset = max(lo, min(s.offset, hi))
}
