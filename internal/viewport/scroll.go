package viewport

// Default scroll behavior.
const (
	// DefaultRightMargin keeps the caret this far from the right edge.
	DefaultRightMargin = 8
	// DefaultLeftMargin keeps the caret this far from the left edge.
	DefaultLeftMargin = 4
	// DefaultDragStep is the auto-scroll step per motion event while a
	// drag-selection runs past the widget bounds.
	DefaultDragStep = 10
)

// Scroller tracks the horizontal scroll offset of one entry.
// All coordinates are in content space (same units the measurer
// produces); the caller decides whether that means pixels or cells.
type Scroller struct {
	offset       int
	visibleWidth int
	leftMargin   int
	rightMargin  int
	dragStep     int
}

// New creates a scroller for the given visible width.
func New(visibleWidth int) *Scroller {
	if visibleWidth < 1 {
		visibleWidth = 1
	}
	return &Scroller{
		visibleWidth: visibleWidth,
		leftMargin:   DefaultLeftMargin,
		rightMargin:  DefaultRightMargin,
		dragStep:     DefaultDragStep,
	}
}

// Offset returns the current scroll offset.
func (s *Scroller) Offset() int {
	return s.offset
}

// VisibleWidth returns the width of the scroll window.
func (s *Scroller) VisibleWidth() int {
	return s.visibleWidth
}

// SetVisibleWidth resizes the scroll window.
// The offset is re-clamped on the next EnsureVisible or AutoScroll.
func (s *Scroller) SetVisibleWidth(w int) {
	if w < 1 {
		w = 1
	}
	s.visibleWidth = w
}

// SetMargins configures the caret margins. Negative values are ignored.
func (s *Scroller) SetMargins(left, right int) {
	if left >= 0 {
		s.leftMargin = left
	}
	if right >= 0 {
		s.rightMargin = right
	}
}

// SetDragStep configures the auto-scroll step per motion event.
func (s *Scroller) SetDragStep(step int) {
	if step > 0 {
		s.dragStep = step
	}
}

// EnsureVisible scrolls so the caret at cursorX stays inside the window
// margins. contentWidth is the measured width of the whole text.
func (s *Scroller) EnsureVisible(cursorX, contentWidth int) {
	rightEdge := s.offset + s.visibleWidth - s.rightMargin
	leftEdge := s.offset + s.leftMargin
	if cursorX > rightEdge {
		s.offset = cursorX - s.visibleWidth + s.rightMargin
	} else if cursorX < leftEdge {
		s.offset = cursorX - s.leftMargin
	}
	s.clampTo(contentWidth)
}

// AutoScroll nudges the window by the drag step when the pointer, in
// widget coordinates, has left [0, visibleWidth]. Called once per
// motion event during drag-selection.
func (s *Scroller) AutoScroll(pointerX, contentWidth int) {
	if pointerX < 0 {
		s.offset -= s.dragStep
	} else if pointerX > s.visibleWidth {
		s.offset += s.dragStep
	}
	s.clampTo(contentWidth)
}

// Clamp re-clamps the offset for the given content width. Called after
// mutations that shrink the text.
func (s *Scroller) Clamp(contentWidth int) {
	s.clampTo(contentWidth)
}

// Reset scrolls back to the origin.
func (s *Scroller) Reset() {
	s.offset = 0
}

func (s *Scroller) clampTo(contentWidth int) {
	max := contentWidth - s.visibleWidth
	if max < 0 {
		max = 0
	}
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}
