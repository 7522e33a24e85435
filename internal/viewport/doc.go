// Package viewport manages the horizontal scroll window of an entry.
//
// The scroller keeps the caret inside the visible width with small
// left/right margins, and nudges the window by a fixed step while a
// drag-selection runs past the widget bounds. The offset is always
// clamped to [0, max(0, contentWidth-visibleWidth)] so the view never
// overscrolls into blank space.
package viewport
