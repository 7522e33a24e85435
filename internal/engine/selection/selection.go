package selection

import "fmt"

// Selection represents a range of selected text as byte offsets.
// Anchor is fixed where the selection began; Active is the moving end.
// When Anchor == Active the selection is empty (a bare cursor).
type Selection struct {
	Anchor int
	Active int
}

// New creates a selection from anchor to active.
func New(anchor, active int) Selection {
	return Selection{Anchor: anchor, Active: active}
}

// Caret creates an empty selection at the given offset.
func Caret(offset int) Selection {
	return Selection{Anchor: offset, Active: offset}
}

// IsEmpty returns true if the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Anchor == s.Active
}

// Len returns the selection length in bytes.
func (s Selection) Len() int {
	if s.Anchor <= s.Active {
		return s.Active - s.Anchor
	}
	return s.Anchor - s.Active
}

// Range returns the normalized bounds (lo <= hi).
func (s Selection) Range() (lo, hi int) {
	if s.Anchor <= s.Active {
		return s.Anchor, s.Active
	}
	return s.Active, s.Anchor
}

// Start returns the lower bound.
func (s Selection) Start() int {
	lo, _ := s.Range()
	return lo
}

// End returns the upper bound.
func (s Selection) End() int {
	_, hi := s.Range()
	return hi
}

// Extend returns a selection with the active end moved to offset.
// The anchor stays fixed.
func (s Selection) Extend(offset int) Selection {
	return Selection{Anchor: s.Anchor, Active: offset}
}

// Collapse returns an empty selection at the active end.
func (s Selection) Collapse() Selection {
	return Caret(s.Active)
}

// CollapseTo returns an empty selection at the given offset.
func (s Selection) CollapseTo(offset int) Selection {
	return Caret(offset)
}

// Normalize returns a forward selection (anchor <= active).
func (s Selection) Normalize() Selection {
	if s.Anchor <= s.Active {
		return s
	}
	return Selection{Anchor: s.Active, Active: s.Anchor}
}

// Contains returns true if offset lies within [Start, End).
// Always false for empty selections.
func (s Selection) Contains(offset int) bool {
	lo, hi := s.Range()
	return offset >= lo && offset < hi
}

// Clamp bounds both endpoints to [0, max].
func (s Selection) Clamp(max int) Selection {
	return Selection{Anchor: clamp(s.Anchor, max), Active: clamp(s.Active, max)}
}

// Text returns the selected portion of text, clamped to its bounds.
func (s Selection) Text(text string) string {
	c := s.Clamp(len(text))
	lo, hi := c.Range()
	return text[lo:hi]
}

// Equals returns true if both endpoints match.
func (s Selection) Equals(other Selection) bool {
	return s.Anchor == other.Anchor && s.Active == other.Active
}

// String returns a debug representation.
func (s Selection) String() string {
	if s.IsEmpty() {
		return fmt.Sprintf("Caret(%d)", s.Active)
	}
	return fmt.Sprintf("Selection(%d..%d)", s.Anchor, s.Active)
}

func clamp(off, max int) int {
	if off < 0 {
		return 0
	}
	if off > max {
		return max
	}
	return off
}
