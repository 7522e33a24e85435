package measure

// Measurer reports horizontal text extents in content units (pixels,
// cells - whatever the host renders in).
type Measurer interface {
	// Measure returns the width of the whole string.
	Measure(text string) int

	// MeasurePrefix returns the x offset of the byte prefix text[:n].
	// n is clamped to [0, len(text)] and snapped back to the nearest
	// rune boundary.
	MeasurePrefix(text string, n int) int
}
