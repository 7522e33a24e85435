package measure

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Mono measures text on a monospaced grid: each grapheme cluster
// occupies the cell count go-runewidth assigns it, scaled by CellWidth.
// CellWidth 1 measures directly in terminal cells.
type Mono struct {
	// CellWidth is the width of one cell in content units.
	CellWidth int
}

// NewMono creates a cell-grid measurer. Non-positive cell widths are
// treated as 1.
func NewMono(cellWidth int) *Mono {
	if cellWidth < 1 {
		cellWidth = 1
	}
	return &Mono{CellWidth: cellWidth}
}

// Measure returns the width of the whole string.
func (m *Mono) Measure(text string) int {
	return m.MeasurePrefix(text, len(text))
}

// MeasurePrefix returns the x offset of the byte prefix text[:n].
func (m *Mono) MeasurePrefix(text string, n int) int {
	if n <= 0 {
		return 0
	}
	if n > len(text) {
		n = len(text)
	}
	// Snap back to a rune boundary so a mid-rune offset never splits
	// an encoded character.
	if n < len(text) {
		for n > 0 && !utf8.RuneStart(text[n]) {
			n--
		}
	}

	cells := 0
	g := uniseg.NewGraphemes(text[:n])
	for g.Next() {
		cells += runewidth.StringWidth(g.Str())
	}
	return cells * m.CellWidth
}
