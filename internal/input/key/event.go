package key

import (
	"time"
	"unicode"
)

// Key identifies a key the entry engine understands.
type Key uint8

const (
	// KeyRune is a character key; Event.Rune carries the character.
	KeyRune Key = iota
	// KeyLeft moves the cursor left.
	KeyLeft
	// KeyRight moves the cursor right.
	KeyRight
	// KeyHome moves to the start of the text.
	KeyHome
	// KeyEnd moves to the end of the text.
	KeyEnd
	// KeyBackspace deletes backward.
	KeyBackspace
	// KeyDelete deletes forward.
	KeyDelete
	// KeyEnter commits the entry.
	KeyEnter
)

// String returns a string representation of the key.
func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyBackspace:
		return "backspace"
	case KeyDelete:
		return "delete"
	case KeyEnter:
		return "enter"
	default:
		return "unknown"
	}
}

// Modifier is a bitmask of modifier keys held during an event.
type Modifier uint8

const (
	// ModNone means no modifiers.
	ModNone Modifier = 0
	// ModShift extends selections during navigation.
	ModShift Modifier = 1 << iota
	// ModCtrl triggers shortcuts (copy, paste, undo, ...).
	ModCtrl
)

// Has returns true if m includes mod.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// Event represents a single key press.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods, Timestamp: time.Now()}
}

// NewSpecialEvent creates a key event for a non-character key.
func NewSpecialEvent(k Key, mods Modifier) Event {
	return Event{Key: k, Modifiers: mods, Timestamp: time.Now()}
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsChar returns true if this is a printable character event.
func (e Event) IsChar() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune)
}
