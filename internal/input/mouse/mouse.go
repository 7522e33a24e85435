package mouse

import (
	"time"

	"github.com/pixelprism/entryline/internal/input/key"
)

// Button represents a mouse button.
type Button uint8

const (
	// ButtonNone indicates no button.
	ButtonNone Button = iota
	// ButtonLeft is the primary button.
	ButtonLeft
	// ButtonMiddle is the middle button (primary-selection paste).
	ButtonMiddle
	// ButtonRight is the secondary button (context menu).
	ButtonRight
)

// String returns a string representation of the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonMiddle:
		return "middle"
	case ButtonRight:
		return "right"
	default:
		return "none"
	}
}

// Action represents the type of mouse action.
type Action uint8

const (
	// ActionNone indicates no action.
	ActionNone Action = iota
	// ActionPress indicates a button press.
	ActionPress
	// ActionRelease indicates a button release.
	ActionRelease
	// ActionMove indicates pointer motion.
	ActionMove
)

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case ActionPress:
		return "press"
	case ActionRelease:
		return "release"
	case ActionMove:
		return "move"
	default:
		return "none"
	}
}

// Event represents a pointer event in widget coordinates.
type Event struct {
	// X is the horizontal position relative to the entry's left edge.
	X int

	// Y is the vertical position; the engine ignores it but hosts
	// use it for hit testing before routing the event.
	Y int

	// Button is the button involved.
	Button Button

	// Modifiers are any keyboard modifiers held during the event.
	Modifiers key.Modifier

	// Action is the type of pointer action.
	Action Action

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a pointer event with the current timestamp.
func NewEvent(x, y int, b Button, a Action) Event {
	return Event{X: x, Y: y, Button: b, Action: a, Timestamp: time.Now()}
}
