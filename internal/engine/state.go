package engine

// State describes the interaction mode of an engine.
type State uint8

const (
	// StateUnfocused means the field does not hold keyboard focus.
	StateUnfocused State = iota
	// StateFocusedIdle means the field holds focus and no drag is active.
	StateFocusedIdle
	// StateFocusedSelecting means a pointer drag is extending the selection.
	StateFocusedSelecting
)

func (s State) String() string {
	switch s {
	case StateUnfocused:
		return "unfocused"
	case StateFocusedIdle:
		return "focused-idle"
	case StateFocusedSelecting:
		return "focused-selecting"
	default:
		return "unknown"
	}
}

// ValidationState is transient visual feedback after a commit attempt.
type ValidationState uint8

const (
	// ValidationNeutral shows no feedback.
	ValidationNeutral ValidationState = iota
	// ValidationInvalid flashes a rejection cue.
	ValidationInvalid
	// ValidationValid flashes an acceptance cue.
	ValidationValid
)

func (v ValidationState) String() string {
	switch v {
	case ValidationNeutral:
		return "neutral"
	case ValidationInvalid:
		return "invalid"
	case ValidationValid:
		return "valid"
	default:
		return "unknown"
	}
}
