package mouse

import "time"

// Default click classification thresholds.
const (
	// DefaultClickWindow is the maximum time between presses of one
	// click sequence.
	DefaultClickWindow = 400 * time.Millisecond
	// DefaultClickTolerance is the maximum x distance between presses
	// of one click sequence.
	DefaultClickTolerance = 5
)

// Classifier detects single, double, and triple clicks from a stream of
// primary-button presses. It is not safe for concurrent use.
type Classifier struct {
	window    time.Duration
	tolerance int

	lastX    int
	lastTime time.Time
	count    int
}

// NewClassifier creates a classifier with the given thresholds.
// Non-positive values fall back to the defaults.
func NewClassifier(window time.Duration, tolerance int) *Classifier {
	if window <= 0 {
		window = DefaultClickWindow
	}
	if tolerance <= 0 {
		tolerance = DefaultClickTolerance
	}
	return &Classifier{window: window, tolerance: tolerance}
}

// Click records a primary-button press at x and returns the click level
// (1, 2, or 3). After returning 3 the sequence resets, so the next
// press in the same spot starts over at 1.
// A zero timestamp falls back to time.Now().
func (c *Classifier) Click(x int, timestamp time.Time) int {
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	if c.inSequence(x, timestamp) {
		c.count++
	} else {
		c.count = 1
	}
	c.lastX = x
	c.lastTime = timestamp

	level := c.count
	if level >= 3 {
		level = 3
		c.count = 0
	}
	return level
}

// inSequence checks whether a press continues the current sequence.
func (c *Classifier) inSequence(x int, timestamp time.Time) bool {
	if c.count == 0 || c.lastTime.IsZero() {
		return false
	}
	// Clock skew: a negative elapsed time starts a new sequence.
	elapsed := timestamp.Sub(c.lastTime)
	if elapsed < 0 || elapsed >= c.window {
		return false
	}
	dx := x - c.lastX
	if dx < 0 {
		dx = -dx
	}
	return dx < c.tolerance
}

// Reset clears the click tracking state.
func (c *Classifier) Reset() {
	c.count = 0
	c.lastTime = time.Time{}
	c.lastX = 0
}
