package engine

import (
	"time"

	"github.com/pixelprism/entryline/internal/clipboard"
	"github.com/pixelprism/entryline/internal/engine/validate"
	"github.com/pixelprism/entryline/internal/focus"
	"github.com/pixelprism/entryline/internal/measure"
)

// ChangeFunc is invoked when an edit is committed: on Enter, on focus
// loss, and after undo or redo. It is never invoked for programmatic
// SetText or for ordinary keystrokes.
type ChangeFunc func(e *Engine)

// Option configures an Engine.
type Option func(*Engine)

// WithKind sets the input validation kind. The default is KindText.
func WithKind(k validate.Kind) Option {
	return func(e *Engine) { e.kind = k }
}

// WithMaxLength overrides the per-kind byte capacity. Zero disables
// the limit.
func WithMaxLength(n int) Option {
	return func(e *Engine) { e.maxLen = n; e.maxLenSet = true }
}

// WithHistoryDepth sets the undo stack depth.
func WithHistoryDepth(n int) Option {
	return func(e *Engine) { e.histDepth = n }
}

// WithBlinkInterval sets the caret blink period. Zero disables blinking.
func WithBlinkInterval(d time.Duration) Option {
	return func(e *Engine) { e.blinkInterval = d }
}

// WithMeasurer sets the text measurer used for viewport and hit-test
// geometry.
func WithMeasurer(m measure.Measurer) Option {
	return func(e *Engine) { e.meas = m }
}

// WithClipboard sets the clipboard service backing cut, copy, and paste.
func WithClipboard(s clipboard.Service) Option {
	return func(e *Engine) { e.clip = s }
}

// WithArbiter attaches the engine to a shared focus arbiter. Engines
// sharing an arbiter steal focus from one another.
func WithArbiter(a *focus.Arbiter) Option {
	return func(e *Engine) { e.arbiter = a }
}

// WithChangeFunc registers the commit callback.
func WithChangeFunc(fn ChangeFunc) Option {
	return func(e *Engine) { e.onChange = fn }
}

// WithAutoMirror controls mirroring of the live selection to the
// primary clipboard channel. Enabled by default.
func WithAutoMirror(on bool) Option {
	return func(e *Engine) { e.autoMirror = on }
}

// WithUppercaseHex controls case folding for hex input. Enabled by
// default.
func WithUppercaseHex(on bool) Option {
	return func(e *Engine) { e.upperHex = on }
}

// WithVisibleWidth sets the viewport width in measurer units.
func WithVisibleWidth(w int) Option {
	return func(e *Engine) { e.visibleWidth = w }
}

// WithScrollMargins sets the left and right ensure-visible margins.
func WithScrollMargins(left, right int) Option {
	return func(e *Engine) { e.leftMargin, e.rightMargin = left, right; e.marginsSet = true }
}

// WithDragScrollStep sets the per-event scroll step applied while a
// drag moves outside the viewport.
func WithDragScrollStep(step int) Option {
	return func(e *Engine) { e.dragStep = step }
}

// WithClickThresholds sets the multi-click time window and x tolerance.
func WithClickThresholds(window time.Duration, tolerance int) Option {
	return func(e *Engine) { e.clickWindow, e.clickTolerance = window, tolerance }
}

// WithText sets the initial text. Like SetText it bypasses validation,
// history, and the change callback.
func WithText(s string) Option {
	return func(e *Engine) { e.initialText = s }
}
