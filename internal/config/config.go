package config

import (
	"fmt"
	"time"

	"github.com/pixelprism/entryline/internal/engine"
	"github.com/pixelprism/entryline/internal/engine/validate"
)

// Config holds host-tunable entryline settings.
type Config struct {
	Input     Input     `toml:"input" yaml:"input"`
	History   History   `toml:"history" yaml:"history"`
	Timing    Timing    `toml:"timing" yaml:"timing"`
	Scroll    Scroll    `toml:"scroll" yaml:"scroll"`
	Clipboard Clipboard `toml:"clipboard" yaml:"clipboard"`
}

// Input sets per-kind byte limits and hex case folding.
type Input struct {
	TextMaxLength    int  `toml:"text_max_length" yaml:"text_max_length"`
	IntegerMaxLength int  `toml:"integer_max_length" yaml:"integer_max_length"`
	FloatMaxLength   int  `toml:"float_max_length" yaml:"float_max_length"`
	HexMaxLength     int  `toml:"hex_max_length" yaml:"hex_max_length"`
	UppercaseHex     bool `toml:"uppercase_hex" yaml:"uppercase_hex"`
}

// History sets the undo stack depth.
type History struct {
	Depth int `toml:"depth" yaml:"depth"`
}

// Timing sets caret blink and multi-click thresholds.
type Timing struct {
	BlinkIntervalMS  int `toml:"blink_interval_ms" yaml:"blink_interval_ms"`
	ClickWindowMS    int `toml:"click_window_ms" yaml:"click_window_ms"`
	ClickTolerancePX int `toml:"click_tolerance_px" yaml:"click_tolerance_px"`
}

// Scroll sets viewport margins and the drag auto-scroll step.
type Scroll struct {
	LeftMargin  int `toml:"left_margin" yaml:"left_margin"`
	RightMargin int `toml:"right_margin" yaml:"right_margin"`
	DragStep    int `toml:"drag_step" yaml:"drag_step"`
}

// Clipboard controls selection mirroring to the primary channel.
type Clipboard struct {
	AutoMirror bool `toml:"auto_mirror" yaml:"auto_mirror"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Input: Input{
			TextMaxLength:    validate.MaxLengthText,
			IntegerMaxLength: validate.MaxLengthInteger,
			FloatMaxLength:   validate.MaxLengthFloat,
			HexMaxLength:     validate.MaxLengthHex,
			UppercaseHex:     true,
		},
		History: History{Depth: 64},
		Timing: Timing{
			BlinkIntervalMS:  700,
			ClickWindowMS:    400,
			ClickTolerancePX: 5,
		},
		Scroll: Scroll{
			LeftMargin:  4,
			RightMargin: 8,
			DragStep:    10,
		},
		Clipboard: Clipboard{AutoMirror: true},
	}
}

// Validate reports the first out-of-range value.
func (c Config) Validate() error {
	checks := []struct {
		name string
		val  int
	}{
		{"input.text_max_length", c.Input.TextMaxLength},
		{"input.integer_max_length", c.Input.IntegerMaxLength},
		{"input.float_max_length", c.Input.FloatMaxLength},
		{"input.hex_max_length", c.Input.HexMaxLength},
		{"history.depth", c.History.Depth},
		{"timing.blink_interval_ms", c.Timing.BlinkIntervalMS},
		{"timing.click_window_ms", c.Timing.ClickWindowMS},
		{"timing.click_tolerance_px", c.Timing.ClickTolerancePX},
		{"scroll.left_margin", c.Scroll.LeftMargin},
		{"scroll.right_margin", c.Scroll.RightMargin},
		{"scroll.drag_step", c.Scroll.DragStep},
	}
	for _, ch := range checks {
		if ch.val < 0 {
			return fmt.Errorf("%w: %s = %d", ErrInvalidValue, ch.name, ch.val)
		}
	}
	return nil
}

// MaxLength returns the configured byte limit for a kind.
func (c Config) MaxLength(k validate.Kind) int {
	switch k {
	case validate.Integer:
		return c.Input.IntegerMaxLength
	case validate.Float:
		return c.Input.FloatMaxLength
	case validate.Hex:
		return c.Input.HexMaxLength
	default:
		return c.Input.TextMaxLength
	}
}

// Options expands the configuration into engine options for a field
// of the given kind. Host-specific options (measurer, clipboard,
// arbiter, callbacks) are appended by the caller.
func (c Config) Options(k validate.Kind) []engine.Option {
	return []engine.Option{
		engine.WithKind(k),
		engine.WithMaxLength(c.MaxLength(k)),
		engine.WithHistoryDepth(c.History.Depth),
		engine.WithBlinkInterval(time.Duration(c.Timing.BlinkIntervalMS) * time.Millisecond),
		engine.WithClickThresholds(
			time.Duration(c.Timing.ClickWindowMS)*time.Millisecond,
			c.Timing.ClickTolerancePX,
		),
		engine.WithScrollMargins(c.Scroll.LeftMargin, c.Scroll.RightMargin),
		engine.WithDragScrollStep(c.Scroll.DragStep),
		engine.WithUppercaseHex(c.Input.UppercaseHex),
		engine.WithAutoMirror(c.Clipboard.AutoMirror),
	}
}
