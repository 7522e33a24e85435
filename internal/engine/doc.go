// Package engine provides the core single-line text editing engine.
//
// Engine binds the editing subsystems together: the byte buffer, the
// selection model, the undo history, per-kind input validation, the
// horizontal viewport, mouse click classification, the clipboard
// service, and focus arbitration. It owns all editing state for one
// field and exposes operations a host widget calls in response to
// translated key, mouse, and timer events.
//
// Engine methods are not safe for concurrent use. A host drives the
// engine from a single event loop; asynchronous clipboard completions
// delivered through the broker must be marshalled back onto that loop
// before touching the engine.
package engine
