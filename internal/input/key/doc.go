// Package key defines the keyboard events the entry engine consumes.
//
// The key set is deliberately small: the handful of navigation and
// editing keys a single-line entry understands, plus KeyRune for
// character input. Hosts translate their native key events (tcell, X11,
// whatever drives the loop) into these before handing them to the
// engine.
package key
