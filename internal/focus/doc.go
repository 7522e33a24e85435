// Package focus arbitrates keyboard focus between entry instances.
//
// Exactly one holder may own focus at a time. Acquiring focus for a new
// holder first forces a release on the previous one, which gives it the
// chance to fire its change notification before losing focus. The
// arbiter also fans host-window focus changes out to every registered
// holder so caret blinking can stop while the window is in the
// background.
package focus
