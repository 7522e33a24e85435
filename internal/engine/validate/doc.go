// Package validate provides per-kind character acceptance for entry
// input.
//
// Each entry is created with a fixed Kind that decides which runes it
// accepts and how they are normalized (hex digits fold to a configured
// case). Rejected runes are dropped silently; validation never surfaces
// errors to the host. FilterPaste applies the same acceptance rule to
// whole strings and handles length truncation for the paste path.
package validate
