// Package selection provides the anchor/active selection model for a
// single-line entry.
//
// Selection is an immutable value type. Anchor is where the selection
// started; Active is the moving end and tracks the cursor during
// drag or shift-extend. Anchor == Active means an empty selection.
package selection
