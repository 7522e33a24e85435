// Package buffer provides the text storage for a single-line entry.
//
// A Buffer is a growable byte sequence with an optional maximum length.
// All offsets are byte offsets; callers that need rune or grapheme
// boundaries resolve them before calling in. Growth is amortized
// (capacity *1.5 with a small floor) so repeated single-rune inserts do
// not reallocate per keystroke.
//
// Buffer does no validation and knows nothing about cursors or
// selections; those live in the selection and engine packages.
package buffer
