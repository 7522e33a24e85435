// Package measure abstracts text width measurement for the entry
// engine.
//
// The engine never shapes glyphs itself; it asks a Measurer for the
// width of a string or a byte prefix of one, and uses the answers for
// viewport scrolling and for mapping pointer x positions back to byte
// offsets. Mono measures in terminal cells; pixel-based hosts plug in
// their own font metrics.
package measure
