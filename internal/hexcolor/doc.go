// Package hexcolor parses and formats the hex color strings edited by
// hex-kind fields.
package hexcolor
