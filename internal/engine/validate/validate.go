package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind selects the input-format discipline for an entry.
// It is fixed at entry construction.
type Kind uint8

const (
	// Text accepts any printable character except CR and LF.
	Text Kind = iota
	// Integer accepts digits, space, and comma.
	Integer
	// Float accepts digits, period, comma, and space.
	Float
	// Hex accepts '#' and hex digits, case-normalized.
	Hex
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Integer:
		return "integer"
	case Float:
		return "float"
	case Hex:
		return "hex"
	default:
		return "unknown"
	}
}

// Default maximum content lengths per kind, in bytes.
const (
	MaxLengthText    = 256
	MaxLengthInteger = 12
	MaxLengthFloat   = 32
	MaxLengthHex     = 7 // "#RRGGBB"
)

// MaxLength returns the default maximum length for a kind.
func MaxLength(k Kind) int {
	switch k {
	case Integer:
		return MaxLengthInteger
	case Float:
		return MaxLengthFloat
	case Hex:
		return MaxLengthHex
	default:
		return MaxLengthText
	}
}

// Accept reports whether r is acceptable for the kind, returning the
// normalized rune. upperHex selects the case hex digits fold to.
func Accept(k Kind, r rune, upperHex bool) (rune, bool) {
	switch k {
	case Text:
		if r == '\r' || r == '\n' {
			return 0, false
		}
		if unicode.IsPrint(r) {
			return r, true
		}
		return 0, false
	case Integer:
		if isDigit(r) || r == ' ' || r == ',' {
			return r, true
		}
		return 0, false
	case Float:
		if isDigit(r) || r == '.' || r == ',' || r == ' ' {
			return r, true
		}
		return 0, false
	case Hex:
		if r == '#' {
			return '#', true
		}
		if isHexDigit(r) {
			if upperHex {
				return unicode.ToUpper(r), true
			}
			return unicode.ToLower(r), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// FilterPaste filters s rune by rune through Accept, dropping rejected
// runes, and truncates the accepted output against max. base is the
// buffer length in bytes after any active selection has been replaced;
// truncation counts the filtered output, never the raw input. max <= 0
// means unlimited.
func FilterPaste(k Kind, s string, upperHex bool, base, max int) string {
	var out strings.Builder
	for _, r := range s {
		v, ok := Accept(k, r, upperHex)
		if !ok {
			continue
		}
		if max > 0 && base+out.Len()+utf8.RuneLen(v) >= max {
			break
		}
		out.WriteRune(v)
	}
	return out.String()
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
