package hexcolor

import (
	"errors"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor means the string is not a 3 or 6 digit hex color.
var ErrInvalidColor = errors.New("hexcolor: invalid color")

// Parse reads a hex color in "#RGB", "#RRGGBB", or the same forms
// without the leading hash. Case is ignored.
func Parse(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3:
		// expand shorthand, f0a -> ff00aa
		var b strings.Builder
		for i := 0; i < 3; i++ {
			b.WriteByte(s[i])
			b.WriteByte(s[i])
		}
		s = b.String()
	case 6:
	default:
		return colorful.Color{}, ErrInvalidColor
	}
	c, err := colorful.Hex("#" + strings.ToLower(s))
	if err != nil {
		return colorful.Color{}, ErrInvalidColor
	}
	return c, nil
}

// Format renders a color as a six-digit hex string.
func Format(c colorful.Color, upper, hash bool) string {
	s := c.Hex()
	if upper {
		s = "#" + strings.ToUpper(s[1:])
	}
	if !hash {
		s = s[1:]
	}
	return s
}

// Normalize parses and re-formats a user-edited color string so a
// committed field value always has the canonical six-digit form.
func Normalize(s string, upper, hash bool) (string, error) {
	c, err := Parse(s)
	if err != nil {
		return "", err
	}
	return Format(c, upper, hash), nil
}
