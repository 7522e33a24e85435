package hexcolor

import (
	"errors"
	"testing"
)

func TestParseAndFormat(t *testing.T) {
	tests := []struct {
		in    string
		upper bool
		hash  bool
		want  string
	}{
		{"#ff00aa", true, true, "#FF00AA"},
		{"ff00aa", true, true, "#FF00AA"},
		{"#FF00AA", false, true, "#ff00aa"},
		{"#f0a", true, true, "#FF00AA"},
		{"f0a", true, false, "FF00AA"},
		{" #ff00aa ", true, true, "#FF00AA"},
	}
	for _, tt := range tests {
		got, err := Normalize(tt.in, tt.upper, tt.hash)
		if err != nil {
			t.Errorf("Normalize(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "#", "#ff", "#ff00a", "#ff00aaz", "not a color", "#gg00aa"} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidColor", in, err)
		}
	}
}
