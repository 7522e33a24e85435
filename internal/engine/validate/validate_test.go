package validate

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Text, "text"},
		{Integer, "integer"},
		{Float, "float"},
		{Hex, "hex"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAcceptText(t *testing.T) {
	tests := []struct {
		r    rune
		ok   bool
		want rune
	}{
		{'a', true, 'a'},
		{'Z', true, 'Z'},
		{' ', true, ' '},
		{'#', true, '#'},
		{'é', true, 'é'},
		{'\r', false, 0},
		{'\n', false, 0},
		{'\t', false, 0},
		{0x07, false, 0},
	}
	for _, tt := range tests {
		got, ok := Accept(Text, tt.r, false)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Accept(Text, %q) = (%q, %v), want (%q, %v)", tt.r, got, ok, tt.want, tt.ok)
		}
	}
}

func TestAcceptInteger(t *testing.T) {
	accepted := "0123456789 ,"
	rejected := "a.-+e#"
	for _, r := range accepted {
		if got, ok := Accept(Integer, r, false); !ok || got != r {
			t.Errorf("Accept(Integer, %q) rejected", r)
		}
	}
	for _, r := range rejected {
		if _, ok := Accept(Integer, r, false); ok {
			t.Errorf("Accept(Integer, %q) accepted", r)
		}
	}
}

func TestAcceptFloat(t *testing.T) {
	accepted := "0123456789., "
	rejected := "ab-+e#"
	for _, r := range accepted {
		if _, ok := Accept(Float, r, false); !ok {
			t.Errorf("Accept(Float, %q) rejected", r)
		}
	}
	for _, r := range rejected {
		if _, ok := Accept(Float, r, false); ok {
			t.Errorf("Accept(Float, %q) accepted", r)
		}
	}
}

func TestAcceptHex(t *testing.T) {
	tests := []struct {
		r     rune
		upper bool
		ok    bool
		want  rune
	}{
		{'#', true, true, '#'},
		{'a', true, true, 'A'},
		{'F', true, true, 'F'},
		{'f', false, true, 'f'},
		{'A', false, true, 'a'},
		{'7', true, true, '7'},
		{'g', true, false, 0},
		{' ', true, false, 0},
	}
	for _, tt := range tests {
		got, ok := Accept(Hex, tt.r, tt.upper)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Accept(Hex, %q, upper=%v) = (%q, %v), want (%q, %v)",
				tt.r, tt.upper, got, ok, tt.want, tt.ok)
		}
	}
}

// Typing "12,000a" into an integer entry keeps everything but the 'a'.
func TestIntegerTypingSequence(t *testing.T) {
	var got []rune
	for _, r := range "12,000a" {
		if v, ok := Accept(Integer, r, false); ok {
			got = append(got, v)
		}
	}
	if string(got) != "12,000" {
		t.Errorf("accepted = %q, want %q", string(got), "12,000")
	}
}

func TestFilterPaste(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		s     string
		upper bool
		base  int
		max   int
		want  string
	}{
		{"hex uppercased", Hex, "ff00aa", true, 0, 0, "FF00AA"},
		{"hex lowercased", Hex, "FF00AA", false, 0, 0, "ff00aa"},
		{"hex keeps hash", Hex, "#ab12cd", true, 0, 0, "#AB12CD"},
		{"hex drops junk", Hex, "fg 0h1", true, 0, 0, "F01"},
		{"integer drops letters", Integer, "12,000a", false, 0, 0, "12,000"},
		{"text drops newlines", Text, "one\ntwo\r", false, 0, 0, "onetwo"},
		{"truncation after replace", Text, "XYZ123", false, 1, 5, "XYZ"},
		{"no truncation below max", Text, "XY", false, 1, 5, "XY"},
		{"zero budget", Text, "XYZ", false, 5, 5, ""},
		{"unlimited", Text, "XYZ123", false, 100, 0, "XYZ123"},
		{"filtered counts not raw", Integer, "a1b2c3d4", false, 0, 4, "123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterPaste(tt.kind, tt.s, tt.upper, tt.base, tt.max)
			if got != tt.want {
				t.Errorf("FilterPaste() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterPasteMultiByte(t *testing.T) {
	// Two-byte runes must count their encoded size against the budget.
	got := FilterPaste(Text, "ééé", false, 0, 5)
	if got != "éé" {
		t.Errorf("FilterPaste() = %q, want %q", got, "éé")
	}
}

func TestMaxLengthDefaults(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{Text, 256},
		{Integer, 12},
		{Float, 32},
		{Hex, 7},
	}
	for _, tt := range tests {
		if got := MaxLength(tt.kind); got != tt.want {
			t.Errorf("MaxLength(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}
