package selection

import "testing"

func TestIsEmpty(t *testing.T) {
	if !Caret(3).IsEmpty() {
		t.Error("Caret should be empty")
	}
	if New(1, 4).IsEmpty() {
		t.Error("extended selection should not be empty")
	}
}

func TestRange(t *testing.T) {
	tests := []struct {
		name   string
		sel    Selection
		wantLo int
		wantHi int
	}{
		{"forward", New(2, 7), 2, 7},
		{"backward", New(7, 2), 2, 7},
		{"empty", Caret(5), 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := tt.sel.Range()
			if lo != tt.wantLo || hi != tt.wantHi {
				t.Errorf("Range() = (%d, %d), want (%d, %d)", lo, hi, tt.wantLo, tt.wantHi)
			}
		})
	}
}

func TestLen(t *testing.T) {
	if got := New(2, 7).Len(); got != 5 {
		t.Errorf("Len() = %d, want 5", got)
	}
	if got := New(7, 2).Len(); got != 5 {
		t.Errorf("backward Len() = %d, want 5", got)
	}
	if got := Caret(9).Len(); got != 0 {
		t.Errorf("empty Len() = %d, want 0", got)
	}
}

func TestExtendKeepsAnchor(t *testing.T) {
	s := Caret(3).Extend(8)
	if s.Anchor != 3 || s.Active != 8 {
		t.Errorf("Extend() = %v, want Anchor=3 Active=8", s)
	}
	s = s.Extend(1)
	if s.Anchor != 3 || s.Active != 1 {
		t.Errorf("Extend() = %v, want Anchor=3 Active=1", s)
	}
}

func TestCollapse(t *testing.T) {
	s := New(3, 8).Collapse()
	if !s.IsEmpty() || s.Active != 8 {
		t.Errorf("Collapse() = %v, want Caret(8)", s)
	}
	s = New(3, 8).CollapseTo(0)
	if !s.IsEmpty() || s.Active != 0 {
		t.Errorf("CollapseTo(0) = %v, want Caret(0)", s)
	}
}

func TestNormalize(t *testing.T) {
	s := New(7, 2).Normalize()
	if s.Anchor != 2 || s.Active != 7 {
		t.Errorf("Normalize() = %v, want 2..7", s)
	}
	f := New(2, 7)
	if f.Normalize() != f {
		t.Error("Normalize() changed an already-forward selection")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		max  int
		want Selection
	}{
		{"in bounds", New(1, 3), 5, New(1, 3)},
		{"active over", New(1, 9), 5, New(1, 5)},
		{"both over", New(8, 9), 5, New(5, 5)},
		{"negative", New(-2, 3), 5, New(0, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Clamp(tt.max); got != tt.want {
				t.Errorf("Clamp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	s := New(2, 5)
	for off, want := range map[int]bool{1: false, 2: true, 4: true, 5: false} {
		if got := s.Contains(off); got != want {
			t.Errorf("Contains(%d) = %v, want %v", off, got, want)
		}
	}
	if Caret(3).Contains(3) {
		t.Error("empty selection should contain nothing")
	}
}

func TestText(t *testing.T) {
	text := "hello world"
	if got := New(6, 11).Text(text); got != "world" {
		t.Errorf("Text() = %q, want %q", got, "world")
	}
	if got := New(11, 6).Text(text); got != "world" {
		t.Errorf("backward Text() = %q, want %q", got, "world")
	}
	// Stale selection from before a shrink clamps instead of panicking.
	if got := New(6, 99).Text(text); got != "world" {
		t.Errorf("clamped Text() = %q, want %q", got, "world")
	}
}
