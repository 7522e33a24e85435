package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNewEmpty(t *testing.T) {
	b := New()
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	if b.String() != "" {
		t.Errorf("String() = %q, want empty", b.String())
	}
}

func TestFromString(t *testing.T) {
	b := FromString("hello")
	if b.String() != "hello" {
		t.Errorf("String() = %q, want %q", b.String(), "hello")
	}
	if b.Len() != 5 {
		t.Errorf("Len() = %d, want 5", b.Len())
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      int
		text    string
		want    string
	}{
		{"into empty", "", 0, "abc", "abc"},
		{"at start", "world", 0, "hello ", "hello world"},
		{"at end", "hello", 5, "!", "hello!"},
		{"in middle", "held", 3, "l wor", "hell world"},
		{"offset clamped low", "abc", -4, "x", "xabc"},
		{"offset clamped high", "abc", 99, "x", "abcx"},
		{"empty string", "abc", 1, "", "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.initial)
			if err := b.Insert(tt.at, tt.text); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInsertCapacityExceeded(t *testing.T) {
	b := FromString("abcd", WithMaxLength(5))
	if err := b.Insert(4, "e"); err != nil {
		t.Fatalf("Insert() at max-1 error = %v", err)
	}
	err := b.Insert(5, "f")
	if !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Insert() error = %v, want ErrCapacityExceeded", err)
	}
	if b.String() != "abcde" {
		t.Errorf("buffer changed on rejected insert: %q", b.String())
	}
}

func TestInsertCapacityExceededMultiByte(t *testing.T) {
	b := FromString("abcd", WithMaxLength(5))
	// Two-byte rune would land at 6 bytes.
	if err := b.Insert(4, "é"); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("Insert() error = %v, want ErrCapacityExceeded", err)
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		lo, hi      int
		want        string
		wantRemoved string
	}{
		{"middle", "hello world", 5, 11, "hello", " world"},
		{"start", "hello", 0, 2, "llo", "he"},
		{"reversed endpoints", "hello", 4, 1, "ho", "ell"},
		{"empty range", "hello", 2, 2, "hello", ""},
		{"clamped", "hello", 3, 99, "hel", "lo"},
		{"all", "hello", 0, 5, "", "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromString(tt.initial)
			removed := b.DeleteRange(tt.lo, tt.hi)
			if removed != tt.wantRemoved {
				t.Errorf("DeleteRange() removed %q, want %q", removed, tt.wantRemoved)
			}
			if got := b.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReplaceAll(t *testing.T) {
	b := FromString("old content")
	b.ReplaceAll("new")
	if b.String() != "new" {
		t.Errorf("String() = %q, want %q", b.String(), "new")
	}
	b.ReplaceAll("")
	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
}

func TestReplaceAllIgnoresMaxLength(t *testing.T) {
	b := New(WithMaxLength(3))
	b.ReplaceAll("programmatic")
	if b.String() != "programmatic" {
		t.Errorf("String() = %q, want full text", b.String())
	}
}

func TestGrowthAmortized(t *testing.T) {
	b := New()
	for i := 0; i < 100; i++ {
		if err := b.Insert(b.Len(), "x"); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}
	if b.Len() != 100 {
		t.Fatalf("Len() = %d, want 100", b.Len())
	}
	if b.Cap() < 100 {
		t.Errorf("Cap() = %d, want >= 100", b.Cap())
	}
	// 1.5x growth from a floor of 8 reaches 100 well before doubling
	// every insert would; the exact ceiling just needs to be bounded.
	if b.Cap() > 200 {
		t.Errorf("Cap() = %d, want <= 200", b.Cap())
	}
}

func TestLongContent(t *testing.T) {
	long := strings.Repeat("ab", 512)
	b := FromString(long)
	if b.String() != long {
		t.Error("long content round-trip failed")
	}
	b.DeleteRange(0, 512)
	if b.Len() != 512 {
		t.Errorf("Len() = %d, want 512", b.Len())
	}
}
