package key

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyRune, "rune"},
		{KeyLeft, "left"},
		{KeyRight, "right"},
		{KeyHome, "home"},
		{KeyEnd, "end"},
		{KeyBackspace, "backspace"},
		{KeyDelete, "delete"},
		{KeyEnter, "enter"},
		{Key(200), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestModifierHas(t *testing.T) {
	m := ModShift | ModCtrl
	if !m.Has(ModShift) || !m.Has(ModCtrl) {
		t.Error("combined modifier should report both bits")
	}
	if ModNone.Has(ModShift) {
		t.Error("ModNone should report nothing")
	}
	if ModShift.Has(ModCtrl) {
		t.Error("ModShift should not report ModCtrl")
	}
}

func TestIsChar(t *testing.T) {
	if !NewRuneEvent('a', ModNone).IsChar() {
		t.Error("'a' should be a printable char event")
	}
	if NewRuneEvent(0x07, ModNone).IsChar() {
		t.Error("BEL should not be printable")
	}
	if NewSpecialEvent(KeyEnter, ModNone).IsChar() {
		t.Error("special keys are not char events")
	}
}

func TestNewEventsTimestamped(t *testing.T) {
	if NewRuneEvent('x', ModNone).Timestamp.IsZero() {
		t.Error("rune event timestamp not set")
	}
	if NewSpecialEvent(KeyHome, ModShift).Timestamp.IsZero() {
		t.Error("special event timestamp not set")
	}
}
