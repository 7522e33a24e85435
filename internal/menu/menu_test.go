package menu

import "testing"

func TestCommandStrings(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{CommandCut, "Cut"},
		{CommandCopy, "Copy"},
		{CommandPaste, "Paste"},
		{CommandSelectAll, "Select All"},
		{CommandClear, "Clear"},
		{CommandUndo, "Undo"},
		{CommandRedo, "Redo"},
		{Command(42), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.cmd.String(); got != tt.want {
			t.Errorf("Command(%d).String() = %q, want %q", tt.cmd, got, tt.want)
		}
	}
}

func TestCommandValues(t *testing.T) {
	// The ids double as menu positions; they must stay stable.
	if CommandCut != 0 || CommandCopy != 1 || CommandPaste != 2 ||
		CommandSelectAll != 3 || CommandClear != 4 || CommandUndo != 5 || CommandRedo != 6 {
		t.Error("command ids shifted")
	}
}

func TestValid(t *testing.T) {
	if !CommandCut.Valid() || !CommandRedo.Valid() {
		t.Error("real commands reported invalid")
	}
	if Command(-1).Valid() || Command(7).Valid() {
		t.Error("out-of-range commands reported valid")
	}
}

func TestFlagsEnabled(t *testing.T) {
	f := Flags{Copy: true, Paste: true, Undo: true}
	enabled := []Command{CommandCopy, CommandPaste, CommandUndo}
	disabled := []Command{CommandCut, CommandSelectAll, CommandClear, CommandRedo, Command(99)}
	for _, c := range enabled {
		if !f.Enabled(c) {
			t.Errorf("Enabled(%v) = false, want true", c)
		}
	}
	for _, c := range disabled {
		if f.Enabled(c) {
			t.Errorf("Enabled(%v) = true, want false", c)
		}
	}
}

func TestItems(t *testing.T) {
	items := Items()
	if len(items) != 7 {
		t.Fatalf("len(Items()) = %d, want 7", len(items))
	}
	for i, item := range items {
		if int(item.Command) != i {
			t.Errorf("item %d has command %d", i, item.Command)
		}
		if item.Label == "" || item.Label == "Unknown" {
			t.Errorf("item %d has label %q", i, item.Label)
		}
	}
}
