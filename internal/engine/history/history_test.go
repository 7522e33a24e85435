package history

import (
	"errors"
	"fmt"
	"testing"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	s := New(0)
	s.Checkpoint("before")

	text, err := s.Undo("after")
	if err != nil {
		t.Fatalf("Undo() error = %v", err)
	}
	if text != "before" {
		t.Errorf("Undo() = %q, want %q", text, "before")
	}

	text, err = s.Redo("before")
	if err != nil {
		t.Fatalf("Redo() error = %v", err)
	}
	if text != "after" {
		t.Errorf("Redo() = %q, want %q", text, "after")
	}
}

func TestUndoEmpty(t *testing.T) {
	s := New(4)
	if _, err := s.Undo("current"); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("Undo() error = %v, want ErrNothingToUndo", err)
	}
	if s.RedoCount() != 0 {
		t.Error("failed Undo must not touch the redo stack")
	}
}

func TestRedoEmpty(t *testing.T) {
	s := New(4)
	if _, err := s.Redo("current"); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() error = %v, want ErrNothingToRedo", err)
	}
}

func TestCheckpointClearsRedo(t *testing.T) {
	s := New(8)
	s.Checkpoint("a")
	if _, err := s.Undo("b"); err != nil {
		t.Fatal(err)
	}
	if !s.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	s.Checkpoint("a")
	if s.CanRedo() {
		t.Error("checkpoint must clear the redo stack")
	}
	if _, err := s.Redo("c"); !errors.Is(err, ErrNothingToRedo) {
		t.Errorf("Redo() after divergent edit error = %v, want ErrNothingToRedo", err)
	}
}

func TestCapacityDiscardsOldest(t *testing.T) {
	s := New(64)
	for i := 0; i < 65; i++ {
		s.Checkpoint(fmt.Sprintf("edit-%d", i))
	}
	if got := s.UndoCount(); got != 64 {
		t.Fatalf("UndoCount() = %d, want 64", got)
	}

	// Unwind everything; the oldest entry (edit-0) is gone.
	var last string
	current := "final"
	for i := 0; i < 64; i++ {
		text, err := s.Undo(current)
		if err != nil {
			t.Fatalf("Undo() #%d error = %v", i, err)
		}
		last = text
		current = text
	}
	if last != "edit-1" {
		t.Errorf("deepest snapshot = %q, want %q (edit-0 evicted)", last, "edit-1")
	}
	if _, err := s.Undo(current); !errors.Is(err, ErrNothingToUndo) {
		t.Errorf("65th Undo() error = %v, want ErrNothingToUndo", err)
	}
}

func TestDefaultDepth(t *testing.T) {
	s := New(0)
	if s.Depth() != DefaultDepth {
		t.Errorf("Depth() = %d, want %d", s.Depth(), DefaultDepth)
	}
	s = New(-3)
	if s.Depth() != DefaultDepth {
		t.Errorf("Depth() = %d, want %d", s.Depth(), DefaultDepth)
	}
}

func TestClear(t *testing.T) {
	s := New(8)
	s.Checkpoint("a")
	s.Checkpoint("b")
	if _, err := s.Undo("c"); err != nil {
		t.Fatal(err)
	}
	s.Clear()
	if s.CanUndo() || s.CanRedo() {
		t.Error("Clear() left snapshots behind")
	}
}

func TestInterleavedSequence(t *testing.T) {
	s := New(8)
	// Simulate typing "ab", undoing both, redoing one.
	s.Checkpoint("")  // before 'a'
	s.Checkpoint("a") // before 'b'

	text, err := s.Undo("ab")
	if err != nil || text != "a" {
		t.Fatalf("Undo() = %q, %v, want \"a\"", text, err)
	}
	text, err = s.Undo("a")
	if err != nil || text != "" {
		t.Fatalf("Undo() = %q, %v, want \"\"", text, err)
	}
	text, err = s.Redo("")
	if err != nil || text != "a" {
		t.Fatalf("Redo() = %q, %v, want \"a\"", text, err)
	}
	if s.UndoCount() != 1 || s.RedoCount() != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", s.UndoCount(), s.RedoCount())
	}
}
