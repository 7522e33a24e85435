package history

import (
	"errors"
	"sync"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// DefaultDepth is the per-direction capacity used when none is given.
const DefaultDepth = 64

// Stack manages bounded undo/redo snapshots for one entry.
type Stack struct {
	mu sync.Mutex

	undo []string
	redo []string

	depth int
}

// New creates a history stack holding up to depth snapshots in each
// direction. Non-positive depth uses DefaultDepth.
func New(depth int) *Stack {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &Stack{depth: depth}
}

// Checkpoint records the pre-edit text. Call immediately before a
// mutation. The oldest snapshot is discarded at capacity, and the redo
// stack is cleared unconditionally.
func (s *Stack) Checkpoint(current string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) >= s.depth {
		excess := len(s.undo) - s.depth + 1
		s.undo = append(s.undo[:0], s.undo[excess:]...)
	}
	s.undo = append(s.undo, current)
	s.redo = s.redo[:0]
}

// Undo pops the most recent snapshot, pushing current onto the redo
// stack. Returns ErrNothingToUndo when empty; the caller treats that as
// a no-op.
func (s *Stack) Undo(current string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return "", ErrNothingToUndo
	}
	text := s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.redo = append(s.redo, current)
	return text, nil
}

// Redo pops the most recent undone snapshot, pushing current onto the
// undo stack. Returns ErrNothingToRedo when empty.
func (s *Stack) Redo(current string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		return "", ErrNothingToRedo
	}
	text := s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.undo = append(s.undo, current)
	return text, nil
}

// CanUndo returns true if an undo snapshot is available.
func (s *Stack) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo) > 0
}

// CanRedo returns true if a redo snapshot is available.
func (s *Stack) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo) > 0
}

// UndoCount returns the number of undo snapshots held.
func (s *Stack) UndoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo)
}

// RedoCount returns the number of redo snapshots held.
func (s *Stack) RedoCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.redo)
}

// Depth returns the per-direction capacity.
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depth
}

// Clear removes all snapshots in both directions.
func (s *Stack) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.undo = nil
	s.redo = nil
}
