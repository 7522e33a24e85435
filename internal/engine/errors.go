package engine

import (
	"github.com/pixelprism/entryline/internal/engine/buffer"
	"github.com/pixelprism/entryline/internal/engine/history"
)

// Re-exported sentinel errors from the editing subsystems.
var (
	ErrCapacityExceeded = buffer.ErrCapacityExceeded
	ErrNothingToUndo    = history.ErrNothingToUndo
	ErrNothingToRedo    = history.ErrNothingToRedo
)
