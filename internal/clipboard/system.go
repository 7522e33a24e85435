package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"
)

// System is a Service backed by the operating system clipboard via the
// atotto/clipboard package. On X11 both channels map to their native
// selections; elsewhere the primary channel degrades to the single
// available clipboard, matching the engine's post-to-what-exists rule.
type System struct {
	mu sync.Mutex
}

// NewSystem creates a system clipboard service.
// Available reports false when the platform has no clipboard at all.
func NewSystem() *System {
	return &System{}
}

// Available reports whether the platform exposes a clipboard.
func (s *System) Available() bool {
	return !clipboard.Unsupported
}

// SetText writes text to the channel's selection.
func (s *System) SetText(ch Channel, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	restore := s.selectChannel(ch)
	defer restore()
	// Best effort: an unavailable clipboard is routine input loss,
	// not an error the engine can act on.
	_ = clipboard.WriteAll(text)
}

// Clear releases the channel by writing empty text; the OS clipboard
// has no explicit disown operation at this level.
func (s *System) Clear(ch Channel) {
	s.SetText(ch, "")
}

// RequestText reads the channel's selection. atotto's read is blocking
// but local, so completion is synchronous.
func (s *System) RequestText(ch Channel, cb Callback) {
	if cb == nil {
		return
	}
	s.mu.Lock()
	restore := s.selectChannel(ch)
	text, err := clipboard.ReadAll()
	restore()
	s.mu.Unlock()
	if err != nil || text == "" {
		cb("", false)
		return
	}
	cb(text, true)
}

// Owned reports whether the channel currently yields text.
func (s *System) Owned(ch Channel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	restore := s.selectChannel(ch)
	defer restore()
	text, err := clipboard.ReadAll()
	return err == nil && text != ""
}

// selectChannel flips atotto's package-level Primary switch for the
// duration of one operation, returning a restore func. The mutex above
// serializes access to that package-level state.
func (s *System) selectChannel(ch Channel) func() {
	prev := clipboard.Primary
	clipboard.Primary = ch == ChannelPrimary
	return func() { clipboard.Primary = prev }
}
