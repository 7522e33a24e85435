package clipboard

import "sync"

// Memory is an in-process Service. Both channels live in this process,
// so requests complete synchronously, the same way the X11 original
// short-circuits when it already owns the selection it is asked for.
// Useful for tests and single-window hosts.
type Memory struct {
	mu   sync.Mutex
	data map[Channel]string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{data: make(map[Channel]string)}
}

// SetText stores text on the channel.
func (m *Memory) SetText(ch Channel, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[ch] = text
}

// Clear releases the channel.
func (m *Memory) Clear(ch Channel) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, ch)
}

// RequestText completes synchronously with the stored text.
func (m *Memory) RequestText(ch Channel, cb Callback) {
	if cb == nil {
		return
	}
	m.mu.Lock()
	text, ok := m.data[ch]
	m.mu.Unlock()
	cb(text, ok)
}

// Owned reports whether the channel holds text.
func (m *Memory) Owned(ch Channel) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.data[ch]
	return ok
}
