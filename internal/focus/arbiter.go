package focus

import "sync"

// Holder is an entity that can own keyboard focus.
type Holder interface {
	// ReleaseFocus is called on the current holder when another holder
	// acquires focus. Implementations fire their change notification
	// and transition to their unfocused state.
	ReleaseFocus()

	// WindowFocusChanged informs the holder of host-window focus.
	WindowFocusChanged(focused bool)
}

// Arbiter owns the single "currently focused" reference for an
// application context. It replaces what would otherwise be a bare
// package-level pointer.
type Arbiter struct {
	mu            sync.Mutex
	current       Holder
	holders       []Holder
	windowFocused bool
}

// New creates an arbiter. The host window is assumed focused initially.
func New() *Arbiter {
	return &Arbiter{windowFocused: true}
}

// Register adds a holder to the window-focus fan-out list.
func (a *Arbiter) Register(h Holder) {
	if h == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	for _, r := range a.holders {
		if r == h {
			return
		}
	}
	a.holders = append(a.holders, h)
}

// Unregister removes a holder, releasing focus if it held it.
func (a *Arbiter) Unregister(h Holder) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == h {
		a.current = nil
	}
	for i, r := range a.holders {
		if r == h {
			a.holders = append(a.holders[:i], a.holders[i+1:]...)
			return
		}
	}
}

// Acquire makes h the focused holder. If another holder currently owns
// focus it is released first, outside the arbiter lock, so its change
// notification runs before h becomes focused.
func (a *Arbiter) Acquire(h Holder) {
	if h == nil {
		return
	}
	a.mu.Lock()
	prev := a.current
	if prev == h {
		a.mu.Unlock()
		return
	}
	a.current = nil
	a.mu.Unlock()

	if prev != nil {
		prev.ReleaseFocus()
	}

	a.mu.Lock()
	a.current = h
	a.mu.Unlock()
}

// Release gives up focus if h currently holds it. The holder's own
// unfocus path runs its change notification; the arbiter does not call
// ReleaseFocus here.
func (a *Arbiter) Release(h Holder) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == h {
		a.current = nil
	}
}

// Current returns the focused holder, or nil.
func (a *Arbiter) Current() Holder {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current
}

// SetWindowFocus records host-window focus and fans it out to every
// registered holder.
func (a *Arbiter) SetWindowFocus(focused bool) {
	a.mu.Lock()
	a.windowFocused = focused
	holders := make([]Holder, len(a.holders))
	copy(holders, a.holders)
	a.mu.Unlock()

	for _, h := range holders {
		h.WindowFocusChanged(focused)
	}
}

// WindowFocused returns the recorded host-window focus state.
func (a *Arbiter) WindowFocused() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.windowFocused
}
