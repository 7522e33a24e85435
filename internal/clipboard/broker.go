package clipboard

import (
	"sync"

	"github.com/google/uuid"
)

// MaxPendingRequests bounds the number of simultaneously outstanding
// paste requests. Requests past the bound complete immediately with no
// text rather than queueing without limit.
const MaxPendingRequests = 8

// Broker tracks outstanding paste requests against a Service. Each
// request gets a token, and the broker as a whole carries a generation
// counter: Close bumps the generation, so completions that arrive
// afterwards find no matching request and do nothing. This is what
// makes it safe to destroy an engine while a paste is in flight.
type Broker struct {
	mu      sync.Mutex
	service Service
	pending map[uuid.UUID]Callback
	gen     uint64
	closed  bool
}

// NewBroker creates a broker over the given service.
func NewBroker(service Service) *Broker {
	return &Broker{
		service: service,
		pending: make(map[uuid.UUID]Callback),
	}
}

// Request issues an asynchronous paste request. The callback fires
// exactly once unless the broker is closed first, in which case it may
// not fire at all; it never fires after Close returns a completed
// close.
func (b *Broker) Request(ch Channel, cb Callback) {
	if cb == nil {
		return
	}
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	if len(b.pending) >= MaxPendingRequests {
		b.mu.Unlock()
		cb("", false)
		return
	}
	id := uuid.New()
	gen := b.gen
	b.pending[id] = cb
	service := b.service
	b.mu.Unlock()

	service.RequestText(ch, func(text string, ok bool) {
		b.resolve(id, gen, text, ok)
	})
}

// resolve delivers a completion if its request is still live.
func (b *Broker) resolve(id uuid.UUID, gen uint64, text string, ok bool) {
	b.mu.Lock()
	if b.closed || gen != b.gen {
		b.mu.Unlock()
		return
	}
	cb, live := b.pending[id]
	if live {
		delete(b.pending, id)
	}
	b.mu.Unlock()

	if live {
		cb(text, ok)
	}
}

// PendingCount returns the number of outstanding requests.
func (b *Broker) PendingCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Close invalidates all outstanding requests. Completions delivered
// after Close are dropped without touching any callback state.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.gen++
	b.pending = make(map[uuid.UUID]Callback)
}
