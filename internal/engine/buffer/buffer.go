package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrCapacityExceeded indicates an insert would exceed the configured
	// maximum length. The buffer is left unchanged.
	ErrCapacityExceeded = errors.New("buffer capacity exceeded")
)

// minCapacity is the smallest allocation made by reserve.
const minCapacity = 8

// Buffer is a growable single-line text buffer.
//
// The zero value is not usable; create buffers with New or FromString.
// Buffer is not safe for concurrent use; the engine serializes access.
type Buffer struct {
	data   []byte
	maxLen int // 0 = unlimited
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithMaxLength sets the maximum content length in bytes.
// Zero or negative means unlimited.
func WithMaxLength(n int) Option {
	return func(b *Buffer) {
		if n < 0 {
			n = 0
		}
		b.maxLen = n
	}
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FromString creates a buffer with initial content.
// Initial content is not subject to the maximum length; it mirrors the
// programmatic set-text path, which always replaces wholesale.
func FromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.ReplaceAll(s)
	return b
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current allocated capacity in bytes.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// MaxLength returns the configured maximum length (0 = unlimited).
func (b *Buffer) MaxLength() int {
	return b.maxLen
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Insert inserts s at byte offset at, clamped to [0, Len()].
// Returns ErrCapacityExceeded (and changes nothing) when the resulting
// length would exceed the maximum length.
func (b *Buffer) Insert(at int, s string) error {
	if s == "" {
		return nil
	}
	if b.maxLen > 0 && len(b.data)+len(s) > b.maxLen {
		return ErrCapacityExceeded
	}
	at = b.clamp(at)
	b.reserve(len(b.data) + len(s))
	b.data = b.data[:len(b.data)+len(s)]
	copy(b.data[at+len(s):], b.data[at:])
	copy(b.data[at:], s)
	return nil
}

// DeleteRange removes the bytes in [a, b) and returns the removed text.
// The endpoints are normalized (swapped if reversed) and clamped.
func (b *Buffer) DeleteRange(lo, hi int) string {
	if lo > hi {
		lo, hi = hi, lo
	}
	lo = b.clamp(lo)
	hi = b.clamp(hi)
	if lo == hi {
		return ""
	}
	removed := string(b.data[lo:hi])
	b.data = append(b.data[:lo], b.data[hi:]...)
	return removed
}

// ReplaceAll replaces the entire content with s.
// Like FromString, the replacement ignores the maximum length.
func (b *Buffer) ReplaceAll(s string) {
	b.data = b.data[:0]
	b.reserve(len(s))
	b.data = append(b.data, s...)
}

// clamp bounds an offset to [0, Len()].
func (b *Buffer) clamp(off int) int {
	if off < 0 {
		return 0
	}
	if off > len(b.data) {
		return len(b.data)
	}
	return off
}

// reserve grows the backing array to hold at least need bytes,
// multiplying capacity by 1.5 with a floor of minCapacity.
func (b *Buffer) reserve(need int) {
	if need <= cap(b.data) {
		return
	}
	c := cap(b.data)
	if c < minCapacity {
		c = minCapacity
	}
	for c < need {
		c += c / 2
	}
	grown := make([]byte, len(b.data), c)
	copy(grown, b.data)
	b.data = grown
}
