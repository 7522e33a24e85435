package clipboard

// Channel names a system text-exchange target.
type Channel string

const (
	// ChannelClipboard is the explicit copy/paste clipboard.
	ChannelClipboard Channel = "clipboard"
	// ChannelPrimary is the selection channel (middle-click paste).
	ChannelPrimary Channel = "primary"
)

// Callback receives the result of a paste request. ok is false when the
// channel is empty or unavailable; text is then meaningless.
// A callback fires at most once per request.
type Callback func(text string, ok bool)

// Service is the clipboard collaborator the engine talks to.
//
// Implementations may deliver RequestText callbacks synchronously or
// from a later event-loop turn; callers must not assume either.
type Service interface {
	// SetText stores text on the channel, claiming ownership.
	SetText(ch Channel, text string)

	// Clear releases ownership of the channel.
	Clear(ch Channel)

	// RequestText asks for the channel's text. The callback fires
	// exactly once, with ok=false when nothing is available.
	RequestText(ch Channel, cb Callback)

	// Owned reports whether any text is currently available on the
	// channel. Used for menu paste enablement.
	Owned(ch Channel) bool
}
