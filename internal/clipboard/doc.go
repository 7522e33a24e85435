// Package clipboard provides the text-exchange seam between the entry
// engine and the host system.
//
// Two named channels exist, mirroring the X11 model the engine grew up
// with: "clipboard" (explicit copy/paste) and "primary" (the selection
// mirror used for middle-click paste). A Service may complete paste
// requests synchronously or later from the host's event loop; the
// Broker in this package gives each outstanding request a token and a
// generation so a completion that arrives after the requester has shut
// down is a safe no-op.
package clipboard
