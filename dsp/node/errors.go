package node

import "errors"

var (
	// ErrDisposed is returned when a disposed node is mutated, connected, or rendered.
	ErrDisposed = errors.New("node: use after dispose")

	// ErrCycle is returned by Render when the upstream graph loops back on itself.
	ErrCycle = errors.New("node: graph contains cycle")

	// ErrNoPort is returned when a connection names a missing or wrongly directed port.
	ErrNoPort = errors.New("node: no such port")

	// ErrContextMismatch is returned when connecting units that render in different contexts.
	ErrContextMismatch = errors.New("node: ports belong to different contexts")
)
