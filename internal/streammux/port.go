package streammux

import "io"

// FramePorter is the minimal interface a WITS byte source must satisfy.
// Serial ports, TCP connections, replay files, and test mocks all qualify.
// Write carries poll requests to sources that support them; read-only
// sources accept and ignore writes.
type FramePorter interface {
	io.ReadWriter
	io.Closer
}
