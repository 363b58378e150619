// Package serial abstracts the serial driver behind small interfaces so
// the UI can run against real hardware or a pty-backed demo device.
package serial

import "serimux/internal/config"

// ReadBufferSize is the per-poll read chunk.
const ReadBufferSize = 256

// Port is one open serial connection. Read waits at most a short driver
// timeout and returns (0, nil) when no data arrived; it never blocks the
// caller's poll loop.
type Port interface {
	Read(buf []byte) (int, error)
	Write(data []byte) (int, error)
	Close() error
}

// Transport enumerates ports and opens them.
type Transport interface {
	ListPorts() ([]string, error)
	Open(cfg config.Config) (Port, error)
}
