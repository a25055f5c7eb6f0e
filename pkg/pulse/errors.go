// ABOUTME: Typed errors returned by stream construction and I/O
// ABOUTME: Separates bad parameters, failed opens and failed transfers
package pulse

import (
	"errors"
	"fmt"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
)

var (
	// ErrEmbeddedNUL is returned for text that cannot be passed to the
	// server as a C string without truncation
	ErrEmbeddedNUL = errors.New("contains embedded NUL character")

	// ErrInvalidRate is returned for a zero or out-of-range sample rate
	ErrInvalidRate = audio.ErrInvalidRate

	// ErrClosed is returned by I/O on a stream that has been closed
	ErrClosed = errors.New("stream is closed")
)

// ConfigurationError reports a parameter rejected before the server is contacted
type ConfigurationError struct {
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ConnectionError reports a failed open: server unreachable, spec rejected
// or device not found
type ConnectionError struct {
	Direction audio.Direction
	Device    string
	Err       error
}

func (e *ConnectionError) Error() string {
	device := e.Device
	if device == "" {
		device = "default device"
	}
	return fmt.Sprintf("failed to open %s stream on %s: %v", e.Direction, device, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// IOError reports a failed write, read or close on an open stream.
// Bytes is the size of the requested transfer, not the amount moved.
type IOError struct {
	Op    string
	Bytes int
	Err   error
}

func (e *IOError) Error() string {
	if e.Bytes > 0 {
		return fmt.Sprintf("stream %s failed (%d bytes): %v", e.Op, e.Bytes, e.Err)
	}
	return fmt.Sprintf("stream %s failed: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
