// ABOUTME: Boundary between streams and the audio server
// ABOUTME: Defines Transport, Resource and the optional control interfaces
package pulse

import (
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
)

// OpenRequest carries everything the server needs to open a stream
type OpenRequest struct {
	AppName    string
	StreamName string
	Direction  audio.Direction
	Device     string // empty selects the server's default device
	Spec       audio.SampleSpec
}

// Transport opens native stream resources.
//
// If Open fails after acquiring partial state it may return that state
// together with the error; the caller closes it.
type Transport interface {
	Open(req OpenRequest) (Resource, error)
}

// TransportFunc adapts a function to the Transport interface
type TransportFunc func(req OpenRequest) (Resource, error)

func (f TransportFunc) Open(req OpenRequest) (Resource, error) {
	return f(req)
}

// Resource is one open native stream.
//
// Write and Read transfer the whole buffer or fail; there are no short
// transfers. Close is called exactly once.
type Resource interface {
	Write(p []byte) error
	Read(p []byte) error
	Close() error
}

// Drainer is implemented by resources that can wait for playback to finish
type Drainer interface {
	Drain() error
}

// Flusher is implemented by resources that can discard buffered data
type Flusher interface {
	Flush() error
}

// LatencyReporter is implemented by resources that report stream latency
type LatencyReporter interface {
	Latency() (time.Duration, error)
}

// Option configures stream construction
type Option func(*options)

type options struct {
	device    string
	transport Transport
}

// WithDevice selects a device by name instead of the server default
func WithDevice(name string) Option {
	return func(o *options) {
		o.device = name
	}
}

// WithTransport replaces the native transport, mainly for tests
// and alternate backends
func WithTransport(t Transport) Option {
	return func(o *options) {
		o.transport = t
	}
}
