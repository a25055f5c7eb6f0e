// ABOUTME: Playback and record streams over an owned native handle
// ABOUTME: Blocking, all-or-nothing bulk transfer of typed frames
package pulse

import (
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
)

// noCopy makes go vet's copylocks check flag copies of a stream
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// stream holds what playback and record streams share.
// It must not be copied after first use.
type stream struct {
	_     noCopy
	h     *handle
	shape audio.FrameShape
}

func openStream[S audio.Sample, F audio.Frame[S]](name, description string, dir audio.Direction, rate uint32, opts []Option) (*handle, audio.FrameShape, error) {
	o := options{transport: DefaultTransport}
	for _, opt := range opts {
		opt(&o)
	}

	shape := audio.ShapeOf[S, F]()
	req, err := buildRequest(name, description, dir, o.device, shape, rate)
	if err != nil {
		return nil, shape, err
	}

	h, err := openHandle(o.transport, req)
	if err != nil {
		return nil, shape, err
	}
	return h, shape, nil
}

// Shape returns the frame layout fixed for the stream's lifetime
func (s *stream) Shape() audio.FrameShape {
	return s.shape
}

// Spec returns the sample spec negotiated at open time
func (s *stream) Spec() audio.SampleSpec {
	return s.h.req.Spec
}

// ID identifies the stream in log output
func (s *stream) ID() string {
	return s.h.id.String()
}

// Closed reports whether the stream has been closed
func (s *stream) Closed() bool {
	return s.h.res == nil
}

// Flush discards data buffered on the server
func (s *stream) Flush() error {
	return s.h.flush()
}

// Latency returns the current stream latency as reported by the server
func (s *stream) Latency() (time.Duration, error) {
	return s.h.latency()
}

// Close releases the native stream. Only the first call has any effect.
// A stream that is never closed is released once it becomes unreachable,
// but callers should not rely on that.
func (s *stream) Close() error {
	return s.h.close()
}

// Playback is an output stream of frames of type F.
// A Playback is not safe for concurrent use.
type Playback[S audio.Sample, F audio.Frame[S]] struct {
	stream
}

// NewPlayback opens a playback stream on the default server.
// name identifies the application and description the stream.
func NewPlayback[S audio.Sample, F audio.Frame[S]](name, description string, rate uint32, opts ...Option) (*Playback[S, F], error) {
	h, shape, err := openStream[S, F](name, description, audio.Playback, rate, opts)
	if err != nil {
		return nil, err
	}
	return &Playback[S, F]{stream: stream{h: h, shape: shape}}, nil
}

// Write blocks until all frames have been handed to the server.
// Writing no frames is a no-op.
func (p *Playback[S, F]) Write(frames []F) error {
	return p.h.write(audio.FrameBytes[S](frames))
}

// Drain blocks until everything written has been played
func (p *Playback[S, F]) Drain() error {
	return p.h.drain()
}

// Record is a capture stream of frames of type F.
// A Record is not safe for concurrent use.
type Record[S audio.Sample, F audio.Frame[S]] struct {
	stream
}

// NewRecord opens a capture stream on the default server
func NewRecord[S audio.Sample, F audio.Frame[S]](name, description string, rate uint32, opts ...Option) (*Record[S, F], error) {
	h, shape, err := openStream[S, F](name, description, audio.Record, rate, opts)
	if err != nil {
		return nil, err
	}
	return &Record[S, F]{stream: stream{h: h, shape: shape}}, nil
}

// Read blocks until frames has been filled completely
func (r *Record[S, F]) Read(frames []F) error {
	return r.h.read(audio.FrameBytes[S](frames))
}
