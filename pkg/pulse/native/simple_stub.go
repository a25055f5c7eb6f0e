//go:build !cgo || nopulse

// ABOUTME: libpulse-simple stub when cgo or the library is not available
// ABOUTME: Every open fails with ErrUnavailable
package native

import (
	"time"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
)

// Simple is an open connection to the default PulseAudio server (stub)
type Simple struct{}

// Open always fails in builds without libpulse
func Open(app, stream string, dir audio.Direction, device string, spec audio.SampleSpec) (*Simple, error) {
	return nil, ErrUnavailable
}

func (s *Simple) Write(p []byte) error {
	return ErrUnavailable
}

func (s *Simple) Read(p []byte) error {
	return ErrUnavailable
}

func (s *Simple) Drain() error {
	return ErrUnavailable
}

func (s *Simple) Flush() error {
	return ErrUnavailable
}

func (s *Simple) Latency() (time.Duration, error) {
	return 0, ErrUnavailable
}

func (s *Simple) Close() error {
	return nil
}
