// ABOUTME: Tests for typed stream errors
// ABOUTME: Checks messages and unwrapping
package pulse_test

import (
	"errors"
	"testing"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
	"github.com/Resonate-Protocol/pulse-simple-go/pkg/pulse"
	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"configuration",
			&pulse.ConfigurationError{Field: "name", Err: pulse.ErrEmbeddedNUL},
			"invalid name: contains embedded NUL character",
		},
		{
			"connection default device",
			&pulse.ConnectionError{Direction: audio.Record, Err: cause},
			"failed to open record stream on default device: connection refused",
		},
		{
			"connection named device",
			&pulse.ConnectionError{Direction: audio.Playback, Device: "sink0", Err: cause},
			"failed to open playback stream on sink0: connection refused",
		},
		{
			"io with size",
			&pulse.IOError{Op: "write", Bytes: 19200, Err: cause},
			"stream write failed (19200 bytes): connection refused",
		},
		{
			"io without size",
			&pulse.IOError{Op: "close", Err: cause},
			"stream close failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.expected)
		})
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("broken pipe")

	assert.ErrorIs(t, &pulse.ConfigurationError{Field: "rate", Err: pulse.ErrInvalidRate}, audio.ErrInvalidRate)
	assert.ErrorIs(t, &pulse.ConnectionError{Err: cause}, cause)
	assert.ErrorIs(t, &pulse.IOError{Op: "read", Err: cause}, cause)
}
