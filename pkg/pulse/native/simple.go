//go:build cgo && !nopulse

// ABOUTME: cgo binding to the libpulse-simple API
// ABOUTME: One Simple value owns one pa_simple connection
package native

/*
#cgo pkg-config: libpulse-simple
#include <stdlib.h>
#include <pulse/simple.h>
#include <pulse/error.h>
*/
import "C"

import (
	"time"
	"unsafe"

	"github.com/Resonate-Protocol/pulse-simple-go/pkg/audio"
)

// Simple is an open connection to the default PulseAudio server
type Simple struct {
	s *C.pa_simple
}

func newError(op string, code C.int) error {
	return &Error{
		Op:      op,
		Code:    int(code),
		Message: C.GoString(C.pa_strerror(code)),
	}
}

// Open connects to the default server and creates a stream with the given
// spec, using the default channel map and buffer attributes. An empty device
// selects the server's default. Strings must not contain NUL characters.
func Open(app, stream string, dir audio.Direction, device string, spec audio.SampleSpec) (*Simple, error) {
	capp := C.CString(app)
	defer C.free(unsafe.Pointer(capp))

	cstream := C.CString(stream)
	defer C.free(unsafe.Pointer(cstream))

	var cdev *C.char
	if device != "" {
		cdev = C.CString(device)
		defer C.free(unsafe.Pointer(cdev))
	}

	ss := C.pa_sample_spec{
		format:   C.pa_sample_format_t(spec.Format),
		rate:     C.uint32_t(spec.Rate),
		channels: C.uint8_t(spec.Channels),
	}

	var code C.int
	s := C.pa_simple_new(
		nil, // default server
		capp,
		C.pa_stream_direction_t(dir),
		cdev,
		cstream,
		&ss,
		nil, // default channel map
		nil, // default buffering attributes
		&code,
	)
	if s == nil {
		return nil, newError("new", code)
	}

	return &Simple{s: s}, nil
}

// Write blocks until all of p has been handed to the server
func (s *Simple) Write(p []byte) error {
	if s.s == nil {
		return &Error{Op: "write", Code: CodeBadState, Message: "connection released"}
	}
	if len(p) == 0 {
		return nil
	}

	var code C.int
	if C.pa_simple_write(s.s, unsafe.Pointer(&p[0]), C.size_t(len(p)), &code) < 0 {
		return newError("write", code)
	}
	return nil
}

// Read blocks until p has been filled
func (s *Simple) Read(p []byte) error {
	if s.s == nil {
		return &Error{Op: "read", Code: CodeBadState, Message: "connection released"}
	}
	if len(p) == 0 {
		return nil
	}

	var code C.int
	if C.pa_simple_read(s.s, unsafe.Pointer(&p[0]), C.size_t(len(p)), &code) < 0 {
		return newError("read", code)
	}
	return nil
}

// Drain blocks until all written data has been played
func (s *Simple) Drain() error {
	if s.s == nil {
		return &Error{Op: "drain", Code: CodeBadState, Message: "connection released"}
	}

	var code C.int
	if C.pa_simple_drain(s.s, &code) < 0 {
		return newError("drain", code)
	}
	return nil
}

// Flush discards buffered data
func (s *Simple) Flush() error {
	if s.s == nil {
		return &Error{Op: "flush", Code: CodeBadState, Message: "connection released"}
	}

	var code C.int
	if C.pa_simple_flush(s.s, &code) < 0 {
		return newError("flush", code)
	}
	return nil
}

// Latency returns the playback or record latency
func (s *Simple) Latency() (time.Duration, error) {
	if s.s == nil {
		return 0, &Error{Op: "get_latency", Code: CodeBadState, Message: "connection released"}
	}

	var code C.int
	usec := C.pa_simple_get_latency(s.s, &code)
	if usec == ^C.pa_usec_t(0) {
		return 0, newError("get_latency", code)
	}
	return time.Duration(usec) * time.Microsecond, nil
}

// Close frees the connection. Later calls do nothing.
func (s *Simple) Close() error {
	if s.s != nil {
		C.pa_simple_free(s.s)
		s.s = nil
	}
	return nil
}
