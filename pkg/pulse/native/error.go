// ABOUTME: PulseAudio error codes
// ABOUTME: Wraps pa error codes returned by libpulse-simple calls
package native

import (
	"errors"
	"fmt"
)

// Error codes as defined by pa_error_code_t
const (
	CodeOK                   = 0
	CodeAccess               = 1
	CodeCommand              = 2
	CodeInvalid              = 3
	CodeExist                = 4
	CodeNoEntity             = 5
	CodeConnectionRefused    = 6
	CodeProtocol             = 7
	CodeTimeout              = 8
	CodeAuthKey              = 9
	CodeInternal             = 10
	CodeConnectionTerminated = 11
	CodeKilled               = 12
	CodeInvalidServer        = 13
	CodeModInitFailed        = 14
	CodeBadState             = 15
	CodeNoData               = 16
	CodeVersion              = 17
	CodeTooLarge             = 18
	CodeNotSupported         = 19
)

// ErrUnavailable is returned when the package was built without libpulse
var ErrUnavailable = errors.New("pulseaudio support not enabled (build with cgo and libpulse-simple)")

// Error is a failure reported by the PulseAudio client library
type Error struct {
	Op      string
	Code    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pa_simple_%s: %s (code %d)", e.Op, e.Message, e.Code)
}

// Is matches errors with the same code, so callers can test against
// &Error{Code: CodeNoEntity}
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}
