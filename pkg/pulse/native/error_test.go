// ABOUTME: Tests for PulseAudio error values
// ABOUTME: Checks formatting and code matching
package native

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := &Error{Op: "new", Code: CodeConnectionRefused, Message: "Connection refused"}
	assert.EqualError(t, err, "pa_simple_new: Connection refused (code 6)")
}

func TestErrorIsMatchesCode(t *testing.T) {
	err := fmt.Errorf("open: %w", &Error{Op: "new", Code: CodeNoEntity, Message: "No such entity"})

	assert.True(t, errors.Is(err, &Error{Code: CodeNoEntity}))
	assert.False(t, errors.Is(err, &Error{Code: CodeConnectionRefused}))
	assert.False(t, errors.Is(err, ErrUnavailable))
}
