package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditErrorFormatting(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := NewIOError("scan_root", "cannot access audit root", cause).WithPath("/srv/app")

	msg := err.Error()
	assert.Contains(t, msg, "[scan_root]")
	assert.Contains(t, msg, "cannot access audit root")
	assert.Contains(t, msg, "/srv/app")
	assert.Contains(t, msg, "permission denied")
}

func TestAuditErrorUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := NewInternalError("oops", "something broke", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestAuditErrorIsMatchesTypeAndCode(t *testing.T) {
	err := NewConfigError("config_output_format", "bad format", nil)

	assert.ErrorIs(t, err, NewConfigError("config_output_format", "other text", nil))
	assert.NotErrorIs(t, err, NewConfigError("config_duplicate_scope", "bad scope", nil))
}

func TestIsType(t *testing.T) {
	err := NewValidationError("bad_arg", "bad argument")

	assert.True(t, IsType(err, ErrorTypeValidation))
	assert.False(t, IsType(err, ErrorTypeIO))

	wrapped := fmt.Errorf("running audit: %w", err)
	assert.True(t, IsType(wrapped, ErrorTypeValidation))

	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeValidation))
}
