package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(cause, ErrInternal.Code, ErrInternal.Status, "failed to persist roster")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to persist roster")
	assert.Contains(t, err.Error(), "disk full")
}

func TestFromError(t *testing.T) {
	appErr := FromError(Clone(ErrNotFound, "teacher not found"))
	require.NotNil(t, appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "teacher not found", appErr.Message)

	// A wrapped typed error is unwrapped, not re-classified.
	wrapped := fmt.Errorf("handler: %w", Clone(ErrValidation, ""))
	assert.Equal(t, ErrValidation.Code, FromError(wrapped).Code)

	// Everything else becomes an internal error.
	assert.Equal(t, ErrInternal.Code, FromError(errors.New("boom")).Code)
	assert.Nil(t, FromError(nil))
}

func TestCloneDoesNotMutateSentinel(t *testing.T) {
	clone := Clone(ErrValidation, "bad rating")
	assert.Equal(t, "bad rating", clone.Message)
	assert.Equal(t, "validation failed", ErrValidation.Message)
}
