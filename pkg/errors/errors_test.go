package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("Product not found")

	assert.Equal(t, "Product not found", err.Message)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("Search query is required")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := Internal(cause)

	assert.Equal(t, "An internal error occurred", err.Message)
	assert.True(t, errors.Is(err, cause))
	// The cause is in Error() for logs, not in Message for clients.
	assert.Contains(t, err.Error(), "connection refused")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{ErrNotFound, http.StatusNotFound},
		{ErrInvalidInput, http.StatusBadRequest},
		{ErrServiceUnavail, http.StatusServiceUnavailable},
		{errors.New("anything else"), http.StatusInternalServerError},
		{NotFound("x"), http.StatusNotFound},
		{fmt.Errorf("wrapped: %w", ErrInvalidInput), http.StatusBadRequest},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "err=%v", tt.err)
	}
}

func TestWrap(t *testing.T) {
	err := Wrap(ErrNotFound, "lookup product")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Contains(t, err.Error(), "lookup product")
}
