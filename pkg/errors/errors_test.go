package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFound(t *testing.T) {
	err := NotFound("cart item", "p1")

	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.Contains(t, err.Message, "cart item")
	assert.Contains(t, err.Message, "p1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("price must not be negative")

	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUnauthorized(t *testing.T) {
	err := Unauthorized("authentication required")

	assert.Equal(t, http.StatusUnauthorized, err.Status)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUnavailable(t *testing.T) {
	err := Unavailable("catalog unreachable")

	assert.Equal(t, http.StatusServiceUnavailable, err.Status)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestInternal(t *testing.T) {
	cause := errors.New("boom")
	err := Internal(cause)

	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.ErrorIs(t, err, cause)
}

func TestAppError_Error(t *testing.T) {
	err := InvalidInput("bad value")
	assert.Equal(t, "INVALID_INPUT: bad value: invalid input", err.Error())

	bare := &AppError{Code: "X", Message: "y"}
	assert.Equal(t, "X: y", bare.Error())
}

func TestWrap(t *testing.T) {
	inner := NotFound("product", "p1")
	wrapped := Wrap(inner, "loading wishlist entry")

	require.Error(t, wrapped)
	assert.Contains(t, wrapped.Error(), "loading wishlist entry")
	assert.ErrorIs(t, wrapped, ErrNotFound)

	var appErr *AppError
	assert.True(t, errors.As(wrapped, &appErr))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", NotFound("x", "1"), http.StatusNotFound},
		{"wrapped app error", Wrap(InvalidInput("bad"), "ctx"), http.StatusBadRequest},
		{"sentinel not found", ErrNotFound, http.StatusNotFound},
		{"sentinel invalid", ErrInvalidInput, http.StatusBadRequest},
		{"sentinel unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"sentinel unavailable", ErrUnavailable, http.StatusServiceUnavailable},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
