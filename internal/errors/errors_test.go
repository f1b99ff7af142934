package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
		code string
	}{
		{ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{NotFound("user"), http.StatusNotFound, "NOT_FOUND"},
		{ErrInvalidInput, http.StatusBadRequest, "INVALID_INPUT"},
		{fmt.Errorf("create user: %w", ErrDuplicateEntry), http.StatusBadRequest, "DUPLICATE_ENTRY"},
		{fmt.Errorf("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, StatusCode(tc.err), tc.err.Error())
		assert.Equal(t, tc.code, ErrorCode(tc.err), tc.err.Error())
	}
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "user not found", PublicMessage(Wrap(NotFound("user"), "get user"), "failed"))
	assert.Equal(t, "Failed to get users", PublicMessage(fmt.Errorf("pq: connection refused"), "Failed to get users"))
	assert.Equal(t, "title is required", PublicMessage(Invalid("title is required"), "failed"))
}

func TestInvalid(t *testing.T) {
	err := Invalid("page must be a number")
	assert.Equal(t, http.StatusBadRequest, err.StatusCode)
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.True(t, Is(err, ErrInvalidInput))
}

func TestAppErrorUnwrap(t *testing.T) {
	err := Wrap(New(ErrNotFound, "conversation not found"), "append message")
	assert.True(t, Is(err, ErrNotFound))

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.StatusCode)
}
