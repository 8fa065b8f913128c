package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseCodeError(t *testing.T) {
	cause := errors.New("disk full")
	err := fmt.Errorf("save order: %w", NewWithCode(cause, "Unable to save order", http.StatusInsufficientStorage))

	var codeErr ResponseCodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, "Unable to save order", codeErr.Msg())
	assert.Equal(t, http.StatusInsufficientStorage, codeErr.Code())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 500, New(cause, "boom").(ResponseCodeError).Code())
}

func TestNewMissingFields(t *testing.T) {
	err := NewMissingFields("uid", "server")

	var codeErr ResponseCodeError
	assert.True(t, errors.As(err, &codeErr))
	assert.Equal(t, http.StatusBadRequest, codeErr.Code())
	assert.Equal(t, "Missing: uid, server", codeErr.Msg())
	assert.Equal(t, []string{"uid", "server"}, codeErr.Fields())
	assert.Equal(t, "Missing: uid, server", err.Error())
}

func TestResponseCodeError_NilCause(t *testing.T) {
	err := NewWithCode(nil, "Forbidden", http.StatusForbidden)
	assert.Equal(t, "Forbidden", err.Error())
}
