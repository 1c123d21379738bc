package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorFields(t *testing.T) {
	err := NewAppError(CodeInvalidInput, "bad", ErrInvalidInput)
	assert.Equal(t, CodeInvalidInput, err.Code)
	assert.Equal(t, "bad", err.Message)
	assert.ErrorIs(t, err, ErrInvalidInput)

	notFound := NotFound("missing")
	assert.Equal(t, CodeNotFound, notFound.Code)
	assert.ErrorIs(t, notFound, ErrNotFound)

	conflict := Conflict("dup")
	assert.Equal(t, CodeConflict, conflict.Code)
	assert.ErrorIs(t, conflict, ErrAlreadyExists)

	creds := InvalidCredentials("nope")
	assert.Equal(t, CodeInvalidCredentials, creds.Code)
	assert.ErrorIs(t, creds, ErrInvalidCredentials)

	missing := MissingParam("sphereId required")
	assert.Equal(t, CodeMissingParam, missing.Code)
	assert.ErrorIs(t, missing, ErrMissingParam)

	internal := InternalError(errors.New("boom"))
	assert.Equal(t, CodeInternalError, internal.Code)
	assert.Equal(t, "boom", internal.Error())
}

func TestAppErrorMessageFallback(t *testing.T) {
	err := &AppError{Code: CodeInternalError, Message: "only message"}
	assert.Equal(t, "only message", err.Error())
}

func TestNewErrorWraps(t *testing.T) {
	err := NewError("wallet already linked", ErrAlreadyExists)
	assert.ErrorIs(t, err, ErrAlreadyExists)

	var appErr *AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "wallet already linked", appErr.Message)
}
