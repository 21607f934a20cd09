package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	domainerrors "referral-hub.backend/internal/domain/errors"
)

func TestAppError_Unwrap(t *testing.T) {
	appErr := domainerrors.NotFound("Referral link not found")
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.ErrorIs(t, appErr, domainerrors.ErrNotFound)
}

func TestAppError_ErrorMessage(t *testing.T) {
	withCause := domainerrors.NewAppError(http.StatusBadRequest, "bad", stderrors.New("cause"))
	assert.Equal(t, "cause", withCause.Error())

	withoutCause := domainerrors.NewAppError(http.StatusBadRequest, "bad", nil)
	assert.Equal(t, "bad", withoutCause.Error())
}

func TestConstructors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, domainerrors.BadRequest("x").Code)
	assert.ErrorIs(t, domainerrors.BadRequest("x"), domainerrors.ErrInvalidInput)

	assert.Equal(t, http.StatusUnauthorized, domainerrors.Unauthorized("x").Code)
	assert.ErrorIs(t, domainerrors.Unauthorized("x"), domainerrors.ErrUnauthorized)

	internal := domainerrors.InternalError(stderrors.New("db down"))
	assert.Equal(t, http.StatusInternalServerError, internal.Code)
}

func TestNewError_WrapsSentinel(t *testing.T) {
	err := domainerrors.NewError("completion service failed", domainerrors.ErrExternalService)
	assert.ErrorIs(t, err, domainerrors.ErrExternalService)

	var appErr *domainerrors.AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "completion service failed", appErr.Message)
}
