package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentityFields(t *testing.T) {
	err := ErrRequestNotVerified.WithDetails("signature invalid")

	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
	assert.Equal(t, "REQUEST_NOT_VERIFIED", err.ErrorCode())
	assert.Equal(t, "signature invalid", err.Details())
	assert.Equal(t, "request could not be verified as coming from Alexa: signature invalid", err.Error())
	assert.Empty(t, ErrRequestNotVerified.Details())
}

func TestBaseError_WrapMessageIsFoundByAs(t *testing.T) {
	wrapped := ErrInvalidEnvelope.WrapMessage("bind")

	var appErr AppError
	require.True(t, pkgerrors.As(wrapped, &appErr))
	assert.Equal(t, "INVALID_ENVELOPE", appErr.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}
