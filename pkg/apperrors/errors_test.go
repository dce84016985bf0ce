package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	appErr := Wrap(cause, CodeDatabaseError, "request", "Storage failure", http.StatusInternalServerError)

	assert.True(t, errors.Is(appErr, cause))
	assert.Contains(t, appErr.Error(), "DATABASE_ERROR")
	assert.Contains(t, appErr.Error(), "connection refused")
}

func TestAppError_MarshalHidesInternals(t *testing.T) {
	cause := errors.New("secret internals")
	appErr := Wrap(cause, CodeInternalError, "system", "Internal server error", http.StatusInternalServerError)

	raw, err := json.Marshal(appErr)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "secret internals")
	assert.NotContains(t, string(raw), "500")
	assert.Contains(t, string(raw), "INTERNAL_ERROR")
}

func TestDomainErrors_HTTPCodes(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, ErrPollNotFound.HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrPollNotActive.HTTPCode)
	assert.Equal(t, http.StatusConflict, ErrAlreadyVoted.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrInsufficientPermissions.HTTPCode)
}

func TestValidationError_Details(t *testing.T) {
	details := map[string]string{"email": "this field is required"}
	appErr := ValidationError(details)

	assert.Equal(t, CodeValidationFailed, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
	assert.Equal(t, details, appErr.Details)
}
