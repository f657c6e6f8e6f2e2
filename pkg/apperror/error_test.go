package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorError(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "without internal error",
			err:      ErrRequiredField,
			expected: "required_field: Completa los campos obligatorios",
		},
		{
			name:     "with internal error",
			err:      ErrDeliveryRejected.WithInternal(errors.New("webhook returned 500")),
			expected: "delivery_rejected: No pudimos registrar tu solicitud, intenta de nuevo (webhook returned 500)",
		},
		{
			name:     "empty message",
			err:      New(http.StatusBadRequest, "bad_request", ""),
			expected: "bad_request: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", ErrInvalidEmail.WithDetails(map[string]any{"field": "email"}))

	assert.True(t, errors.Is(wrapped, ErrInvalidEmail))
	assert.False(t, errors.Is(wrapped, ErrRequiredField))
	assert.False(t, errors.Is(errors.New("plain"), ErrInvalidEmail))
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("context deadline exceeded")
	err := ErrDeliveryTimeout.WithInternal(cause)

	assert.Same(t, cause, err.Unwrap())
	assert.Nil(t, ErrDeliveryTimeout.Unwrap())
}

func TestWithHelpersDoNotMutateReceiver(t *testing.T) {
	custom := ErrRequiredField.WithMessage("El nombre es obligatorio").WithDetails(map[string]any{"field": "name"})

	assert.Equal(t, "Completa los campos obligatorios", ErrRequiredField.Message)
	assert.Nil(t, ErrRequiredField.Details)
	assert.Equal(t, "El nombre es obligatorio", custom.Message)
	assert.Equal(t, "name", custom.Details["field"])
	assert.Equal(t, http.StatusUnprocessableEntity, custom.HTTPStatus)
}

func TestToHTTPError(t *testing.T) {
	t.Run("app error with details", func(t *testing.T) {
		status, body := ToHTTPError(ErrRequiredField.WithDetails(map[string]any{"field": "company"}))
		assert.Equal(t, http.StatusUnprocessableEntity, status)

		errBody := body["error"].(map[string]any)
		assert.Equal(t, "required_field", errBody["code"])
		assert.Equal(t, map[string]any{"field": "company"}, errBody["details"])
	})

	t.Run("wrapped app error", func(t *testing.T) {
		status, _ := ToHTTPError(fmt.Errorf("lead: %w", ErrRateLimited))
		assert.Equal(t, http.StatusTooManyRequests, status)
	})

	t.Run("unknown error", func(t *testing.T) {
		status, body := ToHTTPError(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, status)
		assert.Equal(t, "internal_error", body["error"].(map[string]any)["code"])
	})
}
