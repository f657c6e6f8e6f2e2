package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with HTTP status and error code
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches on Code so that copies made by the With* helpers still match
// the canonical values below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// StatusClientClosedRequest is the non-standard status used when the client
// went away before the request finished.
const StatusClientClosedRequest = 499

// Common error definitions. Messages are shown to visitors, so they are in Spanish.
var (
	ErrNotFound   = New(http.StatusNotFound, "not_found", "Recurso no encontrado")
	ErrBadRequest = New(http.StatusBadRequest, "bad_request", "Solicitud inválida")
	ErrValidation = New(http.StatusUnprocessableEntity, "validation_error", "Revisa los datos del formulario")

	// Lead form
	ErrRequiredField    = New(http.StatusUnprocessableEntity, "required_field", "Completa los campos obligatorios")
	ErrInvalidEmail     = New(http.StatusUnprocessableEntity, "invalid_email", "Ingresa un email corporativo válido")
	ErrUnknownField     = New(http.StatusBadRequest, "unknown_field", "Campo desconocido")
	ErrAlreadySubmitted = New(http.StatusConflict, "already_submitted", "Ya recibimos tu solicitud, espera un momento")
	ErrRateLimited      = New(http.StatusTooManyRequests, "rate_limited", "Demasiadas solicitudes, intenta de nuevo en un minuto")
	ErrDeliveryTimeout  = New(http.StatusGatewayTimeout, "delivery_timeout", "No pudimos enviar tu solicitud a tiempo, intenta de nuevo")
	ErrDeliveryRejected = New(http.StatusBadGateway, "delivery_rejected", "No pudimos registrar tu solicitud, intenta de nuevo")
	ErrSubmitCanceled   = New(StatusClientClosedRequest, "submit_canceled", "La solicitud fue cancelada antes de enviarse")

	// Server errors
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "Ocurrió un error interno")
)

// ToHTTPError converts an app error to an HTTP-friendly format
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		errBody := map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Details) > 0 {
			errBody["details"] = appErr.Details
		}
		return appErr.HTTPStatus, map[string]any{
			"error": errBody,
		}
	}

	return http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    ErrInternal.Code,
			"message": ErrInternal.Message,
		},
	}
}

// NewBadRequest creates a bad request error with a custom message
func NewBadRequest(message string) *Error {
	return ErrBadRequest.WithMessage(message)
}

// NewInternal creates an internal error with a message and optional wrapped error
func NewInternal(message string, err error) *Error {
	return ErrInternal.WithMessage(message).WithInternal(err)
}
