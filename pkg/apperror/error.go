package apperror

import (
	"net/http"
	"strings"
)

type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
	// Details carries field-level messages (validation failures)
	Details []string `json:"details,omitempty"`
	// EntityName and ErrorKey feed the X-<app>-error / X-<app>-params alert headers
	EntityName string `json:"-"`
	ErrorKey   string `json:"-"`
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// IsAlert reports whether the error should be surfaced with alert headers
func (e *AppError) IsAlert() bool {
	return e.ErrorKey != ""
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// BadRequestAlert is a 400 tagged with the entity kind and a machine-readable reason,
// e.g. BadRequestAlert("A new skill cannot already have an ID", "skill", "idexists").
func BadRequestAlert(message, entityName, errorKey string) *AppError {
	e := New(http.StatusBadRequest, message, nil)
	e.EntityName = entityName
	e.ErrorKey = errorKey
	return e
}

// Validation wraps formatted validator messages into a single 400
func Validation(messages []string) *AppError {
	e := New(http.StatusBadRequest, "Validation failed: "+strings.Join(messages, "; "), nil)
	e.Details = messages
	return e
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

// Internal hides err from the client behind a generic message
func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", err)
}
