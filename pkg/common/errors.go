package common

import "net/http"

// AppError is an error carrying an HTTP status and optional structured
// detail (field-level validation errors, conflicting booking IDs).
type AppError struct {
	Status    int               `json:"-"`
	Message   string            `json:"error"`
	Fields    map[string]string `json:"fields,omitempty"`
	Conflicts []string          `json:"conflicts,omitempty"`
	Err       error             `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewBadRequestError creates a 400 error
func NewBadRequestError(message string, err error) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Err: err}
}

// NewValidationError creates a 400 error with field-level details
func NewValidationError(fields map[string]string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: "Validation failed", Fields: fields}
}

// NewNotFoundError creates a 404 error
func NewNotFoundError(message string, err error) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message, Err: err}
}

// NewConflictError creates a 409 error
func NewConflictError(message string, conflicts ...string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message, Conflicts: conflicts}
}

// NewInternalServerError creates a 500 error
func NewInternalServerError(message string) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message}
}
