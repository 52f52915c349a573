package apperror

import "net/http"

var ErrInternal = New(
	CodeInternalError,
	"Internal server error",
	http.StatusInternalServerError,
)

// RequiredField reports a missing request field.
func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, field+" is required", http.StatusBadRequest)
}

// InvalidField reports a request field that failed validation.
func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, field+" is invalid", http.StatusBadRequest)
}

// BusinessRule builds a 422 error for a domain rule the request broke.
func BusinessRule(message string) *AppError {
	return New(CodeBusinessRule, message, http.StatusUnprocessableEntity)
}

// StateConflict builds a 409 error for an operation the current state does not allow.
func StateConflict(message string) *AppError {
	return New(CodeInvalidState, message, http.StatusConflict)
}

// Forbidden builds a 403 error with a specific message.
func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// NotFound builds a 404 error with a specific message.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Invalid builds a 400 error with a specific message.
func Invalid(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

// Conflict builds a 409 error for uniqueness violations.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}
