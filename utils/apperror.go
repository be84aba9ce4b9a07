package utils

import (
	"errors"
	"net/http"
)

// Error codes for the booking core taxonomy.
const (
	CodeValidation       = "validation"
	CodeForbidden        = "forbidden"
	CodeNotFound         = "not_found"
	CodeConflict         = "conflict"
	CodeInvalidSignature = "invalid_signature"
)

// AppError is a typed service error carrying a taxonomy code.
type AppError struct {
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Code + ": " + e.Message
}

func NewValidationError(msg string) error {
	return &AppError{Code: CodeValidation, Message: msg}
}

func NewForbiddenError(msg string) error {
	return &AppError{Code: CodeForbidden, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &AppError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) error {
	return &AppError{Code: CodeConflict, Message: msg}
}

func NewInvalidSignatureError(msg string) error {
	return &AppError{Code: CodeInvalidSignature, Message: msg}
}

// HTTPStatus maps an error to its HTTP status. Unrecognized errors are
// treated as internal failures.
func HTTPStatus(err error) int {
	var ae *AppError
	if !errors.As(err, &ae) {
		return http.StatusInternalServerError
	}
	switch ae.Code {
	case CodeValidation, CodeInvalidSignature:
		return http.StatusBadRequest
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
