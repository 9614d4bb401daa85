package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries an HTTP status and a user-facing message. Err is the
// underlying cause; it is logged but never sent to the client.
type AppError struct {
	Code    int
	Message string
	Err     error
	Context map[string]interface{}
}

// NewAppError creates a new AppError
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Context: make(map[string]interface{}),
	}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	e.Context[key] = value
	return e
}

// PublicMessage returns the text that is safe to show to a user for err
func PublicMessage(err error) (int, string) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, appErr.Message
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}
	return fiber.StatusInternalServerError, "Internal server error"
}

func BadRequestError(message string, err error) *AppError {
	return NewAppError(fiber.StatusBadRequest, message, err)
}

func NotFoundError(message string, err error) *AppError {
	return NewAppError(fiber.StatusNotFound, message, err)
}

func InternalServerError(message string, err error) *AppError {
	return NewAppError(fiber.StatusInternalServerError, message, err)
}
