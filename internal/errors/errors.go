package errors

import "net/http"

// Error is the structured error for business-rule failures. Services raise
// one of BadRequest, NotFound or Conflict; the HTTP layer translates Status
// into the transport status code and Message into the response body.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// BadRequest reports malformed, missing or out-of-range input.
func BadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: "BAD_REQUEST", Message: message}
}

// NotFound reports a referenced identifier or username that does not exist.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: "NOT_FOUND", Message: message}
}

// Conflict reports a uniqueness violation on email, phone or username.
func Conflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Code: "CONFLICT", Message: message}
}

// ErrorResponse represents a standardized error response body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// FromError maps any error to a structured Error. Errors outside the
// taxonomy surface as a generic internal error without leaking detail.
func FromError(err error) *Error {
	if typed, ok := err.(*Error); ok {
		return typed
	}
	return &Error{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: "internal server error",
	}
}

// ToErrorResponse converts an Error to its response body.
func (e *Error) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Error: e.Message, Code: e.Code}
}
