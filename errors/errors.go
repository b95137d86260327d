package errors

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific error code.
type ErrorCode string

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Details string    `json:"details,omitempty"`

	cause error
}

// Error implements the error interface for ErrorResponse.
func (e *ErrorResponse) Error() string {
	errorJSON, _ := json.Marshal(e)
	return string(errorJSON)
}

// Unwrap returns the error that caused this response, if any.
func (e *ErrorResponse) Unwrap() error {
	return e.cause
}

// Is reports whether target is an ErrorResponse carrying the same code.
func (e *ErrorResponse) Is(target error) bool {
	t, ok := target.(*ErrorResponse)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithDetails returns a copy of e whose details are formatted with args,
// using e.Details as the format string.
func (e *ErrorResponse) WithDetails(args ...interface{}) *ErrorResponse {
	return &ErrorResponse{
		Code:    e.Code,
		Details: fmt.Sprintf(e.Details, args...),
		cause:   e.cause,
	}
}

// Wrap returns a copy of e that records cause. The cause message is appended
// to the details so it survives JSON serialization.
func (e *ErrorResponse) Wrap(cause error) *ErrorResponse {
	details := e.Details
	if cause != nil {
		if details != "" {
			details += ": "
		}
		details += cause.Error()
	}
	return &ErrorResponse{
		Code:    e.Code,
		Details: details,
		cause:   cause,
	}
}

// CreateErrorResponseFromError creates an ErrorResponse from a generic error.
func CreateErrorResponseFromError(err error) error {
	if err == nil {
		return nil
	}
	if errResp, ok := err.(*ErrorResponse); ok {
		return errResp
	}
	return &ErrorResponse{
		Code:    "0",
		Details: err.Error(),
		cause:   err,
	}
}
