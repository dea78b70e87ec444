package errs

import (
	"errors"
	"net/http"
)

// ErrUpstream marks failures of outbound calls. Wrap it alongside the cause:
//
//	fmt.Errorf("%w: %w", errs.ErrUpstream, err)
var ErrUpstream = errors.New("upstream request failed")

func statusCode(status int) string {
	return MakeUpperCaseWithUnderscores(http.StatusText(status))
}

// NewBadRequestError creates a 400 HTTPError.
//
// A nil code defaults to "BAD_REQUEST". errors carries per-field failures.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	formattedCode := statusCode(http.StatusBadRequest)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusBadRequest,
		Override: override,
		Errors:   errors,
		Action:   action,
	}
}

// NewNotFoundError creates a 404 HTTPError. A nil code defaults to "NOT_FOUND".
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	formattedCode := statusCode(http.StatusNotFound)
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   http.StatusNotFound,
		Override: override,
	}
}

// NewMethodNotAllowedError creates a 405 HTTPError.
func NewMethodNotAllowedError(message string) *HTTPError {
	return &HTTPError{
		Code:    statusCode(http.StatusMethodNotAllowed),
		Message: message,
		Status:  http.StatusMethodNotAllowed,
	}
}

// NewInternalServerError creates a generic 500 HTTPError.
//
// The message is always the status text; the real cause only goes to the logs.
func NewInternalServerError() *HTTPError {
	return &HTTPError{
		Code:     statusCode(http.StatusInternalServerError),
		Message:  http.StatusText(http.StatusInternalServerError),
		Status:   http.StatusInternalServerError,
		Override: false,
	}
}

// NewUpstreamError creates the 500 returned when an outbound call fails.
//
// It keeps the generic message but carries a distinct code and a retry hint.
func NewUpstreamError() *HTTPError {
	return &HTTPError{
		Code:    "UPSTREAM_ERROR",
		Message: http.StatusText(http.StatusInternalServerError),
		Status:  http.StatusInternalServerError,
		Action: &Action{
			Type:    ActionTypeRetry,
			Message: "The upstream service could not be reached",
		},
	}
}

// ValidationError converts a plain validation error into a 400 HTTPError.
func ValidationError(err error) *HTTPError {
	return NewBadRequestError("Validation failed: "+err.Error(), false, nil, nil, nil)
}
