package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", MakeUpperCaseWithUnderscores("Bad Request"))
	assert.Equal(t, "NOT_FOUND", MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)))
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	code := "CUSTOMER_INVALID"
	fields := []FieldError{{Field: "age", Error: "must be a valid integer"}}

	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("bad", false, nil, nil, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{"bad request custom code", NewBadRequestError("bad", true, &code, fields, nil), http.StatusBadRequest, code},
		{"not found", NewNotFoundError("Customer not found", true, nil), http.StatusNotFound, "NOT_FOUND"},
		{"method not allowed", NewMethodNotAllowedError("nope"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{"internal", NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
		{"upstream", NewUpstreamError(), http.StatusInternalServerError, "UPSTREAM_ERROR"},
		{"validation", ValidationError(errors.New("age")), http.StatusBadRequest, "BAD_REQUEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.Equal(t, tt.wantCode, tt.err.Code)
		})
	}
}

func TestInternalServerErrorHidesCause(t *testing.T) {
	err := NewInternalServerError()
	assert.Equal(t, "Internal Server Error", err.Message)
	assert.False(t, err.Override)
}

func TestHTTPError_IsAndWithMessage(t *testing.T) {
	base := NewNotFoundError("Resource not found", false, nil)
	wrapped := fmt.Errorf("lookup: %w", base)

	assert.True(t, errors.Is(wrapped, &HTTPError{}))
	assert.False(t, errors.Is(errors.New("plain"), &HTTPError{}))

	custom := base.WithMessage("Customer not found")
	assert.Equal(t, "Customer not found", custom.Error())
	assert.Equal(t, "Resource not found", base.Message)
	assert.Equal(t, base.Status, custom.Status)
}

func TestErrUpstreamWrapping(t *testing.T) {
	err := fmt.Errorf("%w: GET x: %w", ErrUpstream, errors.New("dial tcp: refused"))
	assert.ErrorIs(t, err, ErrUpstream)
}
