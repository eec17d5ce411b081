// Package apierror replaces huma's default problem+json errors with the
// {"error": "..."} body every endpoint of this service returns.
package apierror

import (
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"
)

// InternalErrorMessage is the only message a client sees for 5xx responses.
const InternalErrorMessage = "internal server error"

// ErrorBody is the JSON error response.
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

// NewError builds the error body. Causes are appended to client errors so
// huma's own validation failures stay readable; server errors never expose them.
func NewError(status int, msg string, errs ...error) huma.StatusError {
	if status >= http.StatusInternalServerError {
		return &ErrorBody{status: status, Message: InternalErrorMessage}
	}

	details := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			details = append(details, err.Error())
		}
	}
	if len(details) > 0 && msg != "" {
		msg = msg + ": " + strings.Join(details, "; ")
	}

	return &ErrorBody{status: status, Message: msg}
}

// Install makes huma.NewError produce ErrorBody values. It must run before
// operations are registered.
func Install() {
	huma.NewError = NewError
}
