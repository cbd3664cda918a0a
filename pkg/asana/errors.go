package asana

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorDetail is a single error entry from an Asana error response body.
type ErrorDetail struct {
	Message string `json:"message"`
	Help    string `json:"help,omitempty"`
	Phrase  string `json:"phrase,omitempty"`
}

// Error is an API-level failure: the server responded, but with a non-2xx
// status. Transport failures (connection refused, timeouts) are returned as
// the underlying error instead.
type Error struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// RequestID correlates the failure with dispatcher debug logs.
	RequestID string

	// Errors holds the parsed error entries from the response body, if the
	// body followed the documented {"errors": [...]} shape.
	Errors []ErrorDetail

	// Body is the raw response body, kept for responses that don't parse.
	Body string
}

func (e *Error) Error() string {
	if len(e.Errors) > 0 {
		msgs := make([]string, len(e.Errors))
		for i, d := range e.Errors {
			msgs[i] = d.Message
		}
		return fmt.Sprintf("asana: API error (status %d): %s", e.StatusCode, strings.Join(msgs, "; "))
	}
	return fmt.Sprintf("asana: API returned status %d: %s", e.StatusCode, e.Body)
}

// Recoverable reports whether retrying the request may succeed. Rate limits
// and server-side errors are recoverable; client errors are not.
func (e *Error) Recoverable() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// newAPIError parses an error response body into an *Error. The body is
// parsed best-effort; unparseable bodies are carried verbatim.
func newAPIError(statusCode int, requestID string, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		RequestID:  requestID,
		Body:       string(body),
	}

	var parsed struct {
		Errors []ErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		apiErr.Errors = parsed.Errors
	}

	return apiErr
}

// IsNotFound reports whether err is an API error with status 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsRateLimited reports whether err is an API error with status 429.
func IsRateLimited(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
