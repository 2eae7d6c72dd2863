package api

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never completed
// (connection refused, DNS, timeout). Callers match it with errors.Is and
// offer the user a manual retry; there is no automatic one.
var ErrUnavailable = errors.New("server unavailable")

// ProtocolError reports a response body that was not valid JSON. It is
// treated as a backend malfunction; Raw keeps the original text for
// diagnostics.
type ProtocolError struct {
	Raw string
	Err error
}

func (e *ProtocolError) Error() string {
	return "server returned invalid JSON"
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// APIError reports a well-formed JSON response that signalled failure,
// either via a non-2xx HTTP status or via success=false in the envelope.
// Status is zero for the latter. Message is the server-supplied text when
// present.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("HTTP error, status=%d", e.Status)
}

// IsUnauthorized reports whether err is an APIError of the 401 family,
// meaning the backend session is gone and the local one must be torn down.
func IsUnauthorized(err error) bool {
	var ae *APIError
	if !errors.As(err, &ae) {
		return false
	}
	return ae.Status == http.StatusUnauthorized || ae.Status == http.StatusForbidden
}
