package nsgifts

import (
	"errors"
	"fmt"
)

// ErrorKind classifies an [*APIError] into the failure categories surfaced
// by the client.
type ErrorKind string

const (
	KindAuthentication ErrorKind = "authentication"
	KindConnection     ErrorKind = "connection"
	KindTimeout        ErrorKind = "timeout"
	KindServer         ErrorKind = "server"
	KindClient         ErrorKind = "client"
)

// APIError is the error type returned by all client operations. StatusCode
// is zero when the failure happened before an HTTP response was received
// (connection errors, timeouts, local validation).
type APIError struct {
	Kind       ErrorKind
	StatusCode int
	Message    string
	err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.err
}

// HasKind reports whether err is an [*APIError] of the given kind.
func HasKind(err error, kind ErrorKind) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

var serverStatusMessages = map[int]string{
	500: "Internal Server Error - Unexpected server condition",
	502: "Bad Gateway - Invalid response from upstream server",
	503: "Service Unavailable - Server temporarily unavailable",
	504: "Gateway Timeout - Upstream server timeout",
	507: "Insufficient Storage - Server storage limit reached",
}

var clientStatusMessages = map[int]string{
	400: "Bad Request - Invalid parameters",
	401: "Unauthorized - Authentication required",
	403: "Forbidden - Insufficient permissions",
	404: "Not Found - Resource does not exist",
	409: "Conflict - Request conflicts with current state",
	422: "Unprocessable Entity - Invalid request format",
	429: "Too Many Requests - Rate limit exceeded",
}

// FromHTTPStatus builds an [*APIError] for an HTTP error status. 401 and
// 403 map to [KindAuthentication], other 4xx to [KindClient], 5xx to
// [KindServer]. When message is empty a descriptive default for the status
// code is used.
func FromHTTPStatus(statusCode int, message string) *APIError {
	kind := KindClient
	fallbacks := clientStatusMessages

	switch {
	case statusCode == 401 || statusCode == 403:
		kind = KindAuthentication
	case statusCode >= 500:
		kind = KindServer
		fallbacks = serverStatusMessages
	}

	if message == "" {
		if m, ok := fallbacks[statusCode]; ok {
			message = m
		} else {
			message = fmt.Sprintf("%s error %d", kind, statusCode)
		}
	}

	return &APIError{Kind: kind, StatusCode: statusCode, Message: message}
}

func authError(message string, cause error) *APIError {
	return &APIError{Kind: KindAuthentication, Message: message, err: cause}
}

func validationError(cause error) *APIError {
	return &APIError{Kind: KindClient, Message: fmt.Sprintf("invalid request: %v", cause), err: cause}
}
