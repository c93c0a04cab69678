package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel kinds matched by the typed errors below via [errors.Is].
var (
	// ErrRequestFailed is matched by *RequestFailedError: the API answered
	// with a status other than the expected one.
	ErrRequestFailed = errors.New("request failed")
	// ErrTransport is matched by *TransportError: no response was received.
	ErrTransport = errors.New("transport failure")
	// ErrDecode is matched by *DecodeError: the response body is not valid
	// JSON or does not fit the expected shape.
	ErrDecode = errors.New("malformed response body")
)

// RequestFailedError reports an unexpected HTTP status for path.
type RequestFailedError struct {
	Path   string
	Status int
	Body   string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("request to %s failed with status code %d", e.Path, e.Status)
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

// TransportError wraps a connection-level failure (refused, reset, timeout,
// cancelled context) for path.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError wraps a JSON decoding failure of the response for path.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s response: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// IsRetryable reports whether repeating the whole call later may succeed:
// transport failures (except caller cancellation) and 5xx responses are
// retryable, API rejections and malformed bodies are not.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, ErrTransport) {
		return true
	}

	var failed *RequestFailedError
	return errors.As(err, &failed) && failed.Status >= http.StatusInternalServerError
}
