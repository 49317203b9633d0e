package transport

import (
	"fmt"

	"github.com/m-mizutani/goerr/v2"
)

var (
	// ErrNotConfigured is returned when no endpoint URL is set. No network
	// call is attempted.
	ErrNotConfigured = goerr.New("endpoint not configured")

	// ErrTransport matches every *TransportError with errors.Is
	ErrTransport = goerr.New("transport error")
)

// TransportError reports a rejected or failed direct post. StatusCode and
// Body are set for non-2xx responses; Cause is set for network faults.
type TransportError struct {
	StatusCode int
	Body       string
	Cause      error
}

func (e *TransportError) Error() string {
	if e.Cause != nil {
		return "transport fault: " + e.Cause.Error()
	}
	msg := fmt.Sprintf("HTTP %d", e.StatusCode)
	if e.Body != "" {
		msg += " - " + e.Body
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}
