package client

import (
	"errors"
	"fmt"
)

// ErrUnsuccessful is returned when the envelope reports success=false or has no data.
var ErrUnsuccessful = errors.New("reporting api returned an unsuccessful response")

// TransportError covers network, HTTP and application failures of a report request.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	msg := fmt.Sprintf("request to %s failed", e.Endpoint)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
