package tankerkoenig

import "fmt"

// ValidationError is returned when a request parameter violates one of its
// documented constraints. It never reaches the network and is always
// recoverable by correcting the input.
type ValidationError struct {
	// Field is the human-readable label of the offending parameter.
	Field   string
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

// TransportError is returned when the underlying HTTP call could not
// complete or returned an error status.
type TransportError struct {
	// URL is the full URL of the attempted call.
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// MappingError is returned when a response body could not be interpreted
// as the expected result shape.
type MappingError struct {
	Err error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("decoding response: %v", e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// RequestError wraps every failure surfaced by Execute. The original cause
// (ValidationError, TransportError or MappingError) is preserved and can be
// inspected with errors.As.
type RequestError struct {
	// Endpoint is the API endpoint of the failed request.
	Endpoint string
	Err      error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("executing %s: %v", e.Endpoint, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
