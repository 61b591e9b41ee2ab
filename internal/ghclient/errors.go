package ghclient

import "fmt"

// TransportError means no response was received from the API.
type TransportError struct {
	Username string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("fetching repositories for %s: %v", e.Username, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError means the API answered with a non-2xx status.
type StatusError struct {
	Username   string
	StatusCode int
	Err        error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetching repositories for %s: unexpected status %d", e.Username, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// DecodeError means the API answered 2xx with a body that is not a repository list.
type DecodeError struct {
	Username string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding repositories for %s: %v", e.Username, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
