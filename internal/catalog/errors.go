package catalog

import "fmt"

// TransportError means no response arrived: the request could not be sent,
// the connection failed, or the context ended first.
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError means the service answered with a non-2xx status.
type StatusError struct {
	Path string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog %s returned status %d", e.Path, e.Code)
}

// ParseError means the body was not the expected shape.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
