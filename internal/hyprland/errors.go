package hyprland

import (
	"errors"
	"fmt"
)

var (
	// ErrNotRunning is returned when no instance signature is available.
	ErrNotRunning = errors.New("hyprland is not running")

	// ErrSocketNotFound is returned by the legacy layout when the socket file is absent.
	ErrSocketNotFound = errors.New("hyprland socket not found")

	// ErrNullResponse is wrapped in a ParseError when a query returns null.
	ErrNullResponse = errors.New("null response")

	// ErrInvalidUTF8 is wrapped in a ParseError when a response is not UTF-8.
	ErrInvalidUTF8 = errors.New("response is not valid UTF-8")

	// ErrInvalidOption is returned by Keyword for an empty option or one
	// containing whitespace. Nothing is sent.
	ErrInvalidOption = errors.New("invalid keyword option")
)

// Transport operations.
const (
	OpConnect = "connect"
	OpWrite   = "write"
	OpRead    = "read"
)

// TransportError wraps an I/O failure on the control socket.
type TransportError struct {
	Op   string // OpConnect, OpWrite or OpRead
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("hyprland socket %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError is returned when a JSON query response cannot be decoded.
type ParseError struct {
	Query string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s response: %v", e.Query, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError reports a record without one of its identifying fields.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %q", e.Field)
}
