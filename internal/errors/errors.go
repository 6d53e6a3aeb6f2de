// Package errors provides structured error types for emailwriter.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalid
	KindNetwork
	KindServer
	KindResponse
	KindClipboard
	KindIO
	KindConfig
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNetwork:
		return "network error"
	case KindServer:
		return "server error"
	case KindResponse:
		return "malformed response"
	case KindClipboard:
		return "clipboard error"
	case KindIO:
		return "I/O error"
	case KindConfig:
		return "configuration error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for emailwriter.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Validation errors
func MissingInformation() error {
	return E(Op("reply.Validate"), KindInvalid, "original email and tone are required")
}

func UnknownTone(value string) error {
	return E(Op("tone.Parse"), KindInvalid, fmt.Sprintf("unknown tone %q", value))
}

// Reply service errors
func TransportFailed(url string, err error) error {
	return E(Op("reply.Generate"), KindNetwork, fmt.Sprintf("request to %s failed", url), err)
}

func RequestTimedOut(url string, err error) error {
	return E(Op("reply.Generate"), KindTimeout, fmt.Sprintf("request to %s timed out", url), err)
}

func UnexpectedStatus(code int) error {
	return E(Op("reply.Generate"), KindServer, fmt.Sprintf("HTTP error! status: %d", code))
}

func MalformedResponse(reason string) error {
	return E(Op("reply.Generate"), KindResponse, reason)
}

// Export errors
func ClipboardUnavailable(err error) error {
	return E(Op("clipboard.WriteText"), KindClipboard, "unable to write to clipboard", err)
}

func ExportFailed(path string, err error) error {
	return E(Op("reply.Download"), KindIO, fmt.Sprintf("failed to write %s", path), err)
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
