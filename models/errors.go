package models

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal failure. Every kind aborts the run.
type Kind string

const (
	KindUnknown            Kind = "unknown"
	KindInputNotFound      Kind = "input_not_found"
	KindMalformedDocument  Kind = "malformed_document"
	KindOutputWriteFailure Kind = "output_write_failure"
	KindInvalidConfig      Kind = "invalid_config"
)

// Error carries the failure kind alongside the operation and path that
// produced it.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

// NewError wraps err with a kind. Path may be empty.
func NewError(kind Kind, op, path string, err error) *Error {
	return &Error{Kind: kind, Op: op, Path: path, Err: err}
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the kind of the outermost *Error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps a failure kind to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInvalidConfig:
		return 2
	case KindInputNotFound:
		return 3
	case KindMalformedDocument:
		return 4
	case KindOutputWriteFailure:
		return 5
	default:
		return 1
	}
}

// ErrorInfo is the serialisable form of an Error used in run manifests.
type ErrorInfo struct {
	Type    string `yaml:"error_type"`
	Message string `yaml:"message"`
	Path    string `yaml:"path,omitempty"`
}

// NewErrorInfo converts err for reporting. Returns nil for a nil error.
func NewErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}
	info := &ErrorInfo{Type: string(KindOf(err)), Message: err.Error()}
	var e *Error
	if errors.As(err, &e) {
		info.Path = e.Path
	}
	return info
}
