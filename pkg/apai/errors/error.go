package errors

import (
	"errors"
	"fmt"
)

// ErrorType categorizes an error encountered while loading, composing, or
// validating a specification.
type ErrorType string

const (
	ErrorTypeNotFound            ErrorType = "not_found"            // path unreadable
	ErrorTypeParse               ErrorType = "parse"                // malformed YAML/JSON
	ErrorTypeUnsupportedFormat   ErrorType = "unsupported_format"   // unrecognized file extension
	ErrorTypeStructural          ErrorType = "structural"           // field has the wrong shape
	ErrorTypeCycle               ErrorType = "cycle"                // inheritance cycle
	ErrorTypeUnresolvedReference ErrorType = "unresolved_reference" // cross-reference target missing
	ErrorTypeDuplicateID         ErrorType = "duplicate_id"         // two entities share an id
	ErrorTypeIO                  ErrorType = "io"                   // other file I/O failure
)

// Error is a typed error with the path of the document it concerns.
type Error struct {
	Type    ErrorType
	Path    string // document path, empty when not applicable
	Message string
	Err     error // underlying cause, optional
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Type, e.Path, e.Message)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNotFound creates a not-found error for path.
func NewNotFound(path string, err error) *Error {
	return &Error{Type: ErrorTypeNotFound, Path: path, Message: "file not found", Err: err}
}

// NewParse creates a parse error for path.
func NewParse(path string, err error) *Error {
	return &Error{Type: ErrorTypeParse, Path: path, Message: fmt.Sprintf("parsing failed: %v", err), Err: err}
}

// NewUnsupportedFormat creates an unsupported-format error for path.
func NewUnsupportedFormat(path, ext string) *Error {
	return &Error{Type: ErrorTypeUnsupportedFormat, Path: path, Message: fmt.Sprintf("unsupported file format: %s", ext)}
}

// NewStructural creates a structural error.
func NewStructural(path, message string) *Error {
	return &Error{Type: ErrorTypeStructural, Path: path, Message: message}
}

// IsType reports whether err is (or wraps) an *Error of the given type.
func IsType(err error, t ErrorType) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}
