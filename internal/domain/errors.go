package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid config")
	ErrValidation    = errors.New("validation error")
	ErrIndex         = errors.New("index out of range")
	ErrPersist       = errors.New("persist error")
	ErrCorrupt       = errors.New("corrupt data")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindNotFound      ErrorKind = "not_found"
	KindInvalidConfig ErrorKind = "invalid_config"
	KindValidation    ErrorKind = "validation"
	KindIndex         ErrorKind = "index"
	KindPersist       ErrorKind = "persist"
	KindCorrupt       ErrorKind = "corrupt"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError reports an invalid domain value.
// Reason is one of "duration<=0", "stops<0", "not a number", "not an integer".
type ValidationError struct {
	Field  string
	Reason string
	Input  string // raw user input, if the value came from parsing
}

func (e *ValidationError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Input, e.Reason)
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// IndexError reports a 1-based selection outside [1, Count].
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range [1, %d]", e.Index, e.Count)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	switch kind {
	case KindValidation:
		var ve *ValidationError
		return errors.As(err, &ve)
	case KindIndex:
		var ie *IndexError
		return errors.As(err, &ie)
	}
	return false
}

// IsPersistError reports whether err came from a failed save or an unreadable store.
func IsPersistError(err error) bool {
	return IsKind(err, KindPersist)
}
