package model

import (
	"errors"
	"fmt"
)

// Reasons a decode can fail. DecodeError wraps exactly one of these.
var (
	ErrInvalidBool      = errors.New("invalid boolean")
	ErrInvalidTriState  = errors.New("invalid tri-state value (want 1, -1 or 0)")
	ErrInvalidInt       = errors.New("invalid integer")
	ErrUnknownSort      = errors.New("unknown sort")
	ErrUnknownState     = errors.New("unknown state")
	ErrUnsupportedValue = errors.New("unsupported value type")
)

// DecodeError reports the first recognized field whose raw value failed to parse.
type DecodeError struct {
	Field Field
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v: %q", e.Field, e.Err, e.Value)
}

func (e *DecodeError) Unwrap() error { return e.Err }
