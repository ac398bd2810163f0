// Package errors provides the local validation error used by the client SDK.
// Remote failures are never wrapped here; they reach the caller as the
// transport reported them.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is the sentinel matched by every ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a value rejected before any request was sent.
type ArgumentError struct {
	Name    string   // argument name, e.g. "status" or "method"
	Value   string   // the rejected value
	Allowed []string // accepted values, empty when the set is open
	Hint    string   // optional replacement suggestion
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "invalid %s: %s", e.Name, e.Value)
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, " (expected %s to be one of %s)", e.Name, strings.Join(e.Allowed, ","))
	}
	if e.Hint != "" {
		fmt.Fprintf(&b, "; %s", e.Hint)
	}
	return b.String()
}

// Is lets errors.Is(err, ErrInvalidArgument) match any ArgumentError.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// NewArgumentError is a convenience constructor for the API layer.
func NewArgumentError(name, value string, allowed ...string) *ArgumentError {
	return &ArgumentError{Name: name, Value: value, Allowed: allowed}
}

// IsInvalidArgument reports whether err was raised by local validation.
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}
