package safeunwrap

import (
	"errors"
)

// ErrViolated matches every ViolationError with errors.Is.
var ErrViolated = errors.New("checked assumption violated")

// violatedPrefix is prepended to the reason in debug builds.
const violatedPrefix = "[BUG] violated: "

// ViolationError is the panic value raised when an unwrap that was marked safe
// finds no payload.
type ViolationError struct {
	// Reason is the justification given at the call site.
	// It is always empty in release builds.
	Reason string

	parent error
}

func errViolation(reason string, parent error) error {
	return ViolationError{
		Reason: reason,
		parent: parent,
	}
}

// Error returns a string representation of the violation.
func (e ViolationError) Error() string {
	switch {
	case e.Reason == "" && e.parent == nil:
		return "unwrap of empty value"
	case e.Reason == "":
		return "unwrap of error value: " + e.parent.Error()
	case e.parent == nil:
		return violatedPrefix + e.Reason
	default:
		return violatedPrefix + e.Reason + ": " + e.parent.Error()
	}
}

// Unwrap returns the error held by the unwrapped value, if any.
func (e ViolationError) Unwrap() error {
	return e.parent
}

// Is reports whether target is ErrViolated.
func (e ViolationError) Is(target error) bool {
	return target == ErrViolated //nolint:errorlint,err113
}
