package safeunwrap

import (
	"github.com/tarantool/go-option"
)

// Unwrap returns the payload of v.
// If v is empty, Unwrap panics with a ViolationError. In debug builds the
// panic message is "[BUG] violated: " followed by reason.
//
// reason should be a constant explaining why v can never be empty.
func (v Value[T]) Unwrap(reason string) T {
	if !v.some {
		panic(violated(reason, v.err))
	}

	return v.value
}

// Unwrap is the free-standing form of [Value.Unwrap], reason first:
//
//	id := safeunwrap.Unwrap("ids are preallocated", lookup(key))
func Unwrap[T any](reason string, v Value[T]) T {
	return v.Unwrap(reason)
}

// Option unwraps an optional value the same way [Value.Unwrap] does.
func Option[T any](reason string, o option.Generic[T]) T {
	return FromOption(o).Unwrap(reason)
}

// NoError panics with a ViolationError wrapping err if err is not nil.
// It is meant for calls that return only an error.
func NoError(reason string, err error) {
	if err != nil {
		panic(violated(reason, err))
	}
}
