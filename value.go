package safeunwrap

import (
	"github.com/tarantool/go-option"
)

// Value is a checked value: it either holds a payload or it does not.
// An empty Value may additionally carry the error that caused it to be empty.
//
// The zero Value is empty.
type Value[T any] struct {
	value T
	err   error
	some  bool
}

// Some returns a Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{
		value: v,
		err:   nil,
		some:  true,
	}
}

// None returns an empty Value.
func None[T any]() Value[T] {
	return Value[T]{} //nolint:exhaustruct
}

// Ok returns a Value holding v. It is the result-flavored spelling of Some.
func Ok[T any](v T) Value[T] {
	return Some(v)
}

// Err returns an empty Value carrying err.
// Err(nil) is the same as None.
func Err[T any](err error) Value[T] {
	return Value[T]{ //nolint:exhaustruct
		err: err,
	}
}

// From converts the (value, error) pair returned by most Go functions.
// A non-nil err makes the Value empty; v is dropped in that case.
func From[T any](v T, err error) Value[T] {
	if err != nil {
		return Err[T](err)
	}

	return Some(v)
}

// FromOK converts the comma-ok pair of map lookups, type assertions and
// channel receives.
func FromOK[T any](v T, ok bool) Value[T] {
	if !ok {
		return None[T]()
	}

	return Some(v)
}

// FromOption converts an optional value.
func FromOption[T any](o option.Generic[T]) Value[T] {
	return FromOK(o.Get())
}

// IsSome reports whether v holds a payload.
func (v Value[T]) IsSome() bool {
	return v.some
}

// Get returns the payload and whether it is present.
func (v Value[T]) Get() (T, bool) {
	return v.value, v.some
}

// Err returns the error an empty Value was built from, if any.
func (v Value[T]) Err() error {
	return v.err
}

// Option converts v to an optional value, dropping the error.
func (v Value[T]) Option() option.Generic[T] {
	if !v.some {
		return option.None[T]()
	}

	return option.Some(v.value)
}
