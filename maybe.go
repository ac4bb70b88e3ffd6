package maybe

import (
	"iter"

	"github.com/authcorp/libs/go/maybe/typeclass"
)

// TypeTag identifies Maybe values across independently built copies of
// this package.
const TypeTag = "authcorp-maybe/Maybe@1"

// Maybe represents an optional value. The zero value is Nothing.
type Maybe[T any] struct {
	value T
	just  bool
	caps  typeclass.Capability
}

// Nothing returns the empty Maybe.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Just wraps value, recording the capabilities value supports.
func Just[T any](value T) Maybe[T] {
	return Maybe[T]{value: value, just: true, caps: typeclass.Detect(value)}
}

// Of is the applicative unit. It is equivalent to Just.
func Of[T any](value T) Maybe[T] {
	return Just(value)
}

// Empty returns the Monoid identity, Nothing.
func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Zero returns the Plus identity, Nothing.
func Zero[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsJust returns true if the Maybe holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// IsNothing returns true if the Maybe is empty.
func (m Maybe[T]) IsNothing() bool {
	return !m.just
}

// Capabilities reports the structures this instance supports.
func (m Maybe[T]) Capabilities() typeclass.Capability {
	if !m.just {
		return typeclass.All
	}
	return m.caps
}

// TypeID returns TypeTag.
func (m Maybe[T]) TypeID() string {
	return TypeTag
}

// Get returns the held value and whether there was one.
func (m Maybe[T]) Get() (T, bool) {
	return m.value, m.just
}

// Unwrap returns the held value or panics on Nothing.
func (m Maybe[T]) Unwrap() T {
	if !m.just {
		panic("maybe: called Unwrap on Nothing")
	}
	return m.value
}

// UnwrapOr returns the held value or a default.
func (m Maybe[T]) UnwrapOr(defaultValue T) T {
	if m.just {
		return m.value
	}
	return defaultValue
}

// UnwrapOrElse returns the held value or computes a default.
func (m Maybe[T]) UnwrapOrElse(fn func() T) T {
	if m.just {
		return m.value
	}
	return fn()
}

// Match executes one of two functions based on the variant.
func (m Maybe[T]) Match(onJust func(T), onNothing func()) {
	if m.just {
		onJust(m.value)
	} else {
		onNothing()
	}
}

// MatchMaybe executes one of two functions and returns the result.
func MatchMaybe[T, U any](m Maybe[T], onJust func(T) U, onNothing func() U) U {
	if m.just {
		return onJust(m.value)
	}
	return onNothing()
}

// ToSlice converts the Maybe to a slice of zero or one element.
func (m Maybe[T]) ToSlice() []T {
	if m.just {
		return []T{m.value}
	}
	return []T{}
}

// All returns an iterator over the held value, if any.
func (m Maybe[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if m.just {
			yield(m.value)
		}
	}
}

// FromPtr creates a Maybe from a pointer; nil becomes Nothing.
func FromPtr[T any](ptr *T) Maybe[T] {
	if ptr == nil {
		return Nothing[T]()
	}
	return Just(*ptr)
}

// ToPtr returns a pointer to a copy of the held value, or nil.
func (m Maybe[T]) ToPtr() *T {
	if m.just {
		v := m.value
		return &v
	}
	return nil
}

func (m Maybe[T]) require(c typeclass.Capability) {
	if m.just && !m.caps.Has(c) {
		panic(typeclass.NewCapabilityError(c, m.value))
	}
}
