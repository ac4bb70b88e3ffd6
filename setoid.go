package maybe

import (
	"cmp"

	"github.com/authcorp/libs/go/maybe/typeclass"
)

// Equals reports whether m and other are equal: Nothing equals only
// Nothing, and two Justs are equal when their values are.
func (m Maybe[T]) Equals(other Maybe[T]) bool {
	if !m.just {
		return !other.just
	}
	m.require(typeclass.Setoid)
	return other.just && typeclass.Equals(m.value, other.value)
}

// Lte reports whether m sorts before or equal to other. Nothing is the
// least element.
func (m Maybe[T]) Lte(other Maybe[T]) bool {
	if !m.just {
		return true
	}
	m.require(typeclass.Ord)
	return other.just && typeclass.Lte(m.value, other.value)
}

// Equal compares two Maybes of a comparable type without capability
// detection.
func Equal[T comparable](a, b Maybe[T]) bool {
	if a.just != b.just {
		return false
	}
	return !a.just || a.value == b.value
}

// EqualFunc compares two Maybes using eq for the held values.
func EqualFunc[T, U any](a Maybe[T], b Maybe[U], eq func(T, U) bool) bool {
	if a.just != b.just {
		return false
	}
	return !a.just || eq(a.value, b.value)
}

// Compare orders two Maybes of an ordered type. Nothing sorts first.
func Compare[T cmp.Ordered](a, b Maybe[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc orders two Maybes using cmpFn for the held values.
func CompareFunc[T any](a, b Maybe[T], cmpFn func(T, T) int) int {
	switch {
	case !a.just && !b.just:
		return 0
	case !a.just:
		return -1
	case !b.just:
		return 1
	}
	return cmpFn(a.value, b.value)
}

// LteFunc is Lte with an explicit order for the held values.
func LteFunc[T any](a, b Maybe[T], lte func(T, T) bool) bool {
	if !a.just {
		return true
	}
	return b.just && lte(a.value, b.value)
}
