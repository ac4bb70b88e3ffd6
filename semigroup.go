package maybe

import "github.com/authcorp/libs/go/maybe/typeclass"

// Concat combines m and other. Nothing is the identity on both sides; two
// Justs combine their values.
func (m Maybe[T]) Concat(other Maybe[T]) Maybe[T] {
	m.require(typeclass.Semigroup)
	switch {
	case !m.just:
		return other
	case !other.just:
		return m
	}
	return Just(typeclass.Concat(m.value, other.value).(T))
}

// ConcatFunc is Concat with an explicit combination for the held values.
func ConcatFunc[T any](a, b Maybe[T], combine func(T, T) T) Maybe[T] {
	switch {
	case !a.just:
		return b
	case !b.just:
		return a
	}
	return Just(combine(a.value, b.value))
}

// Filter returns m when it holds a value satisfying pred, otherwise Nothing.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.just && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// Reject is Filter with the predicate negated.
func (m Maybe[T]) Reject(pred func(T) bool) Maybe[T] {
	if m.just && !pred(m.value) {
		return m
	}
	return Nothing[T]()
}
