package maybe

// Map applies fn to the held value, if any.
func Map[T, U any](m Maybe[T], fn func(T) U) Maybe[U] {
	if m.just {
		return Just(fn(m.value))
	}
	return Nothing[U]()
}

// Ap applies the function held by mf to the value held by m. The result is
// Just only when both are Just.
func Ap[T, U any](m Maybe[T], mf Maybe[func(T) U]) Maybe[U] {
	if m.just && mf.just {
		return Just(mf.value(m.value))
	}
	return Nothing[U]()
}

// Chain applies a function that returns a Maybe.
func Chain[T, U any](m Maybe[T], fn func(T) Maybe[U]) Maybe[U] {
	if m.just {
		return fn(m.value)
	}
	return Nothing[U]()
}

// Flatten removes one level of nesting.
func Flatten[T any](mm Maybe[Maybe[T]]) Maybe[T] {
	if mm.just {
		return mm.value
	}
	return Nothing[T]()
}

// Alt returns m if it is Just, otherwise other.
func (m Maybe[T]) Alt(other Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return other
}

// Reduce folds the held value into initial with fn. Nothing returns initial
// unchanged.
func Reduce[T, A any](m Maybe[T], fn func(A, T) A, initial A) A {
	if m.just {
		return fn(initial, m.value)
	}
	return initial
}

// Extend applies fn to the whole of m, not only to the held value.
func Extend[T, U any](m Maybe[T], fn func(Maybe[T]) U) Maybe[U] {
	if m.just {
		return Just(fn(m))
	}
	return Nothing[U]()
}
