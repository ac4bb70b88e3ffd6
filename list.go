package maybe

// CatMaybes returns the values held by the Justs in ms, in order.
func CatMaybes[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.just {
			out = append(out, m.value)
		}
	}
	return out
}

// MapMaybe applies fn to every element of xs and keeps the Just results.
func MapMaybe[T, U any](xs []T, fn func(T) Maybe[U]) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		if m := fn(x); m.just {
			out = append(out, m.value)
		}
	}
	return out
}
