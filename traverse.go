package maybe

// ApplicativeRep describes the applicative context F that Traverse maps
// into. FU stands for F[U] and FMU for F[Maybe[U]]: Of lifts a Maybe into
// F, and Map maps over an F[U].
type ApplicativeRep[U, FU, FMU any] struct {
	Of  func(Maybe[U]) FMU
	Map func(FU, func(U) Maybe[U]) FMU
}

// Traverse applies the effectful fn to the held value and rewraps the
// result in Just inside the context. Nothing is lifted into the context
// unchanged.
func Traverse[T, U, FU, FMU any](rep ApplicativeRep[U, FU, FMU], m Maybe[T], fn func(T) FU) FMU {
	if !m.just {
		return rep.Of(Nothing[U]())
	}
	return rep.Map(fn(m.value), Just[U])
}

// Sequence turns a Maybe of F[U] into an F of Maybe[U].
func Sequence[U, FU, FMU any](rep ApplicativeRep[U, FU, FMU], m Maybe[FU]) FMU {
	return Traverse(rep, m, func(fu FU) FU { return fu })
}

// SliceRep is the list applicative: a slice holds every possible result.
func SliceRep[U any]() ApplicativeRep[U, []U, []Maybe[U]] {
	return ApplicativeRep[U, []U, []Maybe[U]]{
		Of: func(m Maybe[U]) []Maybe[U] {
			return []Maybe[U]{m}
		},
		Map: func(us []U, fn func(U) Maybe[U]) []Maybe[U] {
			out := make([]Maybe[U], len(us))
			for i, u := range us {
				out[i] = fn(u)
			}
			return out
		},
	}
}

// MaybeRep uses Maybe itself as the applicative context.
func MaybeRep[U any]() ApplicativeRep[U, Maybe[U], Maybe[Maybe[U]]] {
	return ApplicativeRep[U, Maybe[U], Maybe[Maybe[U]]]{
		Of:  Just[Maybe[U]],
		Map: Map[U, Maybe[U]],
	}
}
