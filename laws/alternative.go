package laws

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// Alt checks associativity of Alt and that Map distributes over it.
func Alt[T, U any](ms gopter.Gen, f func(T) U) Suite {
	return Suite{Name: "Alt", Register: func(props *gopter.Properties) {
		props.Property("associativity", prop.ForAll(
			func(a, b, c maybe.Maybe[T]) bool {
				return equals(a.Alt(b).Alt(c), a.Alt(b.Alt(c)))
			},
			ms, ms, ms,
		))
		props.Property("distributivity", prop.ForAll(
			func(a, b maybe.Maybe[T]) bool {
				return equals(maybe.Map(a.Alt(b), f), maybe.Map(a, f).Alt(maybe.Map(b, f)))
			},
			ms, ms,
		))
	}}
}

// Plus checks that Zero is the identity of Alt and is preserved by Map.
func Plus[T, U any](ms gopter.Gen, f func(T) U) Suite {
	return Suite{Name: "Plus", Register: func(props *gopter.Properties) {
		props.Property("left identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool { return equals(maybe.Zero[T]().Alt(m), m) },
			ms,
		))
		props.Property("right identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool { return equals(m.Alt(maybe.Zero[T]()), m) },
			ms,
		))
		props.Property("annihilation", prop.ForAll(
			func(m maybe.Maybe[T]) bool {
				return equals(maybe.Map(maybe.Zero[T](), f), maybe.Zero[U]())
			},
			ms,
		))
	}}
}

// Alternative checks that Ap distributes over Alt and that applying to Zero
// yields Zero. xs generates Maybe[A]; fs Maybe[func(A) B].
func Alternative[A, B any](xs, fs gopter.Gen) Suite {
	return Suite{Name: "Alternative", Register: func(props *gopter.Properties) {
		props.Property("distributivity", prop.ForAll(
			func(x maybe.Maybe[A], f, g maybe.Maybe[func(A) B]) bool {
				return equals(maybe.Ap(x, f.Alt(g)), maybe.Ap(x, f).Alt(maybe.Ap(x, g)))
			},
			xs, fs, fs,
		))
		props.Property("annihilation", prop.ForAll(
			func(f maybe.Maybe[func(A) B]) bool {
				return equals(maybe.Ap(maybe.Zero[A](), f), maybe.Zero[B]())
			},
			fs,
		))
	}}
}

// Foldable checks that Reduce agrees with folding the values of ToSlice.
func Foldable[T, A any](ms, initials gopter.Gen, f func(A, T) A) Suite {
	return Suite{Name: "Foldable", Register: func(props *gopter.Properties) {
		props.Property("reduce", prop.ForAll(
			func(m maybe.Maybe[T], initial A) bool {
				acc := initial
				for _, v := range m.ToSlice() {
					acc = f(acc, v)
				}
				return equals(maybe.Reduce(m, f, initial), acc)
			},
			ms, initials,
		))
	}}
}

// Extend checks associativity of Extend.
func Extend[T, U, V any](ms gopter.Gen, g func(maybe.Maybe[T]) U, f func(maybe.Maybe[U]) V) Suite {
	return Suite{Name: "Extend", Register: func(props *gopter.Properties) {
		props.Property("associativity", prop.ForAll(
			func(w maybe.Maybe[T]) bool {
				lhs := maybe.Extend(maybe.Extend(w, g), f)
				rhs := maybe.Extend(w, func(x maybe.Maybe[T]) V { return f(maybe.Extend(x, g)) })
				return equals(lhs, rhs)
			},
			ms,
		))
	}}
}
