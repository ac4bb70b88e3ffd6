package laws

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// Apply checks the composition law of Ap. vs generates Maybe[A], us
// Maybe[func(A) B] and as Maybe[func(B) C].
func Apply[A, B, C any](vs, us, as gopter.Gen) Suite {
	return Suite{Name: "Apply", Register: func(props *gopter.Properties) {
		props.Property("composition", prop.ForAll(
			func(v maybe.Maybe[A], u maybe.Maybe[func(A) B], a maybe.Maybe[func(B) C]) bool {
				compose := func(f func(B) C) func(func(A) B) func(A) C {
					return func(g func(A) B) func(A) C {
						return func(x A) C { return f(g(x)) }
					}
				}
				lhs := maybe.Ap(v, maybe.Ap(u, maybe.Map(a, compose)))
				rhs := maybe.Ap(maybe.Ap(v, u), a)
				return equals(lhs, rhs)
			},
			vs, us, as,
		))
	}}
}

// Applicative checks identity, homomorphism and interchange. vs generates
// Maybe[A], xs plain A values and us Maybe[func(A) B].
func Applicative[A, B any](vs, xs, us gopter.Gen, f func(A) B) Suite {
	return Suite{Name: "Applicative", Register: func(props *gopter.Properties) {
		props.Property("identity", prop.ForAll(
			func(v maybe.Maybe[A]) bool {
				return equals(maybe.Ap(v, maybe.Of(func(x A) A { return x })), v)
			},
			vs,
		))
		props.Property("homomorphism", prop.ForAll(
			func(x A) bool {
				return equals(maybe.Ap(maybe.Of(x), maybe.Of(f)), maybe.Of(f(x)))
			},
			xs,
		))
		props.Property("interchange", prop.ForAll(
			func(x A, u maybe.Maybe[func(A) B]) bool {
				applyTo := func(g func(A) B) B { return g(x) }
				return equals(maybe.Ap(maybe.Of(x), u), maybe.Ap(u, maybe.Of(applyTo)))
			},
			xs, us,
		))
	}}
}

// Chain checks associativity of Chain.
func Chain[A, B, C any](ms gopter.Gen, f func(A) maybe.Maybe[B], g func(B) maybe.Maybe[C]) Suite {
	return Suite{Name: "Chain", Register: func(props *gopter.Properties) {
		props.Property("associativity", prop.ForAll(
			func(m maybe.Maybe[A]) bool {
				lhs := maybe.Chain(maybe.Chain(m, f), g)
				rhs := maybe.Chain(m, func(x A) maybe.Maybe[C] { return maybe.Chain(f(x), g) })
				return equals(lhs, rhs)
			},
			ms,
		))
	}}
}

// ChainRec checks that ChainRec agrees with the naive recursive definition
// built from the same predicate p, finishing function d and continuation n.
func ChainRec[A, B any](seeds gopter.Gen, p func(A) bool, d func(A) maybe.Maybe[B], n func(A) maybe.Maybe[A]) Suite {
	return Suite{Name: "ChainRec", Register: func(props *gopter.Properties) {
		props.Property("equivalence", prop.ForAll(
			func(seed A) bool {
				lhs := maybe.ChainRec(func(next func(A) maybe.Step[A, B], done func(B) maybe.Step[A, B], v A) maybe.Maybe[maybe.Step[A, B]] {
					if p(v) {
						return maybe.Map(d(v), done)
					}
					return maybe.Map(n(v), next)
				}, seed)
				var step func(A) maybe.Maybe[B]
				step = func(v A) maybe.Maybe[B] {
					if p(v) {
						return d(v)
					}
					return maybe.Chain(n(v), step)
				}
				return equals(lhs, step(seed))
			},
			seeds,
		))
	}}
}

// Monad checks left and right identity of Of with respect to Chain.
func Monad[A, B any](xs, ms gopter.Gen, f func(A) maybe.Maybe[B]) Suite {
	return Suite{Name: "Monad", Register: func(props *gopter.Properties) {
		props.Property("left identity", prop.ForAll(
			func(x A) bool { return equals(maybe.Chain(maybe.Of(x), f), f(x)) },
			xs,
		))
		props.Property("right identity", prop.ForAll(
			func(m maybe.Maybe[A]) bool { return equals(maybe.Chain(m, maybe.Of[A]), m) },
			ms,
		))
	}}
}
