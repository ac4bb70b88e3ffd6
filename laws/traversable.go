package laws

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/either"
	"github.com/authcorp/libs/go/maybe/identity"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// ComposeRep is the applicative of slices of Maybes, the composition of
// the slice and Maybe applicatives.
func ComposeRep[A any]() maybe.ApplicativeRep[A, []maybe.Maybe[A], []maybe.Maybe[maybe.Maybe[A]]] {
	return maybe.ApplicativeRep[A, []maybe.Maybe[A], []maybe.Maybe[maybe.Maybe[A]]]{
		Of: func(m maybe.Maybe[A]) []maybe.Maybe[maybe.Maybe[A]] {
			return []maybe.Maybe[maybe.Maybe[A]]{maybe.Of(m)}
		},
		Map: func(fga []maybe.Maybe[A], fn func(A) maybe.Maybe[A]) []maybe.Maybe[maybe.Maybe[A]] {
			out := make([]maybe.Maybe[maybe.Maybe[A]], len(fga))
			for i, ga := range fga {
				out[i] = maybe.Map(ga, fn)
			}
			return out
		},
	}
}

// Traversable checks naturality, identity and composition of Traverse.
//
// Naturality uses either.ToMaybe as the natural transformation from
// Either[string, _] to Maybe. ms generates Maybe[A]; nested generates
// Maybe[[]Maybe[A]] for the composition law.
func Traversable[A, B any](ms, nested gopter.Gen, f func(A) either.Either[string, B]) Suite {
	return Suite{Name: "Traversable", Register: func(props *gopter.Properties) {
		props.Property("naturality", prop.ForAll(
			func(m maybe.Maybe[A]) bool {
				lhs := either.ToMaybe(maybe.Traverse(either.Rep[string, B](), m, f))
				rhs := maybe.Traverse(maybe.MaybeRep[B](), m, func(x A) maybe.Maybe[B] {
					return either.ToMaybe(f(x))
				})
				return equals(lhs, rhs)
			},
			ms,
		))
		props.Property("identity", prop.ForAll(
			func(m maybe.Maybe[A]) bool {
				return maybe.Traverse(identity.Rep[A](), m, identity.Of[A]).Equals(identity.Of(m))
			},
			ms,
		))
		props.Property("composition", prop.ForAll(
			func(u maybe.Maybe[[]maybe.Maybe[A]]) bool {
				lhs := maybe.Traverse(ComposeRep[A](), u, func(x []maybe.Maybe[A]) []maybe.Maybe[A] { return x })
				outer := maybe.Sequence(maybe.SliceRep[maybe.Maybe[A]](), u)
				rhs := make([]maybe.Maybe[maybe.Maybe[A]], len(outer))
				for i, x := range outer {
					rhs[i] = maybe.Sequence(maybe.MaybeRep[A](), x)
				}
				return equals(lhs, rhs)
			},
			nested,
		))
	}}
}
