// Package laws checks the algebraic laws Maybe must satisfy, expressed as
// gopter properties.
//
// Each constructor returns a Suite whose Register method adds one property
// per law to a gopter.Properties. Suites are generic over the element types
// and take the generators and functions the laws quantify over; Catalogue
// instantiates every suite with the inputs used by the maybe-laws command.
package laws

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/typeclass"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Suite is a named group of law properties.
type Suite struct {
	Name     string
	Register func(props *gopter.Properties)
}

// MaybeOf lifts a generator of T into a generator of Maybe[T] that yields
// Nothing and Just values.
func MaybeOf[T any](g gopter.Gen) gopter.Gen {
	return gen.OneGenOf(
		gen.Const(maybe.Nothing[T]()),
		g.Map(func(v T) maybe.Maybe[T] { return maybe.Just(v) }),
	)
}

// equals compares law results with the type-class runtime so that nested
// Maybes, slices and the Traverse targets are all handled.
func equals(x, y any) bool {
	return typeclass.Equals(x, y)
}

// Setoid checks reflexivity, symmetry and transitivity of Equals.
func Setoid[T any](g gopter.Gen) Suite {
	return Suite{Name: "Setoid", Register: func(props *gopter.Properties) {
		props.Property("reflexivity", prop.ForAll(
			func(a maybe.Maybe[T]) bool { return a.Equals(a) },
			g,
		))
		props.Property("symmetry", prop.ForAll(
			func(a, b maybe.Maybe[T]) bool { return a.Equals(b) == b.Equals(a) },
			g, g,
		))
		props.Property("transitivity", prop.ForAll(
			func(a, b, c maybe.Maybe[T]) bool {
				return !(a.Equals(b) && b.Equals(c)) || a.Equals(c)
			},
			g, g, g,
		))
	}}
}

// Ord checks totality, antisymmetry and transitivity of Lte.
func Ord[T any](g gopter.Gen) Suite {
	return Suite{Name: "Ord", Register: func(props *gopter.Properties) {
		props.Property("totality", prop.ForAll(
			func(a, b maybe.Maybe[T]) bool { return a.Lte(b) || b.Lte(a) },
			g, g,
		))
		props.Property("antisymmetry", prop.ForAll(
			func(a, b maybe.Maybe[T]) bool {
				return !(a.Lte(b) && b.Lte(a)) || a.Equals(b)
			},
			g, g,
		))
		props.Property("transitivity", prop.ForAll(
			func(a, b, c maybe.Maybe[T]) bool {
				return !(a.Lte(b) && b.Lte(c)) || a.Lte(c)
			},
			g, g, g,
		))
	}}
}

// Semigroup checks associativity of Concat.
func Semigroup[T any](g gopter.Gen) Suite {
	return Suite{Name: "Semigroup", Register: func(props *gopter.Properties) {
		props.Property("associativity", prop.ForAll(
			func(a, b, c maybe.Maybe[T]) bool {
				return a.Concat(b).Concat(c).Equals(a.Concat(b.Concat(c)))
			},
			g, g, g,
		))
	}}
}

// Monoid checks that Empty is the identity of Concat on both sides.
func Monoid[T any](g gopter.Gen) Suite {
	return Suite{Name: "Monoid", Register: func(props *gopter.Properties) {
		props.Property("left identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool { return maybe.Empty[T]().Concat(m).Equals(m) },
			g,
		))
		props.Property("right identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool { return m.Concat(maybe.Empty[T]()).Equals(m) },
			g,
		))
	}}
}

// Filterable checks distributivity, identity and annihilation of Filter.
func Filterable[T any](g gopter.Gen, p, q func(T) bool) Suite {
	return Suite{Name: "Filterable", Register: func(props *gopter.Properties) {
		props.Property("distributivity", prop.ForAll(
			func(m maybe.Maybe[T]) bool {
				both := m.Filter(func(x T) bool { return p(x) && q(x) })
				return both.Equals(m.Filter(p).Filter(q))
			},
			g,
		))
		props.Property("identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool {
				return m.Filter(func(T) bool { return true }).Equals(m)
			},
			g,
		))
		props.Property("annihilation", prop.ForAll(
			func(a, b maybe.Maybe[T]) bool {
				never := func(T) bool { return false }
				return a.Filter(never).Equals(b.Filter(never))
			},
			g, g,
		))
	}}
}

// Functor checks the identity and composition laws of Map.
func Functor[T, U, V any](g gopter.Gen, f func(T) U, h func(U) V) Suite {
	return Suite{Name: "Functor", Register: func(props *gopter.Properties) {
		props.Property("identity", prop.ForAll(
			func(m maybe.Maybe[T]) bool {
				return equals(maybe.Map(m, func(x T) T { return x }), m)
			},
			g,
		))
		props.Property("composition", prop.ForAll(
			func(m maybe.Maybe[T]) bool {
				composed := maybe.Map(m, func(x T) V { return h(f(x)) })
				return equals(composed, maybe.Map(maybe.Map(m, f), h))
			},
			g,
		))
	}}
}
