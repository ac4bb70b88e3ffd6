package laws

import (
	"math"
	"strconv"

	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/either"
	"github.com/leanovate/gopter/gen"
)

// Catalogue returns every law suite instantiated with the generators and
// functions the maybe-laws command checks, in dependency order.
func Catalogue() []Suite {
	bools := MaybeOf[bool](gen.Bool())
	strs := MaybeOf[string](gen.AlphaString())
	ints := MaybeOf[int](gen.IntRange(-100, 100))
	floats := gen.Float64Range(-1e6, 1e6)
	maybeFloats := MaybeOf[float64](floats)
	fns := gen.OneGenOf(
		gen.Const(maybe.Nothing[func(float64) float64]()),
		gen.Const(maybe.Just(math.Sqrt)),
		gen.Const(maybe.Just(math.Abs)),
		gen.Const(maybe.Just(math.Floor)),
	)
	words := MaybeOf[[]string](gen.SliceOf(gen.OneConstOf("0", "1.5", "-3", "1e3", "NaN", "abc", "")))
	nested := MaybeOf[[]maybe.Maybe[int]](gen.SliceOf(ints))

	double := func(x int) int { return x * 2 }

	return []Suite{
		Setoid[bool](bools),
		Ord[string](strs),
		Semigroup[string](strs),
		Monoid[string](strs),
		Filterable(ints, func(x int) bool { return x > -10 }, func(x int) bool { return x < 10 }),
		Functor(maybeFloats, math.Sqrt, math.Abs),
		Apply[float64, float64, float64](maybeFloats, fns, fns),
		Applicative(maybeFloats, floats, fns, math.Abs),
		Chain(words, head, parseFloat),
		ChainRec(gen.IntRange(-10, 1000),
			func(x int) bool { return x >= 1000 },
			maybe.Just[int],
			func(x int) maybe.Maybe[int] {
				if x <= 1 {
					return maybe.Nothing[int]()
				}
				return maybe.Just(x * x)
			},
		),
		Monad(floats, maybeFloats, safeSqrt),
		Alt(ints, double),
		Plus(ints, double),
		Alternative[float64, float64](maybeFloats, fns),
		Foldable(ints, gen.IntRange(-1000, 1000), func(acc, x int) int { return acc + x }),
		Traversable(ints, nested, halve),
		Extend(ints,
			func(m maybe.Maybe[int]) int { return m.UnwrapOr(0) + 1 },
			func(m maybe.Maybe[int]) string { return m.Show() },
		),
	}
}

// Names returns the suite names of Catalogue in order.
func Names() []string {
	suites := Catalogue()
	names := make([]string, len(suites))
	for i, s := range suites {
		names[i] = s.Name
	}
	return names
}

// Lookup returns the catalogue suite called name.
func Lookup(name string) (Suite, bool) {
	for _, s := range Catalogue() {
		if s.Name == name {
			return s, true
		}
	}
	return Suite{}, false
}

func head(xs []string) maybe.Maybe[string] {
	if len(xs) == 0 {
		return maybe.Nothing[string]()
	}
	return maybe.Just(xs[0])
}

func parseFloat(s string) maybe.Maybe[float64] {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(f)
}

func safeSqrt(x float64) maybe.Maybe[float64] {
	if x < 0 {
		return maybe.Nothing[float64]()
	}
	return maybe.Just(math.Sqrt(x))
}

func halve(x int) either.Either[string, int] {
	if x%2 != 0 {
		return either.Left[string, int]("odd")
	}
	return either.Right[string](x / 2)
}
