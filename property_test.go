package maybe_test

import (
	"testing"

	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/maybetest"
	"pgregory.net/rapid"
)

// Property: Map preserves identity.
func TestProperty_MapIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := maybetest.Gen(rapid.Int()).Draw(t, "m")

		mapped := maybe.Map(m, func(x int) int { return x })
		if !mapped.Equals(m) {
			t.Fatalf("Map(id) changed %v into %v", m, mapped)
		}
	})
}

// Property: Map over Nothing never calls the function.
func TestProperty_MapNothingSkipsFunction(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := maybetest.NothingGen[string]().Draw(t, "m")

		called := false
		maybe.Map(m, func(s string) int { called = true; return len(s) })
		if called {
			t.Fatal("function called on Nothing")
		}
	})
}

// Property: Chain with Of is the identity.
func TestProperty_ChainRightIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := maybetest.Gen(rapid.String()).Draw(t, "m")

		if got := maybe.Chain(m, maybe.Of[string]); !got.Equals(m) {
			t.Fatalf("Chain(Of) changed %v into %v", m, got)
		}
	})
}

// Property: Flatten agrees with Chain(identity).
func TestProperty_FlattenIsChainIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mm := maybetest.NestedGen(rapid.Int()).Draw(t, "mm")

		flat := maybe.Flatten(mm)
		chained := maybe.Chain(mm, func(m maybe.Maybe[int]) maybe.Maybe[int] { return m })
		if !flat.Equals(chained) {
			t.Fatalf("Flatten gives %v, Chain gives %v", flat, chained)
		}
	})
}

// Property: Equals agrees with the comparable fast path.
func TestProperty_EqualsMatchesEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := maybetest.Gen(rapid.IntRange(-3, 3))
		a := gen.Draw(t, "a")
		b := gen.Draw(t, "b")

		if a.Equals(b) != maybe.Equal(a, b) {
			t.Fatalf("Equals and Equal disagree on %v and %v", a, b)
		}
	})
}

// Property: Lte agrees with Compare.
func TestProperty_LteMatchesCompare(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := maybetest.Gen(rapid.Int())
		a := gen.Draw(t, "a")
		b := gen.Draw(t, "b")

		if a.Lte(b) != (maybe.Compare(a, b) <= 0) {
			t.Fatalf("Lte and Compare disagree on %v and %v", a, b)
		}
	})
}

// Property: Just is never below Nothing and Nothing is below everything.
func TestProperty_NothingIsLeast(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		j := maybetest.JustGen(rapid.Float64()).Draw(t, "j")
		n := maybe.Nothing[float64]()

		if !n.Lte(j) || j.Lte(n) {
			t.Fatalf("ordering of Nothing and %v is wrong", j)
		}
	})
}

// Property: Concat of strings is associative and Empty is its identity.
func TestProperty_ConcatMonoid(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		gen := maybetest.Gen(rapid.String())
		a, b, c := gen.Draw(t, "a"), gen.Draw(t, "b"), gen.Draw(t, "c")

		if !a.Concat(b).Concat(c).Equals(a.Concat(b.Concat(c))) {
			t.Fatalf("Concat is not associative for %v, %v, %v", a, b, c)
		}
		if !maybe.Empty[string]().Concat(a).Equals(a) || !a.Concat(maybe.Empty[string]()).Equals(a) {
			t.Fatalf("Empty is not the identity for %v", a)
		}
	})
}

// Property: Filter keeps exactly the Justs satisfying the predicate.
func TestProperty_FilterReject(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := maybetest.Gen(rapid.Int()).Draw(t, "m")
		even := func(x int) bool { return x%2 == 0 }

		kept, rejected := m.Filter(even), m.Reject(even)
		if kept.IsJust() && rejected.IsJust() {
			t.Fatalf("Filter and Reject both kept %v", m)
		}
		if m.IsJust() && kept.IsNothing() && rejected.IsNothing() {
			t.Fatalf("Filter and Reject both dropped %v", m)
		}
	})
}

// Property: ToSlice and CatMaybes agree.
func TestProperty_CatMaybesMatchesToSlice(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ms := rapid.SliceOf(maybetest.Gen(rapid.Int())).Draw(t, "ms")

		var want []int
		for _, m := range ms {
			want = append(want, m.ToSlice()...)
		}
		got := maybe.CatMaybes(ms)
		if len(got) != len(want) {
			t.Fatalf("CatMaybes returned %d values, expected %d", len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("value %d: got %d, expected %d", i, got[i], want[i])
			}
		}
	})
}
