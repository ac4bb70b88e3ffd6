package laws

import (
	"io"
	"testing"

	"github.com/authcorp/libs/go/maybe"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestCatalogueLaws(t *testing.T) {
	for _, suite := range Catalogue() {
		t.Run(suite.Name, func(t *testing.T) {
			parameters := gopter.DefaultTestParameters()
			parameters.MinSuccessfulTests = 100

			properties := gopter.NewProperties(parameters)
			suite.Register(properties)
			properties.TestingRun(t)
		})
	}
}

func TestCatalogueNamesAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, name := range Names() {
		if seen[name] {
			t.Errorf("duplicate suite %q", name)
		}
		seen[name] = true
	}
	if len(seen) != 17 {
		t.Errorf("expected 17 suites, got %d", len(seen))
	}
}

func TestLookup(t *testing.T) {
	if s, ok := Lookup("Traversable"); !ok || s.Name != "Traversable" {
		t.Errorf("Lookup(Traversable) = %q, %v", s.Name, ok)
	}
	if _, ok := Lookup("Comonad"); ok {
		t.Error("expected unknown suite to be missing")
	}
}

func TestMaybeOfGeneratesBothVariants(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	var justs, nothings int
	properties := gopter.NewProperties(parameters)
	properties.Property("MaybeOf yields Maybe values", prop.ForAll(
		func(m maybe.Maybe[int]) bool {
			if m.IsJust() {
				justs++
			} else {
				nothings++
			}
			return true
		},
		MaybeOf[int](gen.Int()),
	))
	properties.TestingRun(t)

	if justs == 0 || nothings == 0 {
		t.Errorf("expected both variants, got %d Just and %d Nothing", justs, nothings)
	}
}

func TestComposeRepOf(t *testing.T) {
	got := ComposeRep[int]().Of(maybe.Just(3))
	if len(got) != 1 || !got[0].Equals(maybe.Just(maybe.Just(3))) {
		t.Errorf("unexpected Of result %v", got)
	}
}

// Swapping the operands of Alt is observable when both sides are Just.
func TestSuiteDetectsViolation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("swapped alt agrees with alt", prop.ForAll(
		func(a, b maybe.Maybe[int]) bool {
			rightBiased := b.Alt(a)
			return equals(rightBiased, a.Alt(b))
		},
		MaybeOf[int](gen.IntRange(1, 10)), MaybeOf[int](gen.IntRange(11, 20)),
	))

	if properties.Run(gopter.NewFormatedReporter(false, 80, io.Discard)) {
		t.Error("expected the property to be falsified")
	}
}
