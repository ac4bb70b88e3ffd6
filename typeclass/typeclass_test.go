package typeclass_test

import (
	"errors"
	"math"
	"testing"

	"github.com/authcorp/libs/go/maybe/typeclass"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

type useless struct {
	fn func()
}

type version struct {
	Major, Minor int
}

type caseless string

func (c caseless) Equals(other caseless) bool {
	return len(c) == len(other)
}

type counter struct {
	n int
}

func (c counter) Concat(other counter) counter {
	return counter{n: c.n + other.n}
}

type reported struct {
	caps typeclass.Capability
}

func (r reported) Capabilities() typeclass.Capability { return r.caps }

type tree struct {
	Label string
	Kids  []tree
}

type sealed struct {
	r reported
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected typeclass.Capability
	}{
		{"nil", nil, typeclass.Setoid | typeclass.Ord},
		{"int", 0, typeclass.Setoid | typeclass.Ord},
		{"float", 1.5, typeclass.Setoid | typeclass.Ord},
		{"bool", true, typeclass.Setoid | typeclass.Ord},
		{"complex", complex(1, 2), typeclass.Setoid},
		{"string", "", typeclass.All},
		{"int slice", []int{1, 2}, typeclass.All},
		{"empty any slice", []any{}, typeclass.All},
		{"func slice", []func(){}, typeclass.Semigroup},
		{"any slice with func", []any{1, func() {}}, typeclass.Semigroup},
		{"array", [2]string{"a", "b"}, typeclass.Setoid | typeclass.Ord},
		{"map", map[string]int{"a": 1}, typeclass.Setoid | typeclass.Semigroup},
		{"struct", version{1, 2}, typeclass.Setoid | typeclass.Ord},
		{"struct with func", useless{}, 0},
		{"pointer", &version{}, typeclass.Setoid},
		{"func", func() {}, 0},
		{"declared equals", caseless("x"), typeclass.Setoid | typeclass.Semigroup},
		{"declared concat", counter{}, typeclass.All},
		{"reporter", reported{caps: typeclass.Semigroup}, typeclass.Semigroup},
		{"reporter ord without setoid", reported{caps: typeclass.Ord}, 0},
		{"recursive", tree{Label: "root", Kids: []tree{{Label: "leaf"}}}, typeclass.Setoid | typeclass.Ord},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, typeclass.Detect(tt.value))
		})
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		name     string
		x, y     any
		expected bool
	}{
		{"equal ints", 1, 1, true},
		{"different ints", 1, 2, false},
		{"different types", 1, int64(1), false},
		{"nan", math.NaN(), math.NaN(), true},
		{"signed zeros", 0.0, math.Copysign(0, -1), false},
		{"slices", []int{1, 2, 3}, []int{1, 2, 3}, true},
		{"slice order", []int{1, 2, 3}, []int{3, 2, 1}, false},
		{"nil and empty slice", []int(nil), []int{}, true},
		{"maps", map[string]int{"a": 1}, map[string]int{"a": 1}, true},
		{"map values", map[string]int{"a": 1}, map[string]int{"a": 2}, false},
		{"structs", version{1, 2}, version{1, 2}, true},
		{"declared equals", caseless("ab"), caseless("xy"), true},
		{"nested any", []any{1, "a"}, []any{1, "a"}, true},
		{"nested any types", []any{1}, []any{"1"}, false},
		{"nil", nil, nil, true},
		{"nil and value", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, typeclass.Equals(tt.x, tt.y))
		})
	}
}

func TestEqualsPointerIdentity(t *testing.T) {
	a, b := &version{1, 2}, &version{1, 2}
	assert.True(t, typeclass.Equals(a, a))
	assert.False(t, typeclass.Equals(a, b))
}

func TestSelfReferentialValues(t *testing.T) {
	cyclicMap := func(n int) map[string]any {
		m := map[string]any{"n": n}
		m["self"] = m
		return m
	}
	cyclicSlice := func(n int) []any {
		s := []any{n, nil}
		s[1] = s
		return s
	}

	t.Run("map", func(t *testing.T) {
		m := cyclicMap(1)
		assert.Equal(t, typeclass.Setoid|typeclass.Semigroup, typeclass.Detect(m))
		assert.True(t, typeclass.Equals(m, m))
		assert.True(t, typeclass.Equals(m, cyclicMap(1)))
		assert.False(t, typeclass.Equals(m, cyclicMap(2)))
	})

	t.Run("slice", func(t *testing.T) {
		s := cyclicSlice(1)
		assert.Equal(t, typeclass.All, typeclass.Detect(s))
		assert.True(t, typeclass.Equals(s, cyclicSlice(1)))
		assert.False(t, typeclass.Equals(s, cyclicSlice(2)))
		assert.True(t, typeclass.Lte(s, cyclicSlice(1)))
		assert.True(t, typeclass.Lte(s, cyclicSlice(2)))
		assert.False(t, typeclass.Lte(cyclicSlice(2), s))
	})

	t.Run("self first", func(t *testing.T) {
		x := []any{nil, 1}
		x[0] = x
		y := []any{nil, 2}
		y[0] = y
		assert.False(t, typeclass.Equals(x, y))
		assert.True(t, typeclass.Lte(x, y))
		assert.False(t, typeclass.Lte(y, x))
	})
}

func TestDetectUnexportedReporter(t *testing.T) {
	assert.Equal(t, typeclass.Setoid, typeclass.Detect(sealed{r: reported{caps: typeclass.Setoid}}))
	assert.Equal(t, typeclass.Setoid|typeclass.Ord, typeclass.Detect([1]sealed{{r: reported{caps: typeclass.All}}}))

	// Map values cannot be addressed, so the reporter is analysed by its fields.
	inMap := map[string]sealed{"a": {r: reported{caps: typeclass.Semigroup}}}
	assert.Equal(t, typeclass.Setoid|typeclass.Semigroup, typeclass.Detect(inMap))
}

func TestLte(t *testing.T) {
	negZero := math.Copysign(0, -1)
	tests := []struct {
		name     string
		x, y     any
		expected bool
	}{
		{"ints", 1, 2, true},
		{"ints reversed", 2, 1, false},
		{"strings", "abc", "abd", true},
		{"bools", false, true, true},
		{"bools reversed", true, false, false},
		{"nan first", math.NaN(), math.Inf(-1), true},
		{"nan last", math.Inf(-1), math.NaN(), false},
		{"negative zero first", negZero, 0.0, true},
		{"positive zero after", 0.0, negZero, false},
		{"slice prefix", []int{1, 2}, []int{1, 2, 3}, true},
		{"slice element", []int{1, 3}, []int{1, 2, 3}, false},
		{"struct fields", version{1, 9}, version{2, 0}, true},
		{"struct tie", version{1, 2}, version{1, 2}, true},
		{"different types", 1, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, typeclass.Lte(tt.x, tt.y))
		})
	}
}

func TestConcat(t *testing.T) {
	assert.Equal(t, "abcxyz", typeclass.Concat("abc", "xyz"))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, typeclass.Concat([]int{1, 2, 3}, []int{4, 5, 6}))
	assert.Equal(t, map[string]int{"a": 1, "b": 3}, typeclass.Concat(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 3}))
	assert.Equal(t, counter{n: 5}, typeclass.Concat(counter{n: 2}, counter{n: 3}))
}

func TestConcatDoesNotAlias(t *testing.T) {
	left := make([]int, 1, 8)
	out := typeclass.Concat(left, []int{2}).([]int)
	out[0] = 42
	assert.Equal(t, 0, left[0])
}

func TestConcatPanicsWithoutSemigroup(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, typeclass.ErrMissingCapability))

		var capErr *typeclass.CapabilityError
		require.True(t, errors.As(err, &capErr))
		assert.Equal(t, typeclass.Semigroup, capErr.Capability)
		assert.Equal(t, "int", capErr.Type)
	}()
	typeclass.Concat(1, 2)
}

func TestCapabilityString(t *testing.T) {
	assert.Equal(t, "none", typeclass.Capability(0).String())
	assert.Equal(t, "Setoid|Ord", (typeclass.Setoid | typeclass.Ord).String())
	assert.Equal(t, "Setoid|Ord|Semigroup", typeclass.All.String())
}

func TestProperty_OrdLaws(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SliceOf(rapid.IntRange(-3, 3)).Draw(t, "a")
		b := rapid.SliceOf(rapid.IntRange(-3, 3)).Draw(t, "b")
		c := rapid.SliceOf(rapid.IntRange(-3, 3)).Draw(t, "c")

		if !typeclass.Lte(a, b) && !typeclass.Lte(b, a) {
			t.Fatalf("totality violated: %v %v", a, b)
		}
		if typeclass.Lte(a, b) && typeclass.Lte(b, a) && !typeclass.Equals(a, b) {
			t.Fatalf("antisymmetry violated: %v %v", a, b)
		}
		if typeclass.Lte(a, b) && typeclass.Lte(b, c) && !typeclass.Lte(a, c) {
			t.Fatalf("transitivity violated: %v %v %v", a, b, c)
		}
	})
}

func TestProperty_FloatOrderAgreesWithEquality(t *testing.T) {
	special := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0, math.Copysign(0, -1), 1, -1}
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.SampledFrom(special).Draw(t, "a")
		b := rapid.SampledFrom(special).Draw(t, "b")

		both := typeclass.Lte(a, b) && typeclass.Lte(b, a)
		if both != typeclass.Equals(a, b) {
			t.Fatalf("order and equality disagree for %v and %v", a, b)
		}
	})
}
