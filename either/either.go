// Package either provides Either, a value of one of two possible types, and
// its conversions to and from Maybe.
package either

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/show"
	"github.com/authcorp/libs/go/maybe/typeclass"
)

// Either represents a value of one of two possible types.
// By convention, Left is used for failures and Right for success values.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either with a left value.
func Left[L, R any](value L) Either[L, R] {
	return Either[L, R]{left: value, isRight: false}
}

// Right creates an Either with a right value.
func Right[L, R any](value R) Either[L, R] {
	return Either[L, R]{right: value, isRight: true}
}

// IsLeft returns true if Either contains a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if Either contains a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// LeftValue returns the left value or panics.
func (e Either[L, R]) LeftValue() L {
	if e.isRight {
		panic("either: called LeftValue on Right")
	}
	return e.left
}

// RightValue returns the right value or panics.
func (e Either[L, R]) RightValue() R {
	if !e.isRight {
		panic("either: called RightValue on Left")
	}
	return e.right
}

// LeftOr returns the left value or a default.
func (e Either[L, R]) LeftOr(defaultValue L) L {
	if !e.isRight {
		return e.left
	}
	return defaultValue
}

// RightOr returns the right value or a default.
func (e Either[L, R]) RightOr(defaultValue R) R {
	if e.isRight {
		return e.right
	}
	return defaultValue
}

// Map applies a function to the right value.
func Map[L, R, U any](e Either[L, R], fn func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](fn(e.right))
	}
	return Left[L, U](e.left)
}

// MapLeft applies a function to the left value.
func MapLeft[L, R, U any](e Either[L, R], fn func(L) U) Either[U, R] {
	if !e.isRight {
		return Left[U, R](fn(e.left))
	}
	return Right[U](e.right)
}

// FlatMap applies a function that returns an Either.
func FlatMap[L, R, U any](e Either[L, R], fn func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return fn(e.right)
	}
	return Left[L, U](e.left)
}

// Match executes one of two functions based on Either state.
func (e Either[L, R]) Match(onLeft func(L), onRight func(R)) {
	if e.isRight {
		onRight(e.right)
	} else {
		onLeft(e.left)
	}
}

// MatchEither executes one of two functions and returns the result.
func MatchEither[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Swap exchanges left and right values.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// Equals reports whether both sides hold equal values on the same side.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return typeclass.Equals(e.right, other.right)
	}
	return typeclass.Equals(e.left, other.left)
}

// Capabilities reports Setoid when the held value is one.
func (e Either[L, R]) Capabilities() typeclass.Capability {
	if e.isRight {
		return typeclass.Detect(e.right) & typeclass.Setoid
	}
	return typeclass.Detect(e.left) & typeclass.Setoid
}

// Show renders e as "Left (x)" or "Right (x)".
func (e Either[L, R]) Show() string {
	if e.isRight {
		return "Right (" + show.Show(e.right) + ")"
	}
	return "Left (" + show.Show(e.left) + ")"
}

// String implements fmt.Stringer.
func (e Either[L, R]) String() string {
	return e.Show()
}

// ToMaybe keeps the right value and discards the left one.
func ToMaybe[L, R any](e Either[L, R]) maybe.Maybe[R] {
	if e.isRight {
		return maybe.Just(e.right)
	}
	return maybe.Nothing[R]()
}

// FromMaybe converts a Maybe to an Either, using left for Nothing.
func FromMaybe[L, R any](m maybe.Maybe[R], left L) Either[L, R] {
	if v, ok := m.Get(); ok {
		return Right[L](v)
	}
	return Left[L, R](left)
}

// Rep is the Either applicative for maybe.Traverse: a Left short-circuits.
func Rep[L, U any]() maybe.ApplicativeRep[U, Either[L, U], Either[L, maybe.Maybe[U]]] {
	return maybe.ApplicativeRep[U, Either[L, U], Either[L, maybe.Maybe[U]]]{
		Of:  Right[L, maybe.Maybe[U]],
		Map: Map[L, U, maybe.Maybe[U]],
	}
}
