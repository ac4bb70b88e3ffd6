// Package maybetest provides rapid generators for Maybe values.
package maybetest

import (
	"github.com/authcorp/libs/go/maybe"
	"pgregory.net/rapid"
)

// Gen generates Maybe[T] values, Just or Nothing.
func Gen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) maybe.Maybe[T] {
		if rapid.Bool().Draw(t, "isJust") {
			return maybe.Just(valueGen.Draw(t, "value"))
		}
		return maybe.Nothing[T]()
	})
}

// JustGen generates Just values only.
func JustGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Custom(func(t *rapid.T) maybe.Maybe[T] {
		return maybe.Just(valueGen.Draw(t, "value"))
	})
}

// NothingGen generates Nothing only.
func NothingGen[T any]() *rapid.Generator[maybe.Maybe[T]] {
	return rapid.Just(maybe.Nothing[T]())
}

// NestedGen generates Maybe[Maybe[T]] values covering all three shapes:
// Nothing, Just(Nothing) and Just(Just(x)).
func NestedGen[T any](valueGen *rapid.Generator[T]) *rapid.Generator[maybe.Maybe[maybe.Maybe[T]]] {
	return rapid.Custom(func(t *rapid.T) maybe.Maybe[maybe.Maybe[T]] {
		if rapid.Bool().Draw(t, "outerJust") {
			return maybe.Just(Gen(valueGen).Draw(t, "inner"))
		}
		return maybe.Nothing[maybe.Maybe[T]]()
	})
}

// StepFuncGen generates multiplier/threshold pairs used to build ChainRec
// step functions that terminate: seeds below 2 abandon the loop, seeds at
// or above the threshold finish it.
func StepFuncGen() *rapid.Generator[StepFunc] {
	return rapid.Custom(func(t *rapid.T) StepFunc {
		return StepFunc{
			Multiplier: rapid.IntRange(2, 10).Draw(t, "multiplier"),
			Threshold:  rapid.IntRange(1, 100000).Draw(t, "threshold"),
		}
	})
}

// StepFunc describes a terminating ChainRec step function.
type StepFunc struct {
	Multiplier int
	Threshold  int
}

// Step is the ChainRec form of the step function.
func (s StepFunc) Step(next func(int) maybe.Step[int, int], done func(int) maybe.Step[int, int], x int) maybe.Maybe[maybe.Step[int, int]] {
	switch {
	case x < 2:
		return maybe.Nothing[maybe.Step[int, int]]()
	case x >= s.Threshold:
		return maybe.Just(done(x))
	}
	return maybe.Just(next(x * s.Multiplier))
}

// Recursive is the naive recursive unrolling of Step.
func (s StepFunc) Recursive(x int) maybe.Maybe[int] {
	switch {
	case x < 2:
		return maybe.Nothing[int]()
	case x >= s.Threshold:
		return maybe.Just(x)
	}
	return s.Recursive(x * s.Multiplier)
}
