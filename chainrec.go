package maybe

import "errors"

// ErrInvalidStep is the panic value of ChainRec when the step function
// returns a Step built by neither Next nor Done.
var ErrInvalidStep = errors.New("maybe: step is neither next nor done")

// stepTag distinguishes Next from Done by pointer identity.
type stepTag struct{ name string }

var (
	nextTag = &stepTag{name: "next"}
	doneTag = &stepTag{name: "done"}
)

// Step is the control value of ChainRec: either continue with a new seed
// or finish with a result.
type Step[A, B any] struct {
	tag    *stepTag
	seed   A
	result B
}

// Next continues the loop with seed.
func Next[A, B any](seed A) Step[A, B] {
	return Step[A, B]{tag: nextTag, seed: seed}
}

// Done stops the loop with result.
func Done[A, B any](result B) Step[A, B] {
	return Step[A, B]{tag: doneTag, result: result}
}

// IsNext reports whether s continues the loop.
func (s Step[A, B]) IsNext() bool { return s.tag == nextTag }

// IsDone reports whether s stops the loop.
func (s Step[A, B]) IsDone() bool { return s.tag == doneTag }

// Seed returns the seed of a Next step.
func (s Step[A, B]) Seed() A { return s.seed }

// Result returns the result of a Done step.
func (s Step[A, B]) Result() B { return s.result }

// ChainRec runs fn from seed until it returns Nothing, which is returned
// immediately, or Just(Done(result)), which yields Just(result). Iterations
// run in a loop, so stack usage does not grow with their number.
func ChainRec[A, B any](fn func(next func(A) Step[A, B], done func(B) Step[A, B], seed A) Maybe[Step[A, B]], seed A) Maybe[B] {
	next, done := Next[A, B], Done[A, B]
	r := next(seed)
	for r.tag == nextTag {
		m := fn(next, done, r.seed)
		if !m.just {
			return Nothing[B]()
		}
		r = m.value
	}
	if r.tag != doneTag {
		panic(ErrInvalidStep)
	}
	return Just(r.result)
}
