// Package typeclass detects and dispatches the Setoid, Ord and Semigroup
// capabilities of arbitrary Go values.
//
// A value is a Setoid when it supports structural equality, an Ord when it
// additionally supports a total order, and a Semigroup when two values of its
// type can be combined associatively. Capabilities come from three sources,
// checked in order:
//
//   - a [Reporter], which states its capabilities per instance
//   - methods taking the value's own type: Equals(T) bool, Lte(T) bool, Concat(T) T
//   - the value's kind: numbers and strings are ordered, strings and slices
//     concatenate, composites inherit the capabilities of their elements
//
// [Equals], [Lte] and [Concat] dispatch on the same rules, so a value for which
// [Detect] reports a capability can always be passed to the matching function.
package typeclass

import "strings"

// Capability is a set of algebraic capabilities.
type Capability uint8

const (
	// Setoid marks support for structural equality.
	Setoid Capability = 1 << iota
	// Ord marks support for a total order. It implies Setoid.
	Ord
	// Semigroup marks support for associative combination.
	Semigroup
)

// All is the capability set of a value that supports everything.
const All = Setoid | Ord | Semigroup

// Has reports whether every capability in other is present in c.
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	parts := make([]string, 0, 3)
	if c.Has(Setoid) {
		parts = append(parts, "Setoid")
	}
	if c.Has(Ord) {
		parts = append(parts, "Ord")
	}
	if c.Has(Semigroup) {
		parts = append(parts, "Semigroup")
	}
	return strings.Join(parts, "|")
}

// Reporter is implemented by values whose capabilities depend on the
// instance rather than on the type, such as containers that inherit the
// capabilities of the value they hold.
type Reporter interface {
	Capabilities() Capability
}

// normalize drops Ord when Setoid is absent.
func normalize(c Capability) Capability {
	if !c.Has(Setoid) {
		c &^= Ord
	}
	return c
}
