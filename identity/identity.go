// Package identity provides Identity, the applicative that adds no effect.
package identity

import (
	"github.com/authcorp/libs/go/maybe"
	"github.com/authcorp/libs/go/maybe/show"
	"github.com/authcorp/libs/go/maybe/typeclass"
)

// Identity wraps a value without adding any structure.
type Identity[A any] struct {
	value A
}

// Of wraps value.
func Of[A any](value A) Identity[A] {
	return Identity[A]{value: value}
}

// Extract returns the wrapped value.
func (i Identity[A]) Extract() A {
	return i.value
}

// Map applies fn to the wrapped value.
func Map[A, B any](i Identity[A], fn func(A) B) Identity[B] {
	return Identity[B]{value: fn(i.value)}
}

func (i Identity[A]) Equals(other Identity[A]) bool {
	return typeclass.Equals(i.value, other.value)
}

func (i Identity[A]) Capabilities() typeclass.Capability {
	return typeclass.Detect(i.value) & typeclass.Setoid
}

func (i Identity[A]) Show() string {
	return "Identity (" + show.Show(i.value) + ")"
}

func (i Identity[A]) String() string {
	return i.Show()
}

// Rep is the Identity applicative for maybe.Traverse.
func Rep[U any]() maybe.ApplicativeRep[U, Identity[U], Identity[maybe.Maybe[U]]] {
	return maybe.ApplicativeRep[U, Identity[U], Identity[maybe.Maybe[U]]]{
		Of:  Of[maybe.Maybe[U]],
		Map: Map[U, maybe.Maybe[U]],
	}
}
