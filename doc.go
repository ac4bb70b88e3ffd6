// Package maybe provides Maybe, an optional value that is either Nothing or
// a Just wrapping exactly one value, together with the algebraic structures
// it supports.
//
// # Variants
//
//   - [Nothing]: the empty value. It is the zero value of [Maybe].
//   - [Just]: wraps one value; [Of] is an alias used as the applicative unit.
//
// # Capabilities
//
// Whether a Just supports equality, ordering and combination depends on the
// value it holds. [Just] inspects the value once with [typeclass.Detect] and
// records the result, so Maybe T is a Setoid, Ord or Semigroup exactly when T
// is. Nothing supports all three. Calling [Maybe.Equals], [Maybe.Lte] or
// [Maybe.Concat] on a Just that lacks the capability panics with a
// *typeclass.CapabilityError. [Equal], [Compare], [EqualFunc], [CompareFunc],
// [LteFunc] and [ConcatFunc] are the compile-time checked alternatives.
//
// # Structures
//
//   - Setoid, Ord: [Maybe.Equals], [Maybe.Lte]
//   - Semigroup, Monoid: [Maybe.Concat], [Empty]
//   - Filterable: [Maybe.Filter], [Maybe.Reject]
//   - Functor: [Map]
//   - Apply, Applicative: [Ap], [Of]
//   - Chain, Monad: [Chain]
//   - ChainRec: [ChainRec] with [Next] and [Done]
//   - Alt, Plus, Alternative: [Maybe.Alt], [Zero]
//   - Foldable: [Reduce]
//   - Traversable: [Traverse], [Sequence]
//   - Extend: [Extend]
//
// Methods cannot introduce type parameters in Go, so every operation whose
// result type differs from the receiver is a package function taking the
// Maybe as its first argument.
package maybe
