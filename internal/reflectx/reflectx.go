// Package reflectx holds the reflection helpers shared by the typeclass and
// show packages.
package reflectx

import (
	"reflect"
	"unsafe"
)

// Visit identifies a reference value while a walk is inside it. Slices with
// the same backing array but different lengths are distinct visits.
type Visit struct {
	Ptr  uintptr
	Type reflect.Type
	Len  int
}

// VisitOf returns the identity of a non-nil map, slice or pointer. It reports
// false for every other value, none of which can close a cycle on its own.
func VisitOf(v reflect.Value) (Visit, bool) {
	switch v.Kind() {
	case reflect.Map, reflect.Pointer:
		if v.IsNil() {
			return Visit{}, false
		}
		return Visit{Ptr: v.Pointer(), Type: v.Type()}, true
	case reflect.Slice:
		if v.IsNil() {
			return Visit{}, false
		}
		return Visit{Ptr: v.Pointer(), Type: v.Type(), Len: v.Len()}, true
	}
	return Visit{}, false
}

// Stack is the set of visits a recursive walk is currently inside.
type Stack map[Visit]bool

// Enter pushes the identity of v. It reports false when v is already on the
// stack. The returned func pops it again and is never nil.
func (s *Stack) Enter(v reflect.Value) (leave func(), fresh bool) {
	key, ok := VisitOf(v)
	if !ok {
		return func() {}, true
	}
	if (*s)[key] {
		return func() {}, false
	}
	if *s == nil {
		*s = make(Stack)
	}
	(*s)[key] = true
	return func() { delete(*s, key) }, true
}

// Addressable returns v as a reflect.Value whose fields are addressable, so
// that values held in unexported struct fields can still be read through
// Readable.
func Addressable(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return rv
	}
	switch rv.Kind() {
	case reflect.Struct, reflect.Array:
		c := reflect.New(rv.Type()).Elem()
		c.Set(rv)
		return c
	}
	return rv
}

// Readable returns a view of v that may be passed to Interface. Values read
// from unexported fields qualify only when they are addressable; the bool is
// false otherwise.
func Readable(v reflect.Value) (reflect.Value, bool) {
	if v.CanInterface() {
		return v, true
	}
	if v.CanAddr() {
		return reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem(), true
	}
	return v, false
}
