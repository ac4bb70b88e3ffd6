package typeclass

import (
	"math"
	"reflect"

	"github.com/authcorp/libs/go/maybe/internal/reflectx"
)

// Equals reports whether x and y are structurally equal. Values of different
// dynamic types are never equal. NaN equals NaN; -0 and +0 differ.
func Equals(x, y any) bool {
	var c comparer
	return c.equal(reflectx.Addressable(x), reflectx.Addressable(y))
}

// Lte reports whether x is less than or equal to y. Values of different
// dynamic types are unordered and Lte returns false.
func Lte(x, y any) bool {
	var c comparer
	return c.lte(reflectx.Addressable(x), reflectx.Addressable(y))
}

// Concat combines x and y. It panics with a *CapabilityError when the
// values are not Semigroups of the same type.
func Concat(x, y any) any {
	xv, yv := reflect.ValueOf(x), reflect.ValueOf(y)
	if !xv.IsValid() || !yv.IsValid() || xv.Type() != yv.Type() {
		panic(NewCapabilityError(Semigroup, x))
	}
	return concat(xv, yv).Interface()
}

// comparer tracks the maps and slices being compared on either side, so that
// self-referential values compare without unbounded recursion. A comparison
// that reaches values already being compared on both sides is taken to hold.
type comparer struct {
	xs, ys reflectx.Stack
}

func (c *comparer) enter(x, y reflect.Value) (leave func(), fresh bool) {
	leaveX, freshX := c.xs.Enter(x)
	leaveY, freshY := c.ys.Enter(y)
	if !freshX && !freshY {
		return func() {}, false
	}
	return func() {
		leaveX()
		leaveY()
	}, true
}

// method returns the named method of x and the readable form of y, when both
// can be read.
func method(x, y reflect.Value, name string) (reflect.Value, reflect.Value, bool) {
	if !hasMethod(x.Type(), name, boolType) {
		return reflect.Value{}, reflect.Value{}, false
	}
	rx, okX := reflectx.Readable(x)
	ry, okY := reflectx.Readable(y)
	if !okX || !okY {
		return reflect.Value{}, reflect.Value{}, false
	}
	return rx.MethodByName(name), ry, true
}

func (c *comparer) equal(x, y reflect.Value) bool {
	if !x.IsValid() || !y.IsValid() {
		return !x.IsValid() && !y.IsValid()
	}
	if x.Type() != y.Type() {
		return false
	}
	t := x.Type()
	if t.Kind() == reflect.Interface {
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		rx, _ := reflectx.Readable(x)
		ry, _ := reflectx.Readable(y)
		return c.equal(rx.Elem(), ry.Elem())
	}
	if m, arg, ok := method(x, y, "Equals"); ok {
		return m.Call([]reflect.Value{arg})[0].Bool()
	}

	switch t.Kind() {
	case reflect.Bool:
		return x.Bool() == y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() == y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() == y.Uint()
	case reflect.Float32, reflect.Float64:
		return equalFloat(x.Float(), y.Float())
	case reflect.Complex64, reflect.Complex128:
		a, b := x.Complex(), y.Complex()
		return equalFloat(real(a), real(b)) && equalFloat(imag(a), imag(b))
	case reflect.String:
		return x.String() == y.String()
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		if t.Kind() == reflect.Slice && x.Pointer() == y.Pointer() {
			return true
		}
		leave, fresh := c.enter(x, y)
		if !fresh {
			return true
		}
		defer leave()
		for i := 0; i < x.Len(); i++ {
			if !c.equal(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		if x.Pointer() == y.Pointer() {
			return true
		}
		leave, fresh := c.enter(x, y)
		if !fresh {
			return true
		}
		defer leave()
		iter := x.MapRange()
		for iter.Next() {
			other := y.MapIndex(iter.Key())
			if !other.IsValid() || !c.equal(iter.Value(), other) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !c.equal(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return x.Pointer() == y.Pointer()
	}
	return false
}

func (c *comparer) lte(x, y reflect.Value) bool {
	switch {
	case !x.IsValid():
		return true
	case !y.IsValid():
		return false
	case x.Type() != y.Type():
		return false
	}
	t := x.Type()
	if t.Kind() == reflect.Interface {
		switch {
		case x.IsNil():
			return true
		case y.IsNil():
			return false
		}
		rx, _ := reflectx.Readable(x)
		ry, _ := reflectx.Readable(y)
		return c.lte(rx.Elem(), ry.Elem())
	}
	if m, arg, ok := method(x, y, "Lte"); ok {
		return m.Call([]reflect.Value{arg})[0].Bool()
	}

	switch t.Kind() {
	case reflect.Bool:
		return !x.Bool() || y.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return x.Int() <= y.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return x.Uint() <= y.Uint()
	case reflect.Float32, reflect.Float64:
		return lteFloat(x.Float(), y.Float())
	case reflect.String:
		return x.String() <= y.String()
	case reflect.Slice, reflect.Array:
		leave, fresh := c.enter(x, y)
		if !fresh {
			return true
		}
		defer leave()
		n := min(x.Len(), y.Len())
		for i := 0; i < n; i++ {
			if !c.equal(x.Index(i), y.Index(i)) {
				return c.lte(x.Index(i), y.Index(i))
			}
		}
		return x.Len() <= y.Len()
	case reflect.Struct:
		for i := 0; i < x.NumField(); i++ {
			if !c.equal(x.Field(i), y.Field(i)) {
				return c.lte(x.Field(i), y.Field(i))
			}
		}
		return true
	}
	return false
}

func concat(x, y reflect.Value) reflect.Value {
	t := x.Type()
	if hasMethod(t, "Concat", t) {
		return x.MethodByName("Concat").Call([]reflect.Value{y})[0]
	}
	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(x.String() + y.String()).Convert(t)
	case reflect.Slice:
		out := reflect.MakeSlice(t, 0, x.Len()+y.Len())
		out = reflect.AppendSlice(out, x)
		return reflect.AppendSlice(out, y)
	case reflect.Map:
		out := reflect.MakeMapWithSize(t, x.Len()+y.Len())
		for _, m := range []reflect.Value{x, y} {
			iter := m.MapRange()
			for iter.Next() {
				out.SetMapIndex(iter.Key(), iter.Value())
			}
		}
		return out
	}
	panic(&CapabilityError{Capability: Semigroup, Type: t.String()})
}

func equalFloat(a, b float64) bool {
	if a == b {
		return a != 0 || math.Signbit(a) == math.Signbit(b)
	}
	return math.IsNaN(a) && math.IsNaN(b)
}

// lteFloat orders NaN first and -0 before +0, so that it agrees with
// equalFloat.
func lteFloat(a, b float64) bool {
	switch {
	case math.IsNaN(a):
		return true
	case math.IsNaN(b):
		return false
	case a == 0 && b == 0:
		return math.Signbit(a) || !math.Signbit(b)
	}
	return a <= b
}
