package typeclass

import (
	"reflect"
	"sync"

	"github.com/authcorp/libs/go/maybe/internal/reflectx"
)

var (
	reporterType = reflect.TypeFor[Reporter]()
	boolType     = reflect.TypeFor[bool]()
)

// typeInfo is the result of analysing a type without looking at a value.
// dynamic types contain interfaces or Reporters and must be analysed per value.
type typeInfo struct {
	caps    Capability
	dynamic bool
}

var typeCache sync.Map // reflect.Type -> typeInfo

// Detect returns the capabilities of v.
func Detect(v any) Capability {
	var d detector
	return d.value(reflectx.Addressable(v))
}

// IsSetoid reports whether v supports Equals.
func IsSetoid(v any) bool { return Detect(v).Has(Setoid) }

// IsOrd reports whether v supports Lte.
func IsOrd(v any) bool { return Detect(v).Has(Ord) }

// IsSemigroup reports whether v supports Concat.
func IsSemigroup(v any) bool { return Detect(v).Has(Semigroup) }

// detector walks a value whose type analysis was inconclusive.
type detector struct {
	active reflectx.Stack
}

func (d *detector) value(v reflect.Value) Capability {
	if !v.IsValid() {
		return Setoid | Ord
	}
	t := v.Type()
	info := infoOf(t)
	if !info.dynamic {
		return info.caps
	}

	if t.Kind() == reflect.Interface {
		if v.IsNil() {
			return Setoid | Ord
		}
		rv, _ := reflectx.Readable(v)
		return d.value(rv.Elem())
	}
	rv, readable := reflectx.Readable(v)
	if t.Implements(reporterType) {
		if t.Kind() == reflect.Pointer && v.IsNil() {
			return Setoid
		}
		if readable {
			return normalize(rv.Interface().(Reporter).Capabilities())
		}
	}

	// A map or slice reached again through its own elements contributes
	// nothing the outer walk has not already accounted for.
	leave, fresh := d.active.Enter(v)
	if !fresh {
		return All
	}
	defer leave()

	var structural Capability
	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		structural = Setoid | Ord
		for i := 0; i < v.Len(); i++ {
			structural &= d.value(v.Index(i))
		}
		structural &= Setoid | Ord
		if t.Kind() == reflect.Slice {
			structural |= Semigroup
		}
	case reflect.Map:
		structural = Setoid
		iter := v.MapRange()
		for iter.Next() {
			structural &= d.value(iter.Value())
		}
		structural &= Setoid
		structural |= Semigroup
	case reflect.Struct:
		structural = Setoid | Ord
		for i := 0; i < v.NumField(); i++ {
			structural &= d.value(v.Field(i))
		}
		structural &= Setoid | Ord
	case reflect.Pointer:
		structural = Setoid
	}
	// Methods of a value that cannot be read cannot be called either.
	if !readable {
		return normalize(structural)
	}
	return combine(methodCaps(t), structural)
}

func infoOf(t reflect.Type) typeInfo {
	if cached, ok := typeCache.Load(t); ok {
		return cached.(typeInfo)
	}
	info := analyze(t, make(map[reflect.Type]bool))
	typeCache.Store(t, info)
	return info
}

func analyze(t reflect.Type, visiting map[reflect.Type]bool) typeInfo {
	if t.Kind() == reflect.Interface || t.Implements(reporterType) {
		return typeInfo{dynamic: true}
	}
	// A type reached again through its own elements contributes nothing
	// the outer analysis has not already accounted for.
	if visiting[t] {
		return typeInfo{caps: All}
	}
	visiting[t] = true
	defer delete(visiting, t)

	var (
		structural Capability
		dynamic    bool
	)
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		structural = Setoid | Ord
	case reflect.Complex64, reflect.Complex128:
		structural = Setoid
	case reflect.String:
		structural = Setoid | Ord | Semigroup
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		structural = Setoid
	case reflect.Slice, reflect.Array:
		elem := analyze(t.Elem(), visiting)
		dynamic = elem.dynamic
		structural = elem.caps & (Setoid | Ord)
		if t.Kind() == reflect.Slice {
			structural |= Semigroup
		}
	case reflect.Map:
		elem := analyze(t.Elem(), visiting)
		dynamic = elem.dynamic
		structural = elem.caps&Setoid | Semigroup
	case reflect.Struct:
		structural = Setoid | Ord
		for i := 0; i < t.NumField(); i++ {
			field := analyze(t.Field(i).Type, visiting)
			dynamic = dynamic || field.dynamic
			structural &= field.caps
		}
		structural &= Setoid | Ord
	}
	return typeInfo{caps: combine(methodCaps(t), structural), dynamic: dynamic}
}

// combine merges method-declared and structural capabilities. A type that
// declares its own Equals gets no structural order, since the structural
// order may disagree with the declared equality.
func combine(methods, structural Capability) Capability {
	c := methods
	if !methods.Has(Setoid) {
		c |= structural & (Setoid | Ord)
	}
	c |= structural & Semigroup
	return normalize(c)
}

// methodCaps reports which of Equals, Lte and Concat t declares over its
// own type.
func methodCaps(t reflect.Type) Capability {
	var c Capability
	if hasMethod(t, "Equals", boolType) {
		c |= Setoid
	}
	if hasMethod(t, "Lte", boolType) {
		c |= Ord
	}
	if hasMethod(t, "Concat", t) {
		c |= Semigroup
	}
	return c
}

func hasMethod(t reflect.Type, name string, out reflect.Type) bool {
	if t.Kind() == reflect.Interface {
		return false
	}
	m, ok := t.MethodByName(name)
	if !ok {
		return false
	}
	ft := m.Type
	return ft.NumIn() == 2 && ft.In(1) == t && ft.NumOut() == 1 && ft.Out(0) == out
}
