// Package show renders arbitrary values in a compact, unambiguous form for
// diagnostics: strings are quoted, collections are bracketed and nested
// values are rendered recursively with their own display form.
package show

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/authcorp/libs/go/maybe/internal/reflectx"
)

// Shower is implemented by values that render themselves.
type Shower interface {
	Show() string
}

// Show returns the display form of v.
func Show(v any) string {
	var p printer
	p.value(reflectx.Addressable(v))
	return p.String()
}

// printer renders into its builder. seen holds the maps, slices and pointers
// the printer is inside, and a value reached again renders as <cycle>.
type printer struct {
	strings.Builder
	seen reflectx.Stack
}

func (p *printer) value(v reflect.Value) {
	if !v.IsValid() {
		p.WriteString("nil")
		return
	}
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			p.WriteString("nil")
			return
		}
		rv, _ := reflectx.Readable(v)
		p.value(rv.Elem())
		return
	}
	if p.custom(v) {
		return
	}

	switch v.Kind() {
	case reflect.Bool:
		p.WriteString(strconv.FormatBool(v.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		p.WriteString(strconv.FormatInt(v.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		p.WriteString(strconv.FormatUint(v.Uint(), 10))
	case reflect.Float32:
		p.WriteString(formatFloat(v.Float(), 32))
	case reflect.Float64:
		p.WriteString(formatFloat(v.Float(), 64))
	case reflect.Complex64, reflect.Complex128:
		p.WriteString(strconv.FormatComplex(v.Complex(), 'g', -1, v.Type().Bits()))
	case reflect.String:
		p.WriteString(strconv.Quote(v.String()))
	case reflect.Slice, reflect.Array:
		leave, fresh := p.seen.Enter(v)
		if !fresh {
			p.WriteString("<cycle>")
			return
		}
		defer leave()
		p.WriteByte('[')
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				p.WriteString(", ")
			}
			p.value(v.Index(i))
		}
		p.WriteByte(']')
	case reflect.Map:
		p.mapValue(v)
	case reflect.Struct:
		p.structValue(v)
	case reflect.Pointer:
		p.pointer(v)
	default:
		p.WriteString(v.Type().String())
	}
}

// custom renders v through Shower, error or fmt.Stringer, in that order.
func (p *printer) custom(v reflect.Value) bool {
	v, ok := reflectx.Readable(v)
	if !ok {
		return false
	}
	if v.Kind() == reflect.Pointer && v.IsNil() {
		return false
	}
	switch x := v.Interface().(type) {
	case Shower:
		p.WriteString(x.Show())
	case error:
		p.WriteString(x.Error())
	case fmt.Stringer:
		p.WriteString(x.String())
	default:
		return false
	}
	return true
}

func (p *printer) mapValue(v reflect.Value) {
	leave, fresh := p.seen.Enter(v)
	if !fresh {
		p.WriteString("<cycle>")
		return
	}
	defer leave()

	type entry struct{ key, value string }
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: p.sub(iter.Key()), value: p.sub(iter.Value())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	p.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			p.WriteString(", ")
		}
		p.WriteString(e.key)
		p.WriteString(": ")
		p.WriteString(e.value)
	}
	p.WriteByte('}')
}

func (p *printer) structValue(v reflect.Value) {
	t := v.Type()
	p.WriteString(t.Name())
	p.WriteByte('{')
	for i := 0; i < v.NumField(); i++ {
		if i > 0 {
			p.WriteString(", ")
		}
		p.WriteString(t.Field(i).Name)
		p.WriteString(": ")
		p.value(v.Field(i))
	}
	p.WriteByte('}')
}

func (p *printer) pointer(v reflect.Value) {
	if v.IsNil() {
		p.WriteString("nil")
		return
	}
	leave, fresh := p.seen.Enter(v)
	if !fresh {
		p.WriteString("<cycle>")
		return
	}
	defer leave()

	p.WriteByte('&')
	p.value(v.Elem())
}

// sub renders v into a separate buffer sharing the cycle set.
func (p *printer) sub(v reflect.Value) string {
	s := printer{seen: p.seen}
	s.value(v)
	return s.String()
}

func formatFloat(f float64, bits int) string {
	if f == 0 && math.Signbit(f) {
		return "-0"
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}
