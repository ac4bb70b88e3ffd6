// Package typeid identifies values across independently built copies of a
// type through a namespaced, versioned string of the form
// "namespace/Name@version".
package typeid

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
)

// Identified is implemented by types that carry a type identifier.
type Identified interface {
	TypeID() string
}

// Identifier is a parsed type identifier. Namespace is empty when the
// identifier has none; Version defaults to 0.
type Identifier struct {
	Namespace string `json:"namespace"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
}

var pattern = regexp.MustCompile(`^([\s\S]+)/([\s\S]+?)(?:@([0-9]+))?$`)

// Of returns the type identifier of v, falling back to the Go type name.
func Of(v any) string {
	if id, ok := v.(Identified); ok {
		return id.TypeID()
	}
	if t := reflect.TypeOf(v); t != nil {
		return t.String()
	}
	return "nil"
}

// Parse splits s into its components. Strings that do not match the
// identifier form are returned as a bare name.
func Parse(s string) Identifier {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return Identifier{Name: s}
	}
	id := Identifier{Namespace: m[1], Name: m[2]}
	if m[3] != "" {
		if v, err := strconv.Atoi(m[3]); err == nil {
			id.Version = v
		}
	}
	return id
}

func (id Identifier) String() string {
	if id.Namespace == "" {
		return id.Name
	}
	return fmt.Sprintf("%s/%s@%d", id.Namespace, id.Name, id.Version)
}
