package typeclass

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrMissingCapability is the sentinel matched by every CapabilityError.
var ErrMissingCapability = errors.New("typeclass: missing capability")

// CapabilityError reports an operation invoked on a value that lacks the
// capability it requires.
type CapabilityError struct {
	Capability Capability
	Type       string
}

// NewCapabilityError creates a CapabilityError for the dynamic type of v.
func NewCapabilityError(c Capability, v any) *CapabilityError {
	return &CapabilityError{Capability: c, Type: typeName(reflect.TypeOf(v))}
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("typeclass: %s does not satisfy %s", e.Type, e.Capability)
}

// Unwrap returns ErrMissingCapability for errors.Is.
func (e *CapabilityError) Unwrap() error {
	return ErrMissingCapability
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "nil"
	}
	return t.String()
}
