package optics

import (
	"errors"
	"fmt"
)

// ErrCapability is matched by every CapabilityError.
var ErrCapability = errors.New("optics: operation not supported by optic")

// CapabilityError reports an operation invoked on an optic that does not
// define it, such as view on a prism. It is raised with panic: it marks a
// broken composition at the call site, never a missing value.
type CapabilityError struct {
	Op         string
	Optic      string
	Capability Capability
}

func (e *CapabilityError) Error() string {
	name := e.Optic
	if name == "" {
		name = "<root>"
	}
	return fmt.Sprintf("optics: %s is not defined for %s %q", e.Op, e.Capability, name)
}

// Is matches ErrCapability and other CapabilityErrors for the same operation.
func (e *CapabilityError) Is(target error) bool {
	if target == ErrCapability {
		return true
	}
	if t, ok := target.(*CapabilityError); ok {
		return t.Op == e.Op
	}
	return false
}

// Unwrap returns ErrCapability.
func (e *CapabilityError) Unwrap() error {
	return ErrCapability
}
