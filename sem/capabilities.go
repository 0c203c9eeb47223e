package sem

import "kestrelc/report"

// Capability is a typed key used to attach optional metadata to a module
// descriptor without a fixed schema.  Each key carries the static type of the
// value it maps to, so lookups through a key are always well typed.
type Capability[T any] struct {
	name string
}

// NewCapability creates a new capability key with the given name.  Two keys
// with the same name refer to the same capability slot: the value type is
// validated on every access.
func NewCapability[T any](name string) Capability[T] {
	return Capability[T]{name: name}
}

func (c Capability[T]) String() string {
	return c.name
}

// CapabilitySet is a small heterogeneous registry of capability values keyed
// by capability name.  The zero value is an empty, usable set.
type CapabilitySet struct {
	entries map[string]interface{}
}

// SetCapability stores a value for the given capability key.
func SetCapability[T any](set *CapabilitySet, key Capability[T], value T) {
	if set.entries == nil {
		set.entries = make(map[string]interface{})
	}

	set.entries[key.name] = value
}

// GetCapability retrieves the value stored for the given capability key.  The
// second return value is false if no value has been stored.  Accessing a slot
// through a key whose type disagrees with the stored value is a programming
// error.
func GetCapability[T any](set *CapabilitySet, key Capability[T]) (T, bool) {
	var zero T

	entry, ok := set.entries[key.name]
	if !ok {
		return zero, false
	}

	value, ok := entry.(T)
	if !ok {
		report.ReportICE("capability `%s` accessed with mismatched type: stored %T", key.name, entry)
	}

	return value, true
}

// -----------------------------------------------------------------------------

// Well-known module capabilities.
var (
	// CapBuiltins flags the module supplying the language's intrinsic types.
	CapBuiltins = NewCapability[bool]("builtins")

	// CapInterop flags a module representing an interop library.
	CapInterop = NewCapability[bool]("interop")
)
