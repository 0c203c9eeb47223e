package sem

// Type is a semantic type: a class together with a nullability marker.  The
// zero Type (nil class) represents "no type" and is used for functions that
// return nothing.
type Type struct {
	// Class is the class underlying the type.
	Class *ClassDescriptor

	// Nullable indicates whether the type admits null.
	Nullable bool
}

// IsNone indicates whether this is the zero "no type" value.
func (t Type) IsNone() bool {
	return t.Class == nil
}

// Equal indicates whether two types are identical.
func (t Type) Equal(other Type) bool {
	return t.Class == other.Class && t.Nullable == other.Nullable
}

// AssignableTo indicates whether a value of type t can be used where a value
// of type dst is expected, possibly via an implicit widening to a supertype.
func (t Type) AssignableTo(dst Type) bool {
	if t.IsNone() || dst.IsNone() {
		return false
	}

	if t.Nullable && !dst.Nullable {
		return false
	}

	return t.Class == dst.Class || t.Class.InheritsFrom(dst.Class)
}

// Repr returns the type's user-facing representation.
func (t Type) Repr() string {
	if t.IsNone() {
		return "<none>"
	}

	repr := t.Class.Name()
	if t.Nullable {
		repr += "?"
	}

	return repr
}
