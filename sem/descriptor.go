package sem

// Enumeration of descriptor origins.
const (
	// OriginSource marks a descriptor produced by analyzing project source.
	OriginSource = iota

	// OriginDeserialized marks a descriptor deserialized from a prebuilt
	// library.
	OriginDeserialized

	// OriginContainer marks a deserialized descriptor whose declaration site
	// is a multi-file-class container: resolving a reference to it requires
	// synthesizing a facade class.
	OriginContainer
)

// Descriptor is the semantic representation of a single declaration.  The
// semantic analyzer produces descriptors for project source; library
// deserialization produces them for prebuilt artifacts.
type Descriptor interface {
	// Name returns the declared name.
	Name() string

	// Pkg returns the dotted name of the package containing the declaration.
	Pkg() string

	// Module returns the module owning the declaration.
	Module() *ModuleDescriptor

	// Parent returns the enclosing declaration's descriptor, or nil for a
	// top-level declaration.
	Parent() Descriptor

	// Origin returns one of the enumerated descriptor origins.
	Origin() int
}

// DescBase is the base type for all descriptors.
type DescBase struct {
	name   string
	pkg    string
	module *ModuleDescriptor
	parent Descriptor
	origin int
}

// NewDescBase creates a new descriptor base.
func NewDescBase(module *ModuleDescriptor, pkg, name string, origin int) DescBase {
	return DescBase{name: name, pkg: pkg, module: module, origin: origin}
}

func (db *DescBase) Name() string {
	return db.name
}

func (db *DescBase) Pkg() string {
	return db.pkg
}

func (db *DescBase) Module() *ModuleDescriptor {
	return db.module
}

func (db *DescBase) Parent() Descriptor {
	return db.parent
}

func (db *DescBase) Origin() int {
	return db.origin
}

// SetParent sets the enclosing declaration's descriptor.  It is called once by
// whatever constructs the enclosing descriptor.
func (db *DescBase) SetParent(parent Descriptor) {
	db.parent = parent
}

// -----------------------------------------------------------------------------

// ClassDescriptor is the descriptor for a class declaration.
type ClassDescriptor struct {
	DescBase

	// Supertypes is the ordered list of resolved supertype classes.
	Supertypes []*ClassDescriptor

	// Members is the ordered list of member declarations.
	Members []Descriptor

	// Annotations is the list of annotations applied to the class.
	Annotations []*AnnotationDescriptor
}

// NewClassDescriptor creates a new class descriptor.
func NewClassDescriptor(module *ModuleDescriptor, pkg, name string, origin int) *ClassDescriptor {
	return &ClassDescriptor{DescBase: NewDescBase(module, pkg, name, origin)}
}

// AddMember appends a member declaration and sets its parent link.
func (cd *ClassDescriptor) AddMember(member Descriptor) {
	switch m := member.(type) {
	case *FuncDescriptor:
		m.SetParent(cd)
	case *PropertyDescriptor:
		m.SetParent(cd)
	case *ClassDescriptor:
		m.SetParent(cd)
	}

	cd.Members = append(cd.Members, member)
}

// InheritsFrom indicates whether cd has other somewhere in its supertype
// closure.  A class does not inherit from itself.
func (cd *ClassDescriptor) InheritsFrom(other *ClassDescriptor) bool {
	for _, sup := range cd.Supertypes {
		if sup == other || sup.InheritsFrom(other) {
			return true
		}
	}

	return false
}

// FuncDescriptor is the descriptor for a function declaration.
type FuncDescriptor struct {
	DescBase

	// Params is the ordered list of parameter descriptors.
	Params []*ParamDescriptor

	// Return is the function's return type.  The zero type means the function
	// returns nothing.
	Return Type

	// Annotations is the list of annotations applied to the function.
	Annotations []*AnnotationDescriptor
}

// NewFuncDescriptor creates a new function descriptor.
func NewFuncDescriptor(module *ModuleDescriptor, pkg, name string, origin int) *FuncDescriptor {
	return &FuncDescriptor{DescBase: NewDescBase(module, pkg, name, origin)}
}

// AddParam appends a parameter descriptor and sets its parent link.
func (fd *FuncDescriptor) AddParam(param *ParamDescriptor) {
	param.SetParent(fd)
	fd.Params = append(fd.Params, param)
}

// ParamDescriptor is the descriptor for a function parameter.
type ParamDescriptor struct {
	DescBase

	// Type is the parameter's declared type.
	Type Type
}

// NewParamDescriptor creates a new parameter descriptor.
func NewParamDescriptor(module *ModuleDescriptor, pkg, name string, typ Type) *ParamDescriptor {
	return &ParamDescriptor{DescBase: NewDescBase(module, pkg, name, OriginSource), Type: typ}
}

// PropertyDescriptor is the descriptor for a property declaration.
type PropertyDescriptor struct {
	DescBase

	// Type is the property's declared type.
	Type Type

	// Mutable indicates whether the property can be reassigned.
	Mutable bool

	// Annotations is the list of annotations applied to the property.
	Annotations []*AnnotationDescriptor
}

// NewPropertyDescriptor creates a new property descriptor.
func NewPropertyDescriptor(module *ModuleDescriptor, pkg, name string, origin int) *PropertyDescriptor {
	return &PropertyDescriptor{DescBase: NewDescBase(module, pkg, name, origin)}
}

// -----------------------------------------------------------------------------

// AnnotationDescriptor is a resolved annotation application: the annotation
// class together with its constant arguments.
type AnnotationDescriptor struct {
	// Class is the annotation class being applied.
	Class *ClassDescriptor

	// Args is the list of constant arguments.
	Args []ConstValue
}

// ConstValue is a constant value appearing in an annotation argument.
type ConstValue struct {
	// Kind is one of the enumerated constant kinds.
	Kind int

	// Value is the constant's textual form.
	Value string
}

// Enumeration of constant kinds.
const (
	ConstInt = iota
	ConstFloat
	ConstString
	ConstBool
	ConstNull
)
