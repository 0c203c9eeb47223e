package ir

import "kestrelc/sem"

// Node is the abstract interface for all IR tree nodes.
type Node interface {
	// ParentNode returns the node's parent in the IR tree.  It is nil until
	// the parent-patching pass has run over the node.
	ParentNode() Node

	// SetParentNode sets the node's parent link.
	SetParentNode(Node)
}

// NodeBase is a utility base struct for all IR nodes.
type NodeBase struct {
	parent Node
}

func (nb *NodeBase) ParentNode() Node {
	return nb.parent
}

func (nb *NodeBase) SetParentNode(parent Node) {
	nb.parent = parent
}

// -----------------------------------------------------------------------------

// Decl represents a declaration in IR form.  Every declaration carries a
// bound symbol assigned at creation time and, once the tree is finalized, has
// exactly one parent container.
type Decl interface {
	Node

	// Symbol returns the symbol assigned to this declaration.
	Symbol() *Symbol

	// DeclName returns the declared name.
	DeclName() string
}

// DeclBase is the base type for all IR declarations.
type DeclBase struct {
	NodeBase

	sym *Symbol
}

// NewDeclBase creates a new declaration base carrying the given symbol.
func NewDeclBase(sym *Symbol) DeclBase {
	return DeclBase{sym: sym}
}

func (db *DeclBase) Symbol() *Symbol {
	return db.sym
}

func (db *DeclBase) DeclName() string {
	return db.sym.Name()
}

// -----------------------------------------------------------------------------

// ModuleFragment is the root owned container of all IR generated for one
// module.  It is exclusively owned by the generation pipeline until handed off
// to downstream stages.
type ModuleFragment struct {
	NodeBase

	// Name is the name of the module this fragment was generated for.
	Name string

	// Module is the descriptor of the module.
	Module *sem.ModuleDescriptor

	// Files is the list of IR files, one per input source file, in input
	// order.
	Files []*File

	// External holds declarations materialized by the unbound-symbol resolver
	// from providers: declarations referenced by this module but defined
	// outside its compilation set.
	External []Decl
}

// NewModuleFragment creates a new, empty module fragment for a module.
func NewModuleFragment(module *sem.ModuleDescriptor) *ModuleFragment {
	return &ModuleFragment{Name: module.Name, Module: module}
}

// File is the IR container corresponding to a single source file.
type File struct {
	NodeBase

	// Name is the source file name.
	Name string

	// Decls is the ordered list of top-level declarations in the file.
	Decls []Decl
}

// -----------------------------------------------------------------------------

// TypeRef is a reference edge to a class type.  The class symbol may be
// unbound until the unbound-symbol resolver runs.
type TypeRef struct {
	NodeBase

	// Class is the symbol of the referenced class.
	Class *Symbol

	// Nullable indicates whether the reference admits null.
	Nullable bool
}

// Class is an IR class declaration.
type Class struct {
	DeclBase

	// Supertypes is the ordered list of supertype references.
	Supertypes []*TypeRef

	// Members is the ordered list of member declarations.
	Members []Decl

	// Annotations is the list of materialized annotations applied to the
	// class.  It is populated by the annotation-generation step.
	Annotations []*AnnotationCall
}

// Func is an IR function declaration.
type Func struct {
	DeclBase

	// Params is the ordered list of parameter declarations.
	Params []*Param

	// Return is the reference to the return type.  It is nil if the function
	// returns nothing.
	Return *TypeRef

	// Body is the function body.  It is nil for abstract functions and for
	// declarations materialized from libraries.
	Body Expr

	// Annotations is the list of materialized annotations applied to the
	// function.
	Annotations []*AnnotationCall
}

// Param is an IR function parameter.
type Param struct {
	DeclBase

	// Type is the reference to the parameter's type.
	Type *TypeRef
}

// Property is an IR property declaration.
type Property struct {
	DeclBase

	// Type is the reference to the property's type.
	Type *TypeRef

	// Mutable indicates whether the property can be reassigned.
	Mutable bool

	// Init is the initializer expression.  It may be nil.
	Init Expr

	// Annotations is the list of materialized annotations applied to the
	// property.
	Annotations []*AnnotationCall
}

// AnnotationCall is a materialized annotation: a reference to the annotation
// class together with its constant arguments.
type AnnotationCall struct {
	NodeBase

	// Class is the symbol of the annotation class.
	Class *Symbol

	// Args is the list of constant arguments.
	Args []*Const
}
