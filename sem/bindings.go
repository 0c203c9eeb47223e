package sem

import "kestrelc/ast"

// BindingInfo is the read-only mapping from syntax nodes to the semantic facts
// resolved for them: declaration descriptors, expression types, expected
// types, and overload resolution results.  It is populated by the semantic
// analyzer before IR generation begins and is never mutated afterwards; IR
// generation trusts its internal consistency.
type BindingInfo struct {
	defDescs     map[ast.Def]Descriptor
	exprTypes    map[ast.Expr]Type
	expected     map[ast.Expr]Type
	callees      map[*ast.Call]*FuncDescriptor
	nameRefs     map[*ast.NameRef]Descriptor
	annotClasses map[*ast.AnnotationUse]*ClassDescriptor
}

// NewBindingInfo creates a new, empty binding information table.
func NewBindingInfo() *BindingInfo {
	return &BindingInfo{
		defDescs:     make(map[ast.Def]Descriptor),
		exprTypes:    make(map[ast.Expr]Type),
		expected:     make(map[ast.Expr]Type),
		callees:      make(map[*ast.Call]*FuncDescriptor),
		nameRefs:     make(map[*ast.NameRef]Descriptor),
		annotClasses: make(map[*ast.AnnotationUse]*ClassDescriptor),
	}
}

// -----------------------------------------------------------------------------
// Recording methods, called by the semantic analyzer as it resolves nodes.

// RecordDef records the descriptor produced for a definition.
func (bi *BindingInfo) RecordDef(def ast.Def, desc Descriptor) {
	bi.defDescs[def] = desc
}

// RecordType records the resolved type of an expression.
func (bi *BindingInfo) RecordType(expr ast.Expr, typ Type) {
	bi.exprTypes[expr] = typ
}

// RecordExpectedType records the type expected of an expression by its
// surrounding context.
func (bi *BindingInfo) RecordExpectedType(expr ast.Expr, typ Type) {
	bi.expected[expr] = typ
}

// RecordCallee records the function a call resolved to.
func (bi *BindingInfo) RecordCallee(call *ast.Call, fn *FuncDescriptor) {
	bi.callees[call] = fn
}

// RecordNameRef records the declaration a name reference resolved to.
func (bi *BindingInfo) RecordNameRef(ref *ast.NameRef, desc Descriptor) {
	bi.nameRefs[ref] = desc
}

// RecordAnnotationClass records the annotation class an annotation use
// resolved to.
func (bi *BindingInfo) RecordAnnotationClass(use *ast.AnnotationUse, class *ClassDescriptor) {
	bi.annotClasses[use] = class
}

// -----------------------------------------------------------------------------
// Lookup methods, called during IR generation.

// DefDescriptor returns the descriptor produced for a definition.
func (bi *BindingInfo) DefDescriptor(def ast.Def) (Descriptor, bool) {
	desc, ok := bi.defDescs[def]
	return desc, ok
}

// TypeOf returns the resolved type of an expression.
func (bi *BindingInfo) TypeOf(expr ast.Expr) (Type, bool) {
	typ, ok := bi.exprTypes[expr]
	return typ, ok
}

// ExpectedTypeOf returns the type expected of an expression by its context.
func (bi *BindingInfo) ExpectedTypeOf(expr ast.Expr) (Type, bool) {
	typ, ok := bi.expected[expr]
	return typ, ok
}

// Callee returns the function a call resolved to.
func (bi *BindingInfo) Callee(call *ast.Call) (*FuncDescriptor, bool) {
	fn, ok := bi.callees[call]
	return fn, ok
}

// RefDescriptor returns the declaration a name reference resolved to.
func (bi *BindingInfo) RefDescriptor(ref *ast.NameRef) (Descriptor, bool) {
	desc, ok := bi.nameRefs[ref]
	return desc, ok
}

// AnnotationClass returns the annotation class an annotation use resolved to.
func (bi *BindingInfo) AnnotationClass(use *ast.AnnotationUse) (*ClassDescriptor, bool) {
	class, ok := bi.annotClasses[use]
	return class, ok
}
