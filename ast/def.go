package ast

// Def represents a definition in user source code: either a top level
// definition in a file or a member definition nested in a class.
type Def interface {
	ASTNode

	// DefName returns the name this definition defines.
	DefName() string

	// Annotations returns the annotations applied to this definition.
	Annotations() []*AnnotationUse
}

// DefBase is the base type for all definition types.
type DefBase struct {
	ASTBase

	name   string
	annots []*AnnotationUse
}

// NewDefBase creates a new definition base with the given name and
// annotations.
func NewDefBase(name string, annots []*AnnotationUse) DefBase {
	return DefBase{name: name, annots: annots}
}

func (db *DefBase) DefName() string {
	return db.name
}

func (db *DefBase) Annotations() []*AnnotationUse {
	return db.annots
}

// AnnotationUse is a single annotation applied to a definition.  Its argument
// expressions are restricted to constant literals by the parser.
type AnnotationUse struct {
	ASTBase

	// Name is the name of the annotation class being applied.
	Name string

	// Args is the list of constant arguments to the annotation.
	Args []Expr
}

// -----------------------------------------------------------------------------

// ClassDef is an AST node for a class definition.
type ClassDef struct {
	DefBase

	// Supertypes is the ordered list of supertype labels of the class.
	Supertypes []*TypeLabel

	// Members is the ordered list of member definitions of the class.
	Members []Def
}

// FuncDef is an AST node for a function definition.
type FuncDef struct {
	DefBase

	Params []FuncParam

	// ReturnType is the labeled return type.  It is nil if the function
	// returns nothing.
	ReturnType *TypeLabel

	// Body is the body expression.  It is nil for abstract functions.
	Body Expr
}

// FuncParam represents a function parameter.
type FuncParam struct {
	Name string
	Type *TypeLabel
}

// PropertyDef is an AST node for a property definition.
type PropertyDef struct {
	DefBase

	// Type is the labeled type of the property.
	Type *TypeLabel

	// Mutable indicates whether the property can be reassigned.
	Mutable bool

	// Init is the initializer expression.  It may be nil.
	Init Expr
}
