package ast

// Expr represents an expression simple or complex.  All expression nodes
// implement the `Expr` interface.  Expressions carry no semantic information
// themselves: their types and resolved targets live in the binding information
// produced by semantic analysis.
type Expr interface {
	ASTNode
}

// ExprBase is the base struct for all expressions.
type ExprBase struct {
	ASTBase
}

// NewExprBase creates a new expression base on the given AST base.
func NewExprBase(base ASTBase) ExprBase {
	return ExprBase{ASTBase: base}
}

// -----------------------------------------------------------------------------

// Call represents a function call expression.
type Call struct {
	ExprBase

	// Fn is the expression naming the function being called.
	Fn Expr

	// Args is the ordered list of argument expressions.
	Args []Expr
}

// NameRef is a reference to a named declaration.
type NameRef struct {
	ExprBase

	Name string
}

// Enumeration of literal kinds.
const (
	LitInt = iota
	LitFloat
	LitString
	LitBool
	LitNull
)

// Literal represents a literal constant expression.
type Literal struct {
	ExprBase

	// Kind is one of the enumerated literal kinds.
	Kind int

	// Value is the literal text as written in source.
	Value string
}

// Return represents a return expression.  Value may be nil.
type Return struct {
	ExprBase

	Value Expr
}

// Block represents a block of sequenced expressions.
type Block struct {
	ExprBase

	Stmts []Expr
}

// Assign represents an assignment to a mutable property or local.
type Assign struct {
	ExprBase

	Target Expr
	Value  Expr
}
