package ir

import "kestrelc/sem"

// Expr represents an expression in IR form.  All IR expressions are typed.
type Expr interface {
	Node

	// Type is the yielded type of the expression.
	Type() sem.Type

	// SetType sets the type of the expression.
	SetType(sem.Type)
}

// ExprBase is the base struct for all IR expressions.
type ExprBase struct {
	NodeBase

	typ sem.Type
}

// NewExprBase creates a new expression base with the given type.
func NewExprBase(typ sem.Type) ExprBase {
	return ExprBase{typ: typ}
}

func (eb *ExprBase) Type() sem.Type {
	return eb.typ
}

func (eb *ExprBase) SetType(typ sem.Type) {
	eb.typ = typ
}

// -----------------------------------------------------------------------------

// Call represents a function call.  The target symbol may be unbound until
// the unbound-symbol resolver runs.
type Call struct {
	ExprBase

	// Target is the symbol of the called function.
	Target *Symbol

	// Args is the ordered list of argument expressions.
	Args []Expr
}

// GetValue reads the value of a property or parameter.
type GetValue struct {
	ExprBase

	// Target is the symbol of the read declaration.
	Target *Symbol
}

// SetValue assigns to a mutable property.
type SetValue struct {
	ExprBase

	// Target is the symbol of the assigned declaration.
	Target *Symbol

	// Value is the assigned expression.
	Value Expr
}

// Const represents a constant expression.  Kind is one of the constant kinds
// enumerated in the sem package.
type Const struct {
	ExprBase

	Kind  int
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

// Enumeration of type operator kinds.
const (
	// OpImplicitCast widens a value to an expected supertype.  Implicit casts
	// are not present in generated IR: they are inserted by the implicit-cast
	// post-processing step.
	OpImplicitCast = iota

	// OpCast is an explicit source-level cast.
	OpCast
)

// TypeOp applies a type operator to an operand expression.
type TypeOp struct {
	ExprBase

	// Op is one of the enumerated type operator kinds.
	Op int

	// Operand is the expression being converted.
	Operand Expr

	// Target is the reference to the destination type.
	Target *TypeRef
}
