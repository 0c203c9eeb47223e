// Package ast defines the syntax forest consumed by IR generation: the parsed
// representation of Kestrel source files as produced by the surface-syntax
// parser.  The nodes in this package are inputs only -- nothing in the
// translation pipeline ever mutates them.
package ast

import "kestrelc/report"

// The abstract interface for all AST nodes.
type ASTNode interface {
	// The text span of the AST.
	Span() *report.TextSpan
}

// A utility base struct for all AST nodes.
type ASTBase struct {
	// The span over which the AST node occurs.
	span *report.TextSpan
}

// NewASTBaseOn creates a new AST base with the given span.
func NewASTBaseOn(span *report.TextSpan) ASTBase {
	return ASTBase{span: span}
}

// NewASTBaseOver creates a new AST base spanning over two spans.
func NewASTBaseOver(start, end *report.TextSpan) ASTBase {
	return ASTBase{span: report.NewSpanOver(start, end)}
}

func (ab ASTBase) Span() *report.TextSpan {
	return ab.span
}

// -----------------------------------------------------------------------------

// File represents a single parsed Kestrel source file: a root of the syntax
// forest.  Top-level definitions appear in source order.
type File struct {
	// Name is the file name as it should appear in generated IR.
	Name string

	// Defs is the ordered list of top-level definitions in the file.
	Defs []Def
}

// TypeLabel is a surface-syntax reference to a named type.
type TypeLabel struct {
	ASTBase

	// Name is the qualified name the label spells out.
	Name string

	// Nullable indicates whether the label carries a nullability marker.
	Nullable bool
}
