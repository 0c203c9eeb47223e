// Package ir defines Kestrel's declaration-level intermediate representation:
// an owned, cross-referenced tree of module fragments, files, declarations,
// and expressions produced by IR generation and consumed by later lowering
// stages.
package ir

import (
	"kestrelc/report"
	"kestrelc/sem"
)

// Enumeration of symbol kinds.
const (
	SymClass = iota
	SymFunc
	SymProperty
	SymParam
)

// Symbol is a stable reference handle binding usage sites to a declaration.
// A symbol is created unbound and is bound to its declaration exactly once;
// references to declarations that have not been generated yet (or that live in
// prebuilt libraries) hold unbound symbols until the unbound-symbol resolver
// runs.
type Symbol struct {
	// Kind is one of the enumerated symbol kinds.
	Kind int

	// Desc is the declaration identity this symbol stands for.
	Desc sem.Descriptor

	decl   Decl
	uniqID uint64
}

// NewSymbol creates a new unbound symbol for the given declaration identity.
func NewSymbol(kind int, desc sem.Descriptor) *Symbol {
	return &Symbol{Kind: kind, Desc: desc}
}

// Name returns the name of the declaration the symbol stands for.
func (s *Symbol) Name() string {
	return s.Desc.Name()
}

// IsBound indicates whether the symbol has been bound to a declaration.
func (s *Symbol) IsBound() bool {
	return s.decl != nil
}

// Decl returns the declaration the symbol is bound to, or nil if the symbol
// is still unbound.
func (s *Symbol) Decl() Decl {
	return s.decl
}

// Bind binds the symbol to its declaration.  Binding an already-bound symbol
// is a programming error.
func (s *Symbol) Bind(decl Decl) {
	if s.decl != nil {
		report.ReportICE("symbol `%s` bound twice", s.Name())
	}

	s.decl = decl
}

// UniqueID returns the symbol's uniqueness id.  It is zero until the
// uniqueness-id computation pass has run.
func (s *Symbol) UniqueID() uint64 {
	return s.uniqID
}

// SetUniqueID assigns the symbol's uniqueness id.
func (s *Symbol) SetUniqueID(id uint64) {
	s.uniqID = id
}
