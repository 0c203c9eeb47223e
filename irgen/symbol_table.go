package irgen

import (
	"kestrelc/ir"
	"kestrelc/report"
	"kestrelc/sem"
)

// SymbolTable owns the mapping from declaration identities to symbols for one
// generation session.  The same identity always maps to the same symbol
// instance within one table lifetime, which is what lets forward references
// work: a reference to a not-yet-generated declaration creates an unbound
// symbol that is later bound when (or if) the declaration is generated or
// pulled from a provider.
type SymbolTable struct {
	// syms maps each requested declaration identity to its shared symbol.
	syms map[sem.Descriptor]*ir.Symbol

	// unbound records symbols in creation order so that resolution and
	// diagnostics are deterministic.  Symbols are not removed when bound; the
	// list is filtered on access.
	unbound []*ir.Symbol
}

// NewSymbolTable creates a new, empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{syms: make(map[sem.Descriptor]*ir.Symbol)}
}

// symbolFor provides or creates the symbol for a declaration identity.  A
// newly created symbol starts unbound.
func (st *SymbolTable) symbolFor(kind int, desc sem.Descriptor) *ir.Symbol {
	if sym, ok := st.syms[desc]; ok {
		return sym
	}

	sym := ir.NewSymbol(kind, desc)
	st.syms[desc] = sym
	st.unbound = append(st.unbound, sym)

	return sym
}

// ClassSymbol provides or creates the symbol for a class declaration.
func (st *SymbolTable) ClassSymbol(desc *sem.ClassDescriptor) *ir.Symbol {
	return st.symbolFor(ir.SymClass, desc)
}

// FuncSymbol provides or creates the symbol for a function declaration.
func (st *SymbolTable) FuncSymbol(desc *sem.FuncDescriptor) *ir.Symbol {
	return st.symbolFor(ir.SymFunc, desc)
}

// PropertySymbol provides or creates the symbol for a property declaration.
func (st *SymbolTable) PropertySymbol(desc *sem.PropertyDescriptor) *ir.Symbol {
	return st.symbolFor(ir.SymProperty, desc)
}

// ParamSymbol provides or creates the symbol for a function parameter.
func (st *SymbolTable) ParamSymbol(desc *sem.ParamDescriptor) *ir.Symbol {
	return st.symbolFor(ir.SymParam, desc)
}

// SymbolOf provides or creates the symbol for an arbitrary descriptor,
// selecting the symbol kind from the descriptor's concrete type.
func (st *SymbolTable) SymbolOf(desc sem.Descriptor) *ir.Symbol {
	switch d := desc.(type) {
	case *sem.ClassDescriptor:
		return st.ClassSymbol(d)
	case *sem.FuncDescriptor:
		return st.FuncSymbol(d)
	case *sem.PropertyDescriptor:
		return st.PropertySymbol(d)
	case *sem.ParamDescriptor:
		return st.ParamSymbol(d)
	default:
		report.ReportICE("no symbol kind for descriptor type %T", desc)
		return nil
	}
}

// Bind binds a symbol to its declaration, removing it from the unbound set.
func (st *SymbolTable) Bind(sym *ir.Symbol, decl ir.Decl) {
	sym.Bind(decl)
}

// UnboundSymbols returns the symbols that are still unbound, in creation
// order.
func (st *SymbolTable) UnboundSymbols() []*ir.Symbol {
	// Compact the recorded list while filtering so that repeated resolution
	// passes don't rescan long-bound symbols.
	live := st.unbound[:0]
	for _, sym := range st.unbound {
		if !sym.IsBound() {
			live = append(live, sym)
		}
	}
	st.unbound = live

	result := make([]*ir.Symbol, len(live))
	copy(result, live)
	return result
}

// ComputeUniqueIDs assigns deterministic uniqueness ids to every declaration
// in the fully generated tree rooted at root.  Ids are assigned in traversal
// order starting from 1, so two runs over the same tree produce the same ids.
// Encountering a declaration with no assigned symbol is a programming error.
func (st *SymbolTable) ComputeUniqueIDs(root ir.Node) {
	var next uint64 = 1

	ir.Walk(root, func(n ir.Node) bool {
		if decl, ok := n.(ir.Decl); ok {
			sym := decl.Symbol()
			if sym == nil {
				report.ReportICE("cannot compute uniqueness id: declaration of type %T has no assigned symbol", decl)
			}

			sym.SetUniqueID(next)
			next++
		}

		return true
	})
}
