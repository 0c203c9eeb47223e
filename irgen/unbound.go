package irgen

import (
	"kestrelc/ir"
	"kestrelc/sem"
)

// defaultMaxResolveRounds bounds the fixed-point loop when the configuration
// does not specify its own bound.  Each round must resolve at least one
// symbol to continue, so this only trips if providers keep manufacturing
// mutually-referential unbound symbols indefinitely.
const defaultMaxResolveRounds = 1000

// Provider lazily materializes declarations for unbound symbols.  Variants
// include library-backed providers and synthetic providers; a provider that
// cannot produce the declaration for a symbol returns nil to decline.
//
// Providers must not bind the symbol themselves: the resolver binds the
// returned declaration and attaches it to the fragment's external list.
type Provider interface {
	// DeclForSymbol attempts to produce the declaration for the given
	// unbound symbol, or returns nil.
	DeclForSymbol(ctx *Context, sym *ir.Symbol) ir.Decl
}

// EmptyProvider is a provider that declines every symbol.
type EmptyProvider struct{}

func (EmptyProvider) DeclForSymbol(*Context, *ir.Symbol) ir.Decl {
	return nil
}

// CompositeProvider tries an ordered list of providers, first match wins.
type CompositeProvider struct {
	Providers []Provider
}

func (cp CompositeProvider) DeclForSymbol(ctx *Context, sym *ir.Symbol) ir.Decl {
	for _, p := range cp.Providers {
		if decl := p.DeclForSymbol(ctx, sym); decl != nil {
			return decl
		}
	}

	return nil
}

// ResolveUnbound repeatedly resolves outstanding unbound symbols against the
// given ordered provider list until a fixed point: either no provider can
// resolve any remaining symbol or all symbols are resolved.  Resolving one
// symbol can introduce new unbound symbols transitively (a materialized
// declaration may reference another unresolved type), which is why the loop
// re-queries the symbol table each round.  The facade generator, if non-nil,
// is consulted first for symbols originating in deserialized multi-file-class
// containers.
//
// The function is idempotent on already-resolved symbols, so it can be
// re-invoked after post-processing.  Symbols that remain unbound when the
// fixed point is reached are left as-is; downstream consumers decide whether
// that is an error.  It returns the number of symbols resolved.
func ResolveUnbound(ctx *Context, frag *ir.ModuleFragment, providers []Provider, facade FacadeGenerator) int {
	maxRounds := ctx.Config.MaxResolveRounds
	if maxRounds <= 0 {
		maxRounds = defaultMaxResolveRounds
	}

	total := 0
	for round := 0; round < maxRounds; round++ {
		progress := 0

		for _, sym := range ctx.SymTab.UnboundSymbols() {
			// A symbol from this round's snapshot may have been bound
			// transitively while resolving an earlier symbol.
			if sym.IsBound() {
				continue
			}

			decl := resolveSymbol(ctx, sym, providers, facade)
			if decl == nil {
				continue
			}

			ctx.SymTab.Bind(sym, decl)
			frag.External = append(frag.External, decl)
			progress++
		}

		total += progress
		if progress == 0 {
			break
		}
	}

	if total > 0 {
		// Materialized declarations need parent links into the fragment.
		ir.PatchParents(frag)
	}

	return total
}

// resolveSymbol attempts to produce the declaration for a single unbound
// symbol.
func resolveSymbol(ctx *Context, sym *ir.Symbol, providers []Provider, facade FacadeGenerator) ir.Decl {
	if sym.Desc.Origin() == sem.OriginContainer && facade != nil {
		if cls := facade(sym.Desc); cls != nil {
			return cls
		}
	}

	for _, p := range providers {
		if decl := p.DeclForSymbol(ctx, sym); decl != nil {
			return decl
		}
	}

	return nil
}
