package irgen_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kestrelc/ir"
	"kestrelc/irgen"
	"kestrelc/sem"
)

// stubProvider materializes empty classes for a fixed set of descriptors and
// counts how often it is consulted.  A dependency list lets a materialized
// class reference further classes, exercising transitive resolution.
type stubProvider struct {
	known map[sem.Descriptor][]*sem.ClassDescriptor
	asked int
}

func newStubProvider() *stubProvider {
	return &stubProvider{known: make(map[sem.Descriptor][]*sem.ClassDescriptor)}
}

func (sp *stubProvider) provides(desc *sem.ClassDescriptor, supertypes ...*sem.ClassDescriptor) {
	sp.known[desc] = supertypes
}

func (sp *stubProvider) DeclForSymbol(ctx *irgen.Context, sym *ir.Symbol) ir.Decl {
	sp.asked++

	supertypes, ok := sp.known[sym.Desc]
	if !ok {
		return nil
	}

	cls := &ir.Class{DeclBase: ir.NewDeclBase(sym)}
	for _, sup := range supertypes {
		cls.Supertypes = append(cls.Supertypes, &ir.TypeRef{Class: ctx.SymTab.ClassSymbol(sup)})
	}

	return cls
}

func TestResolveUnboundBindsAndAttaches(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	extDesc := sem.NewClassDescriptor(lib, "lib", "Ext", sem.OriginDeserialized)
	sym := ctx.SymTab.ClassSymbol(extDesc)

	provider := newStubProvider()
	provider.provides(extDesc)

	resolved := irgen.ResolveUnbound(ctx, frag, []irgen.Provider{provider}, nil)
	require.Equal(t, 1, resolved)
	require.True(t, sym.IsBound())
	require.Len(t, frag.External, 1)
	require.Same(t, sym.Decl(), frag.External[0])

	// Materialized declarations are parented into the fragment.
	require.Same(t, ir.Node(frag), frag.External[0].ParentNode())
}

func TestResolveUnboundTransitive(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	// Child's materialized declaration references Base, which no symbol
	// mentions until Child resolves.
	baseDesc := sem.NewClassDescriptor(lib, "lib", "Base", sem.OriginDeserialized)
	childDesc := sem.NewClassDescriptor(lib, "lib", "Child", sem.OriginDeserialized)

	ctx.SymTab.ClassSymbol(childDesc)

	provider := newStubProvider()
	provider.provides(baseDesc)
	provider.provides(childDesc, baseDesc)

	resolved := irgen.ResolveUnbound(ctx, frag, []irgen.Provider{provider}, nil)
	require.Equal(t, 2, resolved)
	require.Len(t, frag.External, 2)
	require.True(t, ctx.SymTab.ClassSymbol(baseDesc).IsBound())
	require.Empty(t, ctx.SymTab.UnboundSymbols())
}

func TestResolveUnboundFirstMatchWins(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	extDesc := sem.NewClassDescriptor(lib, "lib", "Ext", sem.OriginDeserialized)
	sym := ctx.SymTab.ClassSymbol(extDesc)

	first := newStubProvider()
	first.provides(extDesc)
	second := newStubProvider()
	second.provides(extDesc)

	irgen.ResolveUnbound(ctx, frag, []irgen.Provider{first, second}, nil)
	require.True(t, sym.IsBound())
	require.Equal(t, 1, first.asked)
	require.Zero(t, second.asked)
}

func TestResolveUnboundLeavesUnresolvable(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	sym := ctx.SymTab.ClassSymbol(sem.NewClassDescriptor(lib, "lib", "Missing", sem.OriginDeserialized))

	resolved := irgen.ResolveUnbound(ctx, frag, []irgen.Provider{irgen.EmptyProvider{}}, nil)
	require.Zero(t, resolved)
	require.False(t, sym.IsBound())
	require.Empty(t, frag.External)
	require.Len(t, ctx.SymTab.UnboundSymbols(), 1)
}

func TestResolveUnboundIdempotent(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	extDesc := sem.NewClassDescriptor(lib, "lib", "Ext", sem.OriginDeserialized)
	ctx.SymTab.ClassSymbol(extDesc)

	provider := newStubProvider()
	provider.provides(extDesc)

	require.Equal(t, 1, irgen.ResolveUnbound(ctx, frag, []irgen.Provider{provider}, nil))
	require.Zero(t, irgen.ResolveUnbound(ctx, frag, []irgen.Provider{provider}, nil))
	require.Len(t, frag.External, 1)
}

func TestResolveUnboundFacadeForContainerOrigin(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	lib := sem.NewModuleDescriptor("lib")

	ctx := newTestContext(module, sem.NewBindingInfo())
	frag := ir.NewModuleFragment(module)

	containerDesc := sem.NewClassDescriptor(lib, "lib", "Widgets", sem.OriginContainer)
	sym := ctx.SymTab.ClassSymbol(containerDesc)

	// The facade generator takes precedence over providers for
	// container-origin symbols.
	provider := newStubProvider()
	provider.provides(containerDesc)

	facade := func(desc sem.Descriptor) *ir.Class {
		return &ir.Class{DeclBase: ir.NewDeclBase(ctx.SymTab.SymbolOf(desc))}
	}

	irgen.ResolveUnbound(ctx, frag, []irgen.Provider{provider}, facade)
	require.True(t, sym.IsBound())
	require.Zero(t, provider.asked)
}
