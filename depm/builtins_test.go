package depm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kestrelc/depm"
	"kestrelc/ir"
	"kestrelc/irgen"
	"kestrelc/sem"
)

func TestDefaultBuiltins(t *testing.T) {
	builtins := depm.DefaultBuiltins()

	require.True(t, builtins.Module.IsBuiltins())
	require.Equal(t, []*sem.ModuleDescriptor{builtins.Module}, builtins.Module.Dependencies())
	require.NoError(t, sem.CheckDependencyCycle(builtins.Module))

	// The instance is process-wide.
	require.Same(t, builtins, depm.DefaultBuiltins())
}

func TestCreateBuiltInsFallsBackWithoutStdlib(t *testing.T) {
	dep := sem.NewModuleDescriptor("acme.collections")
	module := sem.NewModuleDescriptor("app")
	module.SetDependencies([]*sem.ModuleDescriptor{dep})

	builtins := depm.CreateBuiltIns(module)
	require.Same(t, depm.DefaultBuiltins(), builtins)

	// The input module is left untouched.
	require.False(t, module.IsBuiltins())
	require.Equal(t, []*sem.ModuleDescriptor{dep}, module.Dependencies())
}

func TestCreateBuiltInsFromStdlibArtifact(t *testing.T) {
	dir := t.TempDir()
	root := writeLibrary(t, dir, "core", `
name = "kestrel.core"
version = "1.4.0"
language-version = "1.2"
stdlib = true
packages = ["kestrel.core"]
`, map[string]string{"kestrel.core": `
[[classes]]
name = "Any"
`})

	proj := depm.NewProject("app", sem.CurrentVersion)
	li := depm.NewLibraryInfo(proj, &depm.Library{Name: "core"}, root, depm.NewTOMLMetadataLoader())
	require.True(t, li.IsStdlib())

	// The stdlib artifact hangs off a dependency of the compiled module.
	dep := sem.NewModuleDescriptor("kestrel.core")
	sem.SetCapability(dep.Capabilities(), depm.CapLibrary, li)

	module := sem.NewModuleDescriptor("app")
	module.SetDependencies([]*sem.ModuleDescriptor{dep})

	builtins := depm.CreateBuiltIns(module)
	require.NotSame(t, depm.DefaultBuiltins(), builtins)
	require.Equal(t, "kestrel.core", builtins.Module.Name)
	require.True(t, builtins.Module.IsBuiltins())
	require.Equal(t, []*sem.ModuleDescriptor{builtins.Module}, builtins.Module.Dependencies())

	got, ok := sem.GetCapability(builtins.Module.Capabilities(), depm.CapLibrary)
	require.True(t, ok)
	require.Same(t, li, got)

	// The provider serves declarations out of the artifact.
	ctx := irgen.NewContext(irgen.DefaultConfig(), module, sem.NewBindingInfo(), sem.CurrentVersion)
	frag := ir.NewModuleFragment(module)

	sym := ctx.SymTab.ClassSymbol(sem.NewClassDescriptor(module, "kestrel.core", "Any", sem.OriginDeserialized))
	irgen.ResolveUnbound(ctx, frag, []irgen.Provider{builtins.Provider}, nil)
	require.True(t, sym.IsBound())
}

func TestCreateBuiltInsIgnoresIncompatibleStdlib(t *testing.T) {
	dir := t.TempDir()
	root := writeLibrary(t, dir, "core", `
name = "kestrel.core"
version = "9.0.0"
language-version = "9.0"
stdlib = true
`, nil)

	proj := depm.NewProject("app", sem.CurrentVersion)
	li := depm.NewLibraryInfo(proj, &depm.Library{Name: "core"}, root, depm.NewTOMLMetadataLoader())

	dep := sem.NewModuleDescriptor("kestrel.core")
	sem.SetCapability(dep.Capabilities(), depm.CapLibrary, li)

	module := sem.NewModuleDescriptor("app")
	module.SetDependencies([]*sem.ModuleDescriptor{dep})

	require.Same(t, depm.DefaultBuiltins(), depm.CreateBuiltIns(module))
}

func TestFunctionInterfaceProvider(t *testing.T) {
	module := sem.NewModuleDescriptor("kestrel.core")
	ctx := irgen.NewContext(irgen.DefaultConfig(), module, sem.NewBindingInfo(), sem.CurrentVersion)

	provider := depm.FunctionInterfaceProvider{Pkg: depm.FunctionsPkg}

	symFor := func(pkg, name string) *ir.Symbol {
		return ctx.SymTab.ClassSymbol(sem.NewClassDescriptor(module, pkg, name, sem.OriginDeserialized))
	}

	decl := provider.DeclForSymbol(ctx, symFor(depm.FunctionsPkg, "Function2"))
	require.NotNil(t, decl)
	require.Equal(t, "Function2", decl.DeclName())

	require.NotNil(t, provider.DeclForSymbol(ctx, symFor(depm.FunctionsPkg, "Function0")))

	// Only `Function<arity>` names in the functions package qualify.
	require.Nil(t, provider.DeclForSymbol(ctx, symFor(depm.FunctionsPkg, "Function")))
	require.Nil(t, provider.DeclForSymbol(ctx, symFor(depm.FunctionsPkg, "FunctionX")))
	require.Nil(t, provider.DeclForSymbol(ctx, symFor(depm.FunctionsPkg, "Function2x")))
	require.Nil(t, provider.DeclForSymbol(ctx, symFor("other.pkg", "Function2")))
}

func TestForwardDeclarationProvider(t *testing.T) {
	module := sem.NewModuleDescriptor("kestrel.core")
	ctx := irgen.NewContext(irgen.DefaultConfig(), module, sem.NewBindingInfo(), sem.CurrentVersion)

	provider := depm.ForwardDeclarationProvider{PkgPrefix: depm.ForwardPkgPrefix}

	symFor := func(pkg, name string) *ir.Symbol {
		return ctx.SymTab.ClassSymbol(sem.NewClassDescriptor(module, pkg, name, sem.OriginDeserialized))
	}

	require.NotNil(t, provider.DeclForSymbol(ctx, symFor(depm.ForwardPkgPrefix, "Runnable")))
	require.NotNil(t, provider.DeclForSymbol(ctx, symFor(depm.ForwardPkgPrefix+".host", "Window")))

	// A package merely sharing the prefix string is not a forward package.
	require.Nil(t, provider.DeclForSymbol(ctx, symFor(depm.ForwardPkgPrefix+"ish", "Thing")))
	require.Nil(t, provider.DeclForSymbol(ctx, symFor("other.pkg", "Thing")))

	// Non-class symbols are declined.
	fnSym := ctx.SymTab.FuncSymbol(sem.NewFuncDescriptor(module, depm.ForwardPkgPrefix, "run", sem.OriginDeserialized))
	require.Nil(t, provider.DeclForSymbol(ctx, fnSym))
}
