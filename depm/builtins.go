package depm

import (
	"strings"
	"sync"

	"kestrelc/ir"
	"kestrelc/irgen"
	"kestrelc/report"
	"kestrelc/sem"
)

// FunctionsPkg is the built-ins package holding the synthesized function
// interface classes (Function0, Function1, ...).
const FunctionsPkg = "kestrel.core.functions"

// ForwardPkgPrefix marks packages holding forward declarations for interop:
// any class in such a package can be synthesized as an empty declaration.
const ForwardPkgPrefix = "kestrel.forward"

// BuiltinsModule is the module supplying the language's intrinsic types,
// together with the provider that materializes its declarations.
type BuiltinsModule struct {
	// Module is the built-ins module descriptor.  Its dependency list
	// contains only itself.
	Module *sem.ModuleDescriptor

	// Provider materializes built-in declarations for unbound symbols.
	Provider irgen.Provider
}

var (
	defaultBuiltins     *BuiltinsModule
	defaultBuiltinsOnce sync.Once
)

// DefaultBuiltins returns the process-wide default built-ins instance: a
// built-ins module with no native declarations, used whenever no richer one
// can be constructed.  The instance is built lazily and never mutated after
// construction.
func DefaultBuiltins() *BuiltinsModule {
	defaultBuiltinsOnce.Do(func() {
		module := sem.NewModuleDescriptor("kestrel.builtins")
		sem.SetCapability(module.Capabilities(), sem.CapBuiltins, true)
		module.SetDependencies([]*sem.ModuleDescriptor{module})

		defaultBuiltins = &BuiltinsModule{
			Module:   module,
			Provider: irgen.EmptyProvider{},
		}
	})

	return defaultBuiltins
}

// CreateBuiltIns constructs the built-ins module for a compilation module by
// locating, among the module's transitive dependency closure, the compatible
// library flagged as the standard-library artifact.  If no such library
// exists, or any step of building the richer module fails, the default
// built-ins instance is returned instead; the input module is never mutated.
func CreateBuiltIns(module *sem.ModuleDescriptor) *BuiltinsModule {
	stdlib := findStdlib(module)
	if stdlib == nil {
		return DefaultBuiltins()
	}

	res, err := stdlib.Resolved()
	if err != nil {
		// Unreachable for a library that passed the compatibility check, but
		// degrade the same way resolution failures do elsewhere.
		return DefaultBuiltins()
	}

	builtins := sem.NewModuleDescriptor(res.Manifest.Name)
	sem.SetCapability(builtins.Capabilities(), sem.CapBuiltins, true)
	sem.SetCapability(builtins.Capabilities(), CapLibrary, stdlib)

	fragments, ok := CreateLibraryPackageFragmentProvider(stdlib, builtins)
	if !ok {
		return DefaultBuiltins()
	}

	builtins.SetDependencies([]*sem.ModuleDescriptor{builtins})

	return &BuiltinsModule{
		Module: builtins,
		Provider: irgen.CompositeProvider{Providers: []irgen.Provider{
			fragments,
			FunctionInterfaceProvider{Pkg: FunctionsPkg},
			ForwardDeclarationProvider{PkgPrefix: ForwardPkgPrefix},
		}},
	}
}

// findStdlib locates the standard-library artifact in a module's dependency
// closure.  More than one candidate is a configuration problem: the first is
// used and the rest are reported.
func findStdlib(module *sem.ModuleDescriptor) *LibraryInfo {
	var found *LibraryInfo

	for _, dep := range module.TransitiveDependencies() {
		li, ok := sem.GetCapability(dep.Capabilities(), CapLibrary)
		if !ok {
			continue
		}

		if !li.Compatible() || !li.IsStdlib() {
			continue
		}

		if found == nil {
			found = li
		} else if found != li {
			report.ReportModuleWarning(dep.Name, "multiple standard-library artifacts in dependency closure; using `%s`", found.Root())
		}
	}

	return found
}

// -----------------------------------------------------------------------------

// FunctionInterfaceProvider synthesizes the function interface classes
// (Function0, Function1, ...) on demand: they are generated rather than
// stored in the standard-library artifact.
type FunctionInterfaceProvider struct {
	// Pkg is the package the function interfaces live in.
	Pkg string
}

func (fp FunctionInterfaceProvider) DeclForSymbol(ctx *irgen.Context, sym *ir.Symbol) ir.Decl {
	desc, ok := sym.Desc.(*sem.ClassDescriptor)
	if !ok || desc.Pkg() != fp.Pkg {
		return nil
	}

	if !isFunctionInterfaceName(desc.Name()) {
		return nil
	}

	return &ir.Class{DeclBase: ir.NewDeclBase(sym)}
}

// isFunctionInterfaceName matches names of the form `Function<arity>`.
func isFunctionInterfaceName(name string) bool {
	if !strings.HasPrefix(name, "Function") {
		return false
	}

	rest := name[len("Function"):]
	if rest == "" {
		return false
	}

	for _, c := range rest {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}

// ForwardDeclarationProvider synthesizes empty classes for symbols living in
// forward-declaration packages, where interop code may reference types whose
// real definitions are never deserialized.
type ForwardDeclarationProvider struct {
	// PkgPrefix selects the packages the provider covers.
	PkgPrefix string
}

func (fp ForwardDeclarationProvider) DeclForSymbol(ctx *irgen.Context, sym *ir.Symbol) ir.Decl {
	desc, ok := sym.Desc.(*sem.ClassDescriptor)
	if !ok {
		return nil
	}

	pkg := desc.Pkg()
	if pkg != fp.PkgPrefix && !strings.HasPrefix(pkg, fp.PkgPrefix+".") {
		return nil
	}

	return &ir.Class{DeclBase: ir.NewDeclBase(sym)}
}
