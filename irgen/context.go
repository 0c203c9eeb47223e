// Package irgen implements the IR-generation pipeline: translating a resolved
// syntax forest plus binding information into an owned IR module fragment,
// resolving unbound symbols against declaration providers, and running the
// post-processing pipeline over the completed tree.
package irgen

import (
	"kestrelc/ir"
	"kestrelc/sem"
)

// Context is the immutable bundle of shared services passed to every
// generation step: the module being generated, the binding information from
// semantic analysis, the language version, the symbol table, and the optional
// generator extensions.  It is a pure data holder constructed once per
// module-generation session and shared for the pipeline's lifetime.
type Context struct {
	// Config is the generation configuration.
	Config Config

	// Module is the descriptor of the module being generated.
	Module *sem.ModuleDescriptor

	// Bindings is the binding information for the module's sources.
	Bindings *sem.BindingInfo

	// Version is the language version the module is compiled against.
	Version sem.LanguageVersion

	// SymTab is the symbol table for this generation session.
	SymTab *SymbolTable

	// Extensions is the capability set of optional generator hooks.
	Extensions *sem.CapabilitySet
}

// Generator extension capabilities.
var (
	// ExtFacadeGenerator supplies a custom facade-class generator used when
	// resolving symbols originating in deserialized multi-file-class
	// containers.
	ExtFacadeGenerator = sem.NewCapability[FacadeGenerator]("facade-generator")
)

// FacadeGenerator synthesizes a facade class for a declaration originating in
// a deserialized multi-file-class container.  Returning nil declines.
type FacadeGenerator func(desc sem.Descriptor) *ir.Class

// NewContext creates a new generator context with a fresh symbol table.
func NewContext(cfg Config, module *sem.ModuleDescriptor, bindings *sem.BindingInfo, version sem.LanguageVersion) *Context {
	return NewSharedContext(cfg, module, bindings, version, NewSymbolTable())
}

// NewSharedContext creates a new generator context sharing an explicitly
// provided symbol table.  Sharing a table between contexts lets several
// fragments reference each other's declarations through common symbols.
func NewSharedContext(cfg Config, module *sem.ModuleDescriptor, bindings *sem.BindingInfo, version sem.LanguageVersion, symtab *SymbolTable) *Context {
	return &Context{
		Config:     cfg,
		Module:     module,
		Bindings:   bindings,
		Version:    version,
		SymTab:     symtab,
		Extensions: &sem.CapabilitySet{},
	}
}

// facadeGenerator returns the facade generator to use for this session: the
// extension hook if one is registered and facade generation is enabled.
func (ctx *Context) facadeGenerator() FacadeGenerator {
	if !ctx.Config.GenerateFacades {
		return nil
	}

	gen, _ := sem.GetCapability(ctx.Extensions, ExtFacadeGenerator)
	return gen
}
