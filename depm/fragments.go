package depm

import (
	"kestrelc/ir"
	"kestrelc/irgen"
	"kestrelc/report"
	"kestrelc/sem"
)

// CreateLibraryPackageFragmentProvider constructs a declaration provider
// covering all package names declared in a library's module header.  It
// returns no provider (nil, false) for an incompatible library -- in that
// case no package contents are ever requested from the metadata loader -- and
// likewise when the header itself cannot be loaded.
func CreateLibraryPackageFragmentProvider(li *LibraryInfo, module *sem.ModuleDescriptor) (irgen.Provider, bool) {
	if !li.Compatible() {
		return nil, false
	}

	// Compatible implies resolvable.
	res, err := li.Resolved()
	if err != nil {
		return nil, false
	}

	header, err := li.loader.LoadHeader(res)
	if err != nil {
		report.ReportModuleWarning(res.Manifest.Name, "unable to load module header: %s", err.Error())
		return nil, false
	}

	lp := &libraryProvider{
		li:     li,
		res:    res,
		module: module,
		pkgs:   make(map[string]struct{}),
		loaded: make(map[string][]sem.Descriptor),
	}
	for _, pkg := range header.Packages {
		lp.pkgs[pkg] = struct{}{}
	}

	return lp, true
}

// libraryProvider is the library-backed declaration provider: given an
// unbound symbol whose declaration lives in one of the library's packages, it
// loads that package's contents on demand and materializes the matching
// declaration.
type libraryProvider struct {
	li     *LibraryInfo
	res    *ResolvedLibrary
	module *sem.ModuleDescriptor

	// pkgs is the set of package names the header declares.
	pkgs map[string]struct{}

	// loaded caches package contents; failed packages cache as nil so the
	// loader is asked once.
	loaded map[string][]sem.Descriptor
}

func (lp *libraryProvider) DeclForSymbol(ctx *irgen.Context, sym *ir.Symbol) ir.Decl {
	pkg := sym.Desc.Pkg()
	if _, ok := lp.pkgs[pkg]; !ok {
		return nil
	}

	desc := lp.findDescriptor(pkg, sym.Desc)
	if desc == nil {
		return nil
	}

	return materializeDecl(ctx, sym, desc)
}

// findDescriptor locates the library's own descriptor matching an unbound
// symbol's identity.  Identities may be distinct descriptor instances when
// the semantic analyzer used a different deserialization session, so matching
// falls back to package, name, and declaration kind.
func (lp *libraryProvider) findDescriptor(pkg string, want sem.Descriptor) sem.Descriptor {
	contents, ok := lp.loaded[pkg]
	if !ok {
		var err error
		contents, err = lp.li.loader.LoadPackage(lp.res, lp.module, pkg)
		if err != nil {
			// A package that fails to load contributes nothing; the symbol
			// stays unbound for downstream diagnostics.
			report.ReportModuleWarning(lp.res.Manifest.Name, "unable to load package `%s`: %s", pkg, err.Error())
			contents = nil
		}

		lp.loaded[pkg] = contents
	}

	for _, desc := range contents {
		if desc == want {
			return desc
		}

		if desc.Name() == want.Name() && sameDescriptorKind(desc, want) {
			return desc
		}
	}

	return nil
}

// sameDescriptorKind indicates whether two descriptors declare the same kind
// of thing.
func sameDescriptorKind(a, b sem.Descriptor) bool {
	switch a.(type) {
	case *sem.ClassDescriptor:
		_, ok := b.(*sem.ClassDescriptor)
		return ok
	case *sem.FuncDescriptor:
		_, ok := b.(*sem.FuncDescriptor)
		return ok
	case *sem.PropertyDescriptor:
		_, ok := b.(*sem.PropertyDescriptor)
		return ok
	default:
		return false
	}
}

// -----------------------------------------------------------------------------

// materializeDecl builds the IR declaration for a deserialized descriptor.
// Reference edges go through the session's symbol table, so a materialized
// declaration can transitively introduce new unbound symbols that later
// resolution rounds pick up.  The returned declaration is not bound to sym;
// the resolver does that.
func materializeDecl(ctx *irgen.Context, sym *ir.Symbol, desc sem.Descriptor) ir.Decl {
	switch d := desc.(type) {
	case *sem.ClassDescriptor:
		cls := &ir.Class{DeclBase: ir.NewDeclBase(sym)}

		for _, sup := range d.Supertypes {
			cls.Supertypes = append(cls.Supertypes, &ir.TypeRef{Class: ctx.SymTab.ClassSymbol(sup)})
		}

		for _, member := range d.Members {
			msym := ctx.SymTab.SymbolOf(member)
			if msym.IsBound() {
				continue
			}

			mdecl := materializeDecl(ctx, msym, member)
			ctx.SymTab.Bind(msym, mdecl)
			cls.Members = append(cls.Members, mdecl)
		}

		return cls
	case *sem.FuncDescriptor:
		fn := &ir.Func{DeclBase: ir.NewDeclBase(sym)}

		for _, pd := range d.Params {
			psym := ctx.SymTab.ParamSymbol(pd)

			param := &ir.Param{
				DeclBase: ir.NewDeclBase(psym),
				Type:     typeRefTo(ctx, pd.Type),
			}
			ctx.SymTab.Bind(psym, param)

			fn.Params = append(fn.Params, param)
		}

		fn.Return = typeRefTo(ctx, d.Return)

		return fn
	case *sem.PropertyDescriptor:
		return &ir.Property{
			DeclBase: ir.NewDeclBase(sym),
			Type:     typeRefTo(ctx, d.Type),
			Mutable:  d.Mutable,
		}
	default:
		return nil
	}
}

// typeRefTo creates a reference edge for a semantic type, or nil for the "no
// type" value.
func typeRefTo(ctx *irgen.Context, typ sem.Type) *ir.TypeRef {
	if typ.IsNone() {
		return nil
	}

	return &ir.TypeRef{
		Class:    ctx.SymTab.ClassSymbol(typ.Class),
		Nullable: typ.Nullable,
	}
}
