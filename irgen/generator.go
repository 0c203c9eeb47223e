package irgen

import (
	"kestrelc/ast"
	"kestrelc/ir"
	"kestrelc/report"
	"kestrelc/sem"
)

// Generator walks the resolved syntax forest and emits IR declarations into a
// module fragment, wiring parent and reference edges as it goes.  The
// generator mutates only the symbol table (binding symbols) and the fragment
// it owns; it performs no IO.
type Generator struct {
	ctx *Context

	// frag is the module fragment being populated.
	frag *ir.ModuleFragment
}

// NewGenerator creates a new generator for the given context.
func NewGenerator(ctx *Context) *Generator {
	return &Generator{
		ctx:  ctx,
		frag: ir.NewModuleFragment(ctx.Module),
	}
}

// Generate produces the IR module fragment for a collection of source files:
// one IR file per input, each populated with the declarations found via
// binding information, in source order.  References to declarations outside
// the current compilation set are left as unbound symbols.  A parent-patching
// pass runs over the finished fragment because member declarations can be
// generated out of order relative to their structural nesting.
func (g *Generator) Generate(files []*ast.File) *ir.ModuleFragment {
	for _, file := range files {
		g.frag.Files = append(g.frag.Files, g.genFile(file))
	}

	ir.PatchParents(g.frag)

	return g.frag
}

// genFile generates the IR file for a single source file.
func (g *Generator) genFile(file *ast.File) *ir.File {
	irFile := &ir.File{Name: file.Name}

	for _, def := range file.Defs {
		if decl := g.genDef(def); decl != nil {
			irFile.Decls = append(irFile.Decls, decl)
		}
	}

	return irFile
}

// genDef generates the IR declaration for a single definition.  Definitions
// whose descriptors belong to a different module are external dependencies
// and are skipped: references to them stay unbound for the resolver.
func (g *Generator) genDef(def ast.Def) ir.Decl {
	desc, ok := g.ctx.Bindings.DefDescriptor(def)
	if !ok {
		report.ReportICE("no binding information for definition `%s`", def.DefName())
	}

	if desc.Module() != g.ctx.Module {
		return nil
	}

	switch d := def.(type) {
	case *ast.ClassDef:
		return g.genClass(d, desc.(*sem.ClassDescriptor))
	case *ast.FuncDef:
		return g.genFunc(d, desc.(*sem.FuncDescriptor))
	case *ast.PropertyDef:
		return g.genProperty(d, desc.(*sem.PropertyDescriptor))
	default:
		report.ReportICE("unknown definition type %T", def)
		return nil
	}
}

// genClass generates the IR declaration for a class definition.
func (g *Generator) genClass(d *ast.ClassDef, desc *sem.ClassDescriptor) *ir.Class {
	sym := g.ctx.SymTab.ClassSymbol(desc)

	cls := &ir.Class{DeclBase: ir.NewDeclBase(sym)}
	g.ctx.SymTab.Bind(sym, cls)

	// Supertype references come from the resolved descriptor, not the labels:
	// the supertype class may live in another module, in which case its
	// symbol stays unbound here.
	for _, sup := range desc.Supertypes {
		cls.Supertypes = append(cls.Supertypes, &ir.TypeRef{Class: g.ctx.SymTab.ClassSymbol(sup)})
	}

	for _, member := range d.Members {
		if decl := g.genDef(member); decl != nil {
			cls.Members = append(cls.Members, decl)
		}
	}

	return cls
}

// genFunc generates the IR declaration for a function definition.
func (g *Generator) genFunc(d *ast.FuncDef, desc *sem.FuncDescriptor) *ir.Func {
	sym := g.ctx.SymTab.FuncSymbol(desc)

	fn := &ir.Func{DeclBase: ir.NewDeclBase(sym)}
	g.ctx.SymTab.Bind(sym, fn)

	for _, pd := range desc.Params {
		psym := g.ctx.SymTab.ParamSymbol(pd)

		param := &ir.Param{
			DeclBase: ir.NewDeclBase(psym),
			Type:     g.typeRef(pd.Type),
		}
		g.ctx.SymTab.Bind(psym, param)

		fn.Params = append(fn.Params, param)
	}

	fn.Return = g.typeRef(desc.Return)

	if d.Body != nil {
		fn.Body = g.genExpr(d.Body)
	}

	return fn
}

// genProperty generates the IR declaration for a property definition.
func (g *Generator) genProperty(d *ast.PropertyDef, desc *sem.PropertyDescriptor) *ir.Property {
	sym := g.ctx.SymTab.PropertySymbol(desc)

	prop := &ir.Property{
		DeclBase: ir.NewDeclBase(sym),
		Mutable:  desc.Mutable,
	}
	g.ctx.SymTab.Bind(sym, prop)

	prop.Type = g.typeRef(desc.Type)

	if d.Init != nil {
		prop.Init = g.genExpr(d.Init)
	}

	return prop
}

// typeRef creates a reference edge for a semantic type.  It returns nil for
// the "no type" value.
func (g *Generator) typeRef(typ sem.Type) *ir.TypeRef {
	if typ.IsNone() {
		return nil
	}

	return &ir.TypeRef{
		Class:    g.ctx.SymTab.ClassSymbol(typ.Class),
		Nullable: typ.Nullable,
	}
}
