package irgen_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"kestrelc/ast"
	"kestrelc/ir"
	"kestrelc/irgen"
	"kestrelc/sem"
)

// newTestContext builds a generator context over the given module and binding
// information with the default configuration.
func newTestContext(module *sem.ModuleDescriptor, bindings *sem.BindingInfo) *irgen.Context {
	return irgen.NewContext(irgen.DefaultConfig(), module, bindings, sem.CurrentVersion)
}

// classDef builds a class definition and records its descriptor.
func classDef(bindings *sem.BindingInfo, desc *sem.ClassDescriptor) *ast.ClassDef {
	def := &ast.ClassDef{DefBase: ast.NewDefBase(desc.Name(), nil)}
	bindings.RecordDef(def, desc)
	return def
}

func TestGenerateTwoFilesWithSupertype(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	bindings := sem.NewBindingInfo()

	fooDesc := sem.NewClassDescriptor(module, "app", "Foo", sem.OriginSource)
	barDesc := sem.NewClassDescriptor(module, "app", "Bar", sem.OriginSource)
	barDesc.Supertypes = []*sem.ClassDescriptor{fooDesc}

	fileA := &ast.File{Name: "a.ks", Defs: []ast.Def{classDef(bindings, fooDesc)}}
	fileB := &ast.File{Name: "b.ks", Defs: []ast.Def{classDef(bindings, barDesc)}}

	ctx := newTestContext(module, bindings)
	frag := irgen.NewGenerator(ctx).Generate([]*ast.File{fileA, fileB})

	require.Len(t, frag.Files, 2)

	var names []string
	for _, file := range frag.Files {
		for _, decl := range file.Decls {
			names = append(names, decl.DeclName())
		}
	}
	require.Empty(t, cmp.Diff([]string{"Foo", "Bar"}, names))

	// Bar's supertype reference is bound to Foo's declaration: both classes
	// live in the same compilation set.
	foo := frag.Files[0].Decls[0].(*ir.Class)
	bar := frag.Files[1].Decls[0].(*ir.Class)
	require.Len(t, bar.Supertypes, 1)
	require.True(t, bar.Supertypes[0].Class.IsBound())
	require.Same(t, ir.Decl(foo), bar.Supertypes[0].Class.Decl())

	// No unbound symbols remain for a self-contained module.
	require.Empty(t, ctx.SymTab.UnboundSymbols())
}

func TestGenerateSourceOrderPreserved(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	bindings := sem.NewBindingInfo()

	var defs []ast.Def
	for _, name := range []string{"Delta", "Alpha", "Charlie", "Bravo"} {
		defs = append(defs, classDef(bindings, sem.NewClassDescriptor(module, "app", name, sem.OriginSource)))
	}

	ctx := newTestContext(module, bindings)
	frag := irgen.NewGenerator(ctx).Generate([]*ast.File{{Name: "a.ks", Defs: defs}})

	var names []string
	for _, decl := range frag.Files[0].Decls {
		names = append(names, decl.DeclName())
	}
	require.Equal(t, []string{"Delta", "Alpha", "Charlie", "Bravo"}, names)
}

func TestGenerateSkipsExternalDefinitions(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	other := sem.NewModuleDescriptor("lib")
	bindings := sem.NewBindingInfo()

	external := classDef(bindings, sem.NewClassDescriptor(other, "lib", "Ext", sem.OriginSource))
	local := classDef(bindings, sem.NewClassDescriptor(module, "app", "Local", sem.OriginSource))

	ctx := newTestContext(module, bindings)
	frag := irgen.NewGenerator(ctx).Generate([]*ast.File{{Name: "a.ks", Defs: []ast.Def{external, local}}})

	require.Len(t, frag.Files[0].Decls, 1)
	require.Equal(t, "Local", frag.Files[0].Decls[0].DeclName())
}

func TestParentPatchRoundTrip(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	bindings := sem.NewBindingInfo()

	clsDesc := sem.NewClassDescriptor(module, "app", "Box", sem.OriginSource)
	propDesc := sem.NewPropertyDescriptor(module, "app", "value", sem.OriginSource)
	propDesc.Type = sem.Type{Class: clsDesc}
	clsDesc.AddMember(propDesc)

	propDef := &ast.PropertyDef{DefBase: ast.NewDefBase("value", nil)}
	bindings.RecordDef(propDef, propDesc)

	clsDef := &ast.ClassDef{
		DefBase: ast.NewDefBase("Box", nil),
		Members: []ast.Def{propDef},
	}
	bindings.RecordDef(clsDef, clsDesc)

	ctx := newTestContext(module, bindings)
	frag := irgen.NewGenerator(ctx).Generate([]*ast.File{{Name: "a.ks", Defs: []ast.Def{clsDef}}})

	// Every declaration has a parent whose children include it.
	ir.Walk(frag, func(n ir.Node) bool {
		decl, ok := n.(ir.Decl)
		if !ok {
			return true
		}

		parent := decl.ParentNode()
		require.NotNil(t, parent, "declaration `%s` has no parent", decl.DeclName())
		require.Contains(t, ir.Children(parent), ir.Node(decl))

		return true
	})
}

func TestGenerateFunctionBody(t *testing.T) {
	module := sem.NewModuleDescriptor("app")
	bindings := sem.NewBindingInfo()

	strDesc := sem.NewClassDescriptor(module, "app", "Text", sem.OriginSource)
	strType := sem.Type{Class: strDesc}

	greetDesc := sem.NewFuncDescriptor(module, "app", "greet", sem.OriginSource)
	greetDesc.Return = strType

	lit := &ast.Literal{Kind: ast.LitString, Value: `"hi"`}
	ret := &ast.Return{Value: lit}
	bindings.RecordType(lit, strType)

	greetDef := &ast.FuncDef{
		DefBase: ast.NewDefBase("greet", nil),
		Body:    &ast.Block{Stmts: []ast.Expr{ret}},
	}
	bindings.RecordDef(greetDef, greetDesc)

	strDef := classDef(bindings, strDesc)

	ctx := newTestContext(module, bindings)
	frag := irgen.NewGenerator(ctx).Generate([]*ast.File{{Name: "a.ks", Defs: []ast.Def{strDef, greetDef}}})

	fn := frag.Files[0].Decls[1].(*ir.Func)
	require.NotNil(t, fn.Return)
	require.True(t, fn.Return.Class.IsBound())

	block := fn.Body.(*ir.Block)
	irRet := block.Stmts[0].(*ir.Return)
	irLit := irRet.Value.(*ir.Const)
	require.Equal(t, sem.ConstString, irLit.Kind)
	require.Equal(t, `"hi"`, irLit.Value)
	require.True(t, irLit.Type().Equal(strType))
}
