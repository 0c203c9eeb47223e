package irgen

import (
	"kestrelc/ast"
	"kestrelc/ir"
	"kestrelc/report"
	"kestrelc/sem"
)

// genExpr generates the IR form of an expression.  Expression types are taken
// from binding information; the generator performs no inference of its own.
func (g *Generator) genExpr(expr ast.Expr) ir.Expr {
	typ, _ := g.ctx.Bindings.TypeOf(expr)

	switch v := expr.(type) {
	case *ast.Call:
		callee, ok := g.ctx.Bindings.Callee(v)
		if !ok {
			report.ReportICE("no overload resolution recorded for call")
		}

		call := &ir.Call{
			ExprBase: ir.NewExprBase(typ),
			Target:   g.ctx.SymTab.FuncSymbol(callee),
		}
		for _, arg := range v.Args {
			call.Args = append(call.Args, g.genExpr(arg))
		}

		return call
	case *ast.NameRef:
		desc, ok := g.ctx.Bindings.RefDescriptor(v)
		if !ok {
			report.ReportICE("no binding information for name reference `%s`", v.Name)
		}

		return &ir.GetValue{
			ExprBase: ir.NewExprBase(typ),
			Target:   g.ctx.SymTab.SymbolOf(desc),
		}
	case *ast.Literal:
		return &ir.Const{
			ExprBase: ir.NewExprBase(typ),
			Kind:     constKindOf(v.Kind),
			Value:    v.Value,
		}
	case *ast.Return:
		ret := &ir.Return{ExprBase: ir.NewExprBase(typ)}
		if v.Value != nil {
			ret.Value = g.genExpr(v.Value)
		}

		return ret
	case *ast.Block:
		block := &ir.Block{ExprBase: ir.NewExprBase(typ)}
		for _, stmt := range v.Stmts {
			block.Stmts = append(block.Stmts, g.genExpr(stmt))
		}

		return block
	case *ast.Assign:
		target, ok := v.Target.(*ast.NameRef)
		if !ok {
			report.ReportICE("assignment target is not a name reference")
		}

		desc, ok := g.ctx.Bindings.RefDescriptor(target)
		if !ok {
			report.ReportICE("no binding information for assignment target `%s`", target.Name)
		}

		return &ir.SetValue{
			ExprBase: ir.NewExprBase(typ),
			Target:   g.ctx.SymTab.SymbolOf(desc),
			Value:    g.genExpr(v.Value),
		}
	default:
		report.ReportICE("unknown expression type %T", expr)
		return nil
	}
}

// constKindOf maps a surface literal kind to the corresponding constant kind.
func constKindOf(litKind int) int {
	switch litKind {
	case ast.LitInt:
		return sem.ConstInt
	case ast.LitFloat:
		return sem.ConstFloat
	case ast.LitString:
		return sem.ConstString
	case ast.LitBool:
		return sem.ConstBool
	case ast.LitNull:
		return sem.ConstNull
	default:
		report.ReportICE("unknown literal kind %d", litKind)
		return 0
	}
}
