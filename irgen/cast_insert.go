package irgen

import (
	"kestrelc/ir"
	"kestrelc/sem"
)

// castInsertion is the built-in post-processing step inserting implicit-cast
// nodes wherever an expression's type differs from the type its context
// expects but widens to it: call arguments against parameter types, assigned
// values against property types, initializers, and returned values against
// the enclosing function's return type.
type castInsertion struct{}

func (castInsertion) Name() string {
	return "implicit-cast-insertion"
}

func (castInsertion) Postprocess(ctx *Context, root *ir.ModuleFragment) {
	if !ctx.Config.InsertImplicitCasts {
		return
	}

	ir.Walk(root, func(n ir.Node) bool {
		switch v := n.(type) {
		case *ir.Call:
			if fd, ok := v.Target.Desc.(*sem.FuncDescriptor); ok {
				for i, arg := range v.Args {
					if i < len(fd.Params) {
						v.Args[i] = coerce(ctx, arg, fd.Params[i].Type)
					}
				}
			}
		case *ir.SetValue:
			if pd, ok := v.Target.Desc.(*sem.PropertyDescriptor); ok {
				v.Value = coerce(ctx, v.Value, pd.Type)
			}
		case *ir.Property:
			if pd, ok := v.Symbol().Desc.(*sem.PropertyDescriptor); ok && v.Init != nil {
				v.Init = coerce(ctx, v.Init, pd.Type)
			}
		case *ir.Func:
			coerceReturns(ctx, v)
		}

		return true
	})
}

// coerceReturns coerces every returned value in a function body to the
// function's declared return type.
func coerceReturns(ctx *Context, fn *ir.Func) {
	fd, ok := fn.Symbol().Desc.(*sem.FuncDescriptor)
	if !ok || fd.Return.IsNone() || fn.Body == nil {
		return
	}

	ir.Walk(fn.Body, func(n ir.Node) bool {
		if ret, ok := n.(*ir.Return); ok && ret.Value != nil {
			ret.Value = coerce(ctx, ret.Value, fd.Return)
		}

		return true
	})
}

// coerce wraps an expression with an implicit cast to the wanted type if the
// expression's type widens to it.  Expressions already of the wanted type,
// untyped expressions, and expressions that do not widen are returned
// unchanged: mismatches are the type checker's to report, not this step's.
func coerce(ctx *Context, expr ir.Expr, want sem.Type) ir.Expr {
	if expr == nil || want.IsNone() {
		return expr
	}

	have := expr.Type()
	if have.IsNone() || have.Equal(want) || !have.AssignableTo(want) {
		return expr
	}

	return &ir.TypeOp{
		ExprBase: ir.NewExprBase(want),
		Op:       ir.OpImplicitCast,
		Operand:  expr,
		Target: &ir.TypeRef{
			Class:    ctx.SymTab.ClassSymbol(want.Class),
			Nullable: want.Nullable,
		},
	}
}
