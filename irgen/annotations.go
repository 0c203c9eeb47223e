package irgen

import (
	"kestrelc/ir"
	"kestrelc/sem"
)

// annotationGeneration is the built-in post-processing step materializing the
// annotations recorded on declaration descriptors into annotation-call nodes
// on the corresponding IR declarations.  Annotation classes defined outside
// the compilation set become unbound symbols, which is why unbound-symbol
// resolution runs once more after post-processing.
type annotationGeneration struct{}

func (annotationGeneration) Name() string {
	return "annotation-generation"
}

func (annotationGeneration) Postprocess(ctx *Context, root *ir.ModuleFragment) {
	if !ctx.Config.GenerateAnnotations {
		return
	}

	ir.Walk(root, func(n ir.Node) bool {
		switch v := n.(type) {
		case *ir.Class:
			if cd, ok := v.Symbol().Desc.(*sem.ClassDescriptor); ok && v.Annotations == nil {
				v.Annotations = materialize(ctx, cd.Annotations)
			}
		case *ir.Func:
			if fd, ok := v.Symbol().Desc.(*sem.FuncDescriptor); ok && v.Annotations == nil {
				v.Annotations = materialize(ctx, fd.Annotations)
			}
		case *ir.Property:
			if pd, ok := v.Symbol().Desc.(*sem.PropertyDescriptor); ok && v.Annotations == nil {
				v.Annotations = materialize(ctx, pd.Annotations)
			}
		}

		return true
	})
}

// materialize converts a descriptor's annotation list into annotation-call
// nodes.
func materialize(ctx *Context, annots []*sem.AnnotationDescriptor) []*ir.AnnotationCall {
	var calls []*ir.AnnotationCall

	for _, annot := range annots {
		call := &ir.AnnotationCall{Class: ctx.SymTab.ClassSymbol(annot.Class)}

		for _, arg := range annot.Args {
			call.Args = append(call.Args, &ir.Const{
				ExprBase: ir.NewExprBase(sem.Type{}),
				Kind:     arg.Kind,
				Value:    arg.Value,
			})
		}

		calls = append(calls, call)
	}

	return calls
}
