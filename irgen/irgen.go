package irgen

import (
	"kestrelc/ast"
	"kestrelc/ir"
)

// GenerateModule runs the full translation pipeline for one module: generate
// declarations from the syntax forest, resolve unbound symbols against the
// provider list, run post-processing, then resolve once more to capture any
// unbound symbols post-processing introduced.  It concludes by assigning
// uniqueness ids over the finished tree.
//
// The pipeline is strictly ordered and single-threaded; the symbol table and
// fragment are mutated only by the calling goroutine.  Symbols that no
// provider could resolve are left unbound in the returned fragment.
func GenerateModule(ctx *Context, files []*ast.File, providers []Provider, pipeline *Pipeline) *ir.ModuleFragment {
	if pipeline == nil {
		pipeline = NewPipeline()
	}

	frag := NewGenerator(ctx).Generate(files)

	facade := ctx.facadeGenerator()
	ResolveUnbound(ctx, frag, providers, facade)

	pipeline.Run(ctx, frag)
	ResolveUnbound(ctx, frag, providers, facade)

	ctx.SymTab.ComputeUniqueIDs(frag)

	return frag
}
