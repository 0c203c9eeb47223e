package irgen

import (
	"kestrelc/ir"
	"kestrelc/report"
)

// Step is a single post-processing transformation over a completed IR tree.
// Steps mutate the tree in place and must be order-independent with respect to
// unrelated subtrees.
type Step interface {
	// Name returns the step's name for diagnostics.
	Name() string

	// Postprocess applies the step to the tree rooted at root.
	Postprocess(ctx *Context, root *ir.ModuleFragment)
}

// Pipeline is the ordered sequence of post-processing steps applied to a
// completed IR tree.  The built-in steps (implicit-cast insertion, then
// annotation generation) always run first, in that fixed order, followed by
// registered steps in registration order.  The run concludes with a
// parent-link repair pass to account for any nodes the steps introduced.
type Pipeline struct {
	builtin    []Step
	registered []Step
	started    bool
}

// NewPipeline creates a new pipeline holding only the built-in steps.
func NewPipeline() *Pipeline {
	return &Pipeline{
		builtin: []Step{castInsertion{}, annotationGeneration{}},
	}
}

// Register appends a step to run after the built-in steps.  All steps must be
// registered before the pipeline first runs; registering afterwards is a
// programming error.
func (p *Pipeline) Register(step Step) {
	if p.started {
		report.ReportICE("post-processing step `%s` registered after generation started", step.Name())
	}

	p.registered = append(p.registered, step)
}

// Steps returns the full ordered step list.
func (p *Pipeline) Steps() []Step {
	steps := make([]Step, 0, len(p.builtin)+len(p.registered))
	steps = append(steps, p.builtin...)
	steps = append(steps, p.registered...)
	return steps
}

// Run applies the pipeline to the tree rooted at root.
func (p *Pipeline) Run(ctx *Context, root *ir.ModuleFragment) {
	p.started = true

	for _, step := range p.Steps() {
		step.Postprocess(ctx, root)
	}

	ir.PatchParents(root)
}
