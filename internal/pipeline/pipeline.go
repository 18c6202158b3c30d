package pipeline

import "github.com/camlet-lang/camlet/internal/diagnostics"

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes the pipeline.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		ctx = runProcessor(processor, ctx)
		// Continue on errors to collect diagnostics from all stages
		// (one invocation surfaces lexical, syntax and semantic errors together).
	}
	return ctx
}

// runProcessor keeps a stage failure inside the pipeline: a panic becomes
// an X001 diagnostic on the context instead of escaping to the caller.
func runProcessor(p Processor, ctx *PipelineContext) (out *PipelineContext) {
	defer func() {
		if r := recover(); r != nil {
			ctx.Errors = append(ctx.Errors,
				diagnostics.NewErrorAt(diagnostics.ErrX001, 0, 0, "internal error: %v", r))
			out = ctx
		}
	}()
	return p.Process(ctx)
}
