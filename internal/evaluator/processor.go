package evaluator

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/pipeline"
)

// EvaluatorProcessor runs the interpreter over the analyzed program, one
// result row per declaration. Eval may be pre-set by a driver that keeps a
// session alive (the REPL); when nil a fresh interpreter is created per run.
type EvaluatorProcessor struct {
	Eval *Evaluator
}

func NewEvaluatorProcessor() *EvaluatorProcessor {
	return &EvaluatorProcessor{}
}

func (ep *EvaluatorProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil || ctx.HasErrors() {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return ctx
	}

	ev := ep.Eval
	if ev == nil {
		ev = New()
	}

	for _, stmt := range program.Statements {
		name, val := ev.EvalDeclaration(stmt)

		if runtimeErr, ok := val.(*Error); ok {
			diag := diagnostics.NewErrorAt(diagnostics.ErrR001,
				runtimeErr.Line, runtimeErr.Column, "%s", runtimeErr.Message)
			diag.File = ctx.FilePath
			ctx.Results = append(ctx.Results, pipeline.Result{Name: name, Err: diag})
			ctx.Errors = append(ctx.Errors, diag)
			continue
		}

		ctx.Results = append(ctx.Results, pipeline.Result{
			Name:  name,
			Kind:  val.Kind().String(),
			Value: val.Inspect(),
		})
	}

	return ctx
}
