package analyzer

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/pipeline"
	"github.com/camlet-lang/camlet/internal/symbols"
)

// SemanticAnalyzerProcessor runs scope and type checks on the parsed
// program. It reuses the symbol table already present on the context when
// there is one, which lets a REPL session accumulate bindings across phrases.
type SemanticAnalyzerProcessor struct{}

func NewSemanticAnalyzerProcessor() *SemanticAnalyzerProcessor {
	return &SemanticAnalyzerProcessor{}
}

func (sap *SemanticAnalyzerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.AstRoot == nil {
		return ctx
	}
	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		return ctx
	}

	if ctx.SymbolTable == nil {
		ctx.SymbolTable = symbols.New()
	}

	analyzer := New(ctx.SymbolTable)
	programType, errs := analyzer.Analyze(program)
	ctx.ProgramType = programType

	for _, err := range errs {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}
	ctx.Errors = append(ctx.Errors, errs...)

	return ctx
}
