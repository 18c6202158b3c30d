package parser

import (
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/pipeline"
	"github.com/camlet-lang/camlet/internal/token"
)

type ParserProcessor struct{}

func NewParserProcessor() *ParserProcessor {
	return &ParserProcessor{}
}

func (pp *ParserProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.TokenStream == nil {
		// This case should not be hit if the lexer runs first, but as a safeguard:
		err := diagnostics.NewError(diagnostics.ErrP001, token.Token{}, "parser: token stream is nil")
		ctx.Errors = append(ctx.Errors, err)
		return ctx
	}

	parser := New(ctx.TokenStream, ctx)
	program := parser.ParseProgram()

	if len(program.Statements) == 0 && ctx.HasErrors() {
		// Nothing could be recovered.
		ctx.AstRoot = nil
	} else {
		program.File = ctx.FilePath
		ctx.AstRoot = program
	}

	// Ensure all errors have the file path set.
	for _, err := range ctx.Errors {
		if err.File == "" {
			err.File = ctx.FilePath
		}
	}

	return ctx
}
