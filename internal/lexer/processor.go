package lexer

import (
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/pipeline"
	"github.com/camlet-lang/camlet/internal/token"
)

type LexerProcessor struct{}

func NewLexerProcessor() *LexerProcessor {
	return &LexerProcessor{}
}

func (lp *LexerProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	l := New(ctx.SourceCode)
	tokens := l.Tokenize()
	ctx.Tokens = tokens

	// The parser's stream drops comments, and error tokens once they are
	// reported; the raw sequence stays on the context for token dumps.
	filtered := make([]token.Token, 0, len(tokens))
	for _, tok := range tokens {
		switch tok.Type {
		case token.COMMENT:
			// skip
		case token.ILLEGAL:
			msg, _ := tok.Literal.(string)
			err := diagnostics.NewError(diagnostics.ErrL001, tok, "%s", msg)
			err.File = ctx.FilePath
			ctx.Errors = append(ctx.Errors, err)
		default:
			filtered = append(filtered, tok)
		}
	}
	ctx.TokenStream = token.NewStream(filtered)

	return ctx
}
