package pipeline

import (
	"fmt"

	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/symbols"
	"github.com/camlet-lang/camlet/internal/token"
	"github.com/camlet-lang/camlet/internal/typesystem"
)

// Processor is a single pipeline stage. Each stage reads its input from the
// context, writes its output back, and appends diagnostics rather than
// failing; control never flows backward between stages.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext carries one invocation's state through the stages.
// A fresh context per invocation (fresh symbol table, fresh global
// environment inside the evaluator) keeps runs deterministic and isolated.
type PipelineContext struct {
	SourceCode string
	FilePath   string

	// Tokens is the complete lex output, comments and error tokens included.
	Tokens []token.Token
	// TokenStream is the parser's view: comments and already-reported
	// error tokens filtered out.
	TokenStream *token.Stream

	AstRoot ast.Node

	// SymbolTable may be pre-set by a driver that keeps a session alive
	// (the REPL); when nil the analyzer creates a fresh one.
	SymbolTable *symbols.SymbolTable
	ProgramType typesystem.Type

	Results []Result

	Errors []*diagnostics.DiagnosticError
}

// HasErrors reports whether any stage recorded a diagnostic.
func (ctx *PipelineContext) HasErrors() bool { return len(ctx.Errors) > 0 }

// Result is one per-declaration evaluation outcome. Either Err is set, or
// Name/Kind/Value describe the bound value. Bare expression phrases use
// the name "-".
type Result struct {
	Name  string
	Kind  string
	Value string
	Err   *diagnostics.DiagnosticError
}

// String renders the result line the presentation layer prints.
func (r Result) String() string {
	if r.Err != nil {
		return r.Err.Error()
	}
	return fmt.Sprintf("%s : %s = %s", r.Name, r.Kind, r.Value)
}
