package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"

	"github.com/camlet-lang/camlet/internal/config"
	"github.com/camlet-lang/camlet/internal/evaluator"
	"github.com/camlet-lang/camlet/internal/lexer"
	"github.com/camlet-lang/camlet/internal/pipeline"
	"github.com/camlet-lang/camlet/internal/symbols"
	"github.com/camlet-lang/camlet/internal/token"
)

// replSession holds the state that survives between phrases: the symbol
// table the analyzer accumulates bindings in and the interpreter with its
// global environment.
type replSession struct {
	symbols *symbols.SymbolTable
	eval    *evaluator.Evaluator
	opts    options
}

// runRepl reads phrases terminated by ";;" and evaluates each one against
// the session state. Control-C abandons the current phrase; Control-D exits.
func runRepl(opts options) int {
	rl, err := readline.New(opts.prompt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camlet: %v\n", err)
		return 1
	}
	defer rl.Close()

	session := &replSession{
		symbols: symbols.New(),
		eval:    evaluator.New(),
		opts:    opts,
	}

	var buf strings.Builder
	for {
		if buf.Len() == 0 {
			rl.SetPrompt(opts.prompt)
		} else {
			rl.SetPrompt(config.ReplContinuationPrompt)
		}

		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			buf.Reset()
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "camlet: %v\n", err)
			return 1
		}

		buf.WriteString(line)
		buf.WriteString("\n")
		if !phraseComplete(buf.String()) {
			continue
		}

		session.evalPhrase(buf.String())
		buf.Reset()
	}

	fmt.Println()
	return 0
}

// phraseComplete reports whether the buffered input holds a ';;' terminator.
// The buffer is lexed rather than text-searched, so ';;' inside a string,
// character or comment does not submit the phrase early.
func phraseComplete(src string) bool {
	for _, tok := range lexer.New(src).Tokenize() {
		if tok.Type == token.SEMISEMI {
			return true
		}
	}
	return false
}

// evalPhrase runs one complete phrase through the pipeline, reusing the
// session's symbol table and interpreter.
func (s *replSession) evalPhrase(source string) {
	ctx := &pipeline.PipelineContext{
		SourceCode:  source,
		FilePath:    "<repl>",
		SymbolTable: s.symbols,
	}
	ctx = newPipeline(&evaluator.EvaluatorProcessor{Eval: s.eval}).Run(ctx)

	dumpDebug(os.Stdout, ctx, s.opts)
	renderResults(os.Stdout, ctx)
	renderErrors(os.Stderr, ctx, s.opts)
}
