package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/camlet-lang/camlet/internal/analyzer"
	"github.com/camlet-lang/camlet/internal/config"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/evaluator"
	"github.com/camlet-lang/camlet/internal/lexer"
	"github.com/camlet-lang/camlet/internal/parser"
	"github.com/camlet-lang/camlet/internal/pipeline"
)

const colorRed = "\x1b[31m"
const colorReset = "\x1b[0m"

// options is the resolved run configuration: flags layered over camlet.yaml.
type options struct {
	dumpTokens bool
	dumpAST    bool
	useColor   bool
	prompt     string
}

// isSourceFile checks if a file has a recognized source extension
func isSourceFile(path string) bool {
	for _, ext := range config.SourceFileExtensions {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}

// Entry runs the command line interface and returns the process exit code.
func Entry(args []string) int {
	fs := flag.NewFlagSet("camlet", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var (
		dumpTokens = fs.Bool("tokens", false, "print the token stream before parsing")
		dumpAST    = fs.Bool("ast", false, "print the parsed program before evaluation")
		evalExpr   = fs.String("e", "", "evaluate the given source text and exit")
		configPath = fs.String("config", "", "path to camlet.yaml")
		noColor    = fs.Bool("no-color", false, "disable colored diagnostics")
	)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: camlet [flags] [file%s]\n", config.SourceFileExt)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	opts := options{
		dumpTokens: *dumpTokens || cfg.DumpTokens,
		dumpAST:    *dumpAST || cfg.DumpAST,
		prompt:     config.ReplPrompt,
	}
	if cfg.Prompt != "" {
		opts.prompt = cfg.Prompt
	}
	opts.useColor = isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd())
	if cfg.Color != nil {
		opts.useColor = *cfg.Color
	}
	if *noColor {
		opts.useColor = false
	}

	if *evalExpr != "" {
		return runSource(*evalExpr, "<eval>", opts)
	}

	if fs.NArg() == 0 {
		return runRepl(opts)
	}

	path := fs.Arg(0)
	if !isSourceFile(path) {
		fmt.Fprintf(os.Stderr, "camlet: %s: not a source file (expected %s)\n",
			path, strings.Join(config.SourceFileExtensions, " or "))
		return 1
	}
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "camlet: %v\n", err)
		return 1
	}
	return runSource(string(source), path, opts)
}

// newPipeline assembles the standard stage order: lex, parse, analyze,
// evaluate.
func newPipeline(evalProc *evaluator.EvaluatorProcessor) *pipeline.Pipeline {
	if evalProc == nil {
		evalProc = evaluator.NewEvaluatorProcessor()
	}
	return pipeline.New(
		lexer.NewLexerProcessor(),
		parser.NewParserProcessor(),
		analyzer.NewSemanticAnalyzerProcessor(),
		evalProc,
	)
}

func runSource(source, filePath string, opts options) int {
	ctx := &pipeline.PipelineContext{
		SourceCode: source,
		FilePath:   filePath,
	}
	ctx = newPipeline(nil).Run(ctx)

	dumpDebug(os.Stdout, ctx, opts)
	renderResults(os.Stdout, ctx)
	renderErrors(os.Stderr, ctx, opts)

	if ctx.HasErrors() {
		return 1
	}
	return 0
}

func dumpDebug(out io.Writer, ctx *pipeline.PipelineContext, opts options) {
	if opts.dumpTokens {
		for _, tok := range ctx.Tokens {
			fmt.Fprintf(out, "%d:%d\t%s\t%q\n", tok.Line, tok.Column, tok.Type, tok.Lexeme)
		}
	}
	if opts.dumpAST && ctx.AstRoot != nil {
		fmt.Fprintln(out, ctx.AstRoot.String())
	}
}

func renderResults(out io.Writer, ctx *pipeline.PipelineContext) {
	for _, res := range ctx.Results {
		fmt.Fprintln(out, res.String())
	}
}

// renderErrors prints diagnostics that are not already shown as result
// rows; runtime errors are attached to their declaration's row and stay
// interleaved with the results on stdout.
func renderErrors(out io.Writer, ctx *pipeline.PipelineContext, opts options) {
	shown := make(map[*diagnostics.DiagnosticError]bool)
	for _, res := range ctx.Results {
		if res.Err != nil {
			shown[res.Err] = true
		}
	}
	for _, err := range ctx.Errors {
		if shown[err] {
			continue
		}
		if opts.useColor {
			fmt.Fprintf(out, "%s%s%s\n", colorRed, err.Error(), colorReset)
		} else {
			fmt.Fprintln(out, err.Error())
		}
	}
}
