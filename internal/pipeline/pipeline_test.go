package pipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/camlet-lang/camlet/internal/analyzer"
	"github.com/camlet-lang/camlet/internal/evaluator"
	"github.com/camlet-lang/camlet/internal/lexer"
	"github.com/camlet-lang/camlet/internal/parser"
	"github.com/camlet-lang/camlet/internal/pipeline"
)

func fullPipeline() *pipeline.Pipeline {
	return pipeline.New(
		lexer.NewLexerProcessor(),
		parser.NewParserProcessor(),
		analyzer.NewSemanticAnalyzerProcessor(),
		evaluator.NewEvaluatorProcessor(),
	)
}

func runSource(source string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{SourceCode: source, FilePath: "test.cml"}
	return fullPipeline().Run(ctx)
}

func TestFullPipeline(t *testing.T) {
	ctx := runSource("let add a b = a + b ;; let r = add 2 3 ;;")

	if ctx.HasErrors() {
		t.Fatalf("unexpected errors: %v", ctx.Errors[0])
	}
	wantResults := []pipeline.Result{
		{Name: "add", Kind: "Function", Value: "<fun>"},
		{Name: "r", Kind: "Int", Value: "5"},
	}
	if diff := cmp.Diff(wantResults, ctx.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestDeterminism(t *testing.T) {
	source := `
let x = 1 ;;
let f a = a * x ;;
f 10 ;;
match 3 with | n -> n | _ -> 0 ;;
`
	first := runSource(source)
	second := runSource(source)

	if len(first.Results) != 4 {
		t.Fatalf("results: got %d, want 4", len(first.Results))
	}
	if diff := cmp.Diff(first.Results, second.Results); diff != "" {
		t.Errorf("results differ between runs (-first +second):\n%s", diff)
	}

	// Error output is equally reproducible.
	badFirst := runSource("let a = 1 ;; bad_name ;;")
	badSecond := runSource("let a = 1 ;; bad_name ;;")
	if diff := cmp.Diff(badFirst.Errors, badSecond.Errors); diff != "" {
		t.Errorf("errors differ between runs (-first +second):\n%s", diff)
	}
}

func TestStagesBatchDiagnostics(t *testing.T) {
	// A lexical error and a syntax error in separate phrases both surface
	// from one invocation. The illegal '@' is reported and dropped from the
	// parser's stream, which then sees 'let a = ;;' and reports its own error.
	ctx := runSource("let a = @ ;; if 1 then 2 ;;")

	var codes []string
	for _, e := range ctx.Errors {
		codes = append(codes, string(e.Code))
	}
	want := []string{"L001", "P001", "P002"}
	less := func(a, b string) bool { return a < b }
	if diff := cmp.Diff(want, codes, cmpopts.SortSlices(less)); diff != "" {
		t.Errorf("codes mismatch (-want +got):\n%s", diff)
	}
}

func TestErrorsCarryFilePath(t *testing.T) {
	ctx := runSource("let a = ;;")
	if len(ctx.Errors) == 0 {
		t.Fatal("expected an error")
	}
	for _, e := range ctx.Errors {
		if e.File != "test.cml" {
			t.Errorf("error file: got %q, want test.cml (%s)", e.File, e.Error())
		}
	}
}

func TestResultString(t *testing.T) {
	res := pipeline.Result{Name: "x", Kind: "Int", Value: "5"}
	if got := res.String(); got != "x : Int = 5" {
		t.Errorf("got %q, want %q", got, "x : Int = 5")
	}
}

type panickyProcessor struct{}

func (panickyProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	panic("stage blew up")
}

func TestStagePanicBecomesDiagnostic(t *testing.T) {
	ctx := &pipeline.PipelineContext{SourceCode: "1 ;;"}
	ctx = pipeline.New(panickyProcessor{}).Run(ctx)

	if len(ctx.Errors) != 1 {
		t.Fatalf("errors: got %d, want 1", len(ctx.Errors))
	}
	if ctx.Errors[0].Code != "X001" {
		t.Errorf("code: got %s, want X001", ctx.Errors[0].Code)
	}
}
