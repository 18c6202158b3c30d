package parser_test

import (
	"strings"
	"testing"

	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/lexer"
	"github.com/camlet-lang/camlet/internal/parser"
	"github.com/camlet-lang/camlet/internal/pipeline"
)

// parseWithErrors runs the lexer+parser and returns the resulting context.
func parseWithErrors(input string) *pipeline.PipelineContext {
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = lexer.NewLexerProcessor().Process(ctx)
	ctx = parser.NewParserProcessor().Process(ctx)
	return ctx
}

// expectError asserts at least one error with the given code is reported.
func expectError(t *testing.T, input string, code diagnostics.Code) *diagnostics.DiagnosticError {
	t.Helper()
	ctx := parseWithErrors(input)
	if len(ctx.Errors) == 0 {
		t.Fatalf("expected error %s, but got none\ninput: %s", code, input)
	}
	for _, e := range ctx.Errors {
		if e.Code == code {
			return e
		}
	}
	var msgs []string
	for _, e := range ctx.Errors {
		msgs = append(msgs, e.Error())
	}
	t.Fatalf("expected error %s, got:\n%s\ninput: %s", code, strings.Join(msgs, "\n"), input)
	return nil
}

func TestMissingElseBranch(t *testing.T) {
	err := expectError(t, "if 1 then 2 ;;", diagnostics.ErrP002)
	if !strings.Contains(err.Message, "'else'") {
		t.Errorf("message: got %q, want mention of 'else'", err.Message)
	}
}

func TestMissingThenBranch(t *testing.T) {
	expectError(t, "if 1 2 else 3 ;;", diagnostics.ErrP002)
}

func TestMissingArrowInFun(t *testing.T) {
	expectError(t, "fun a b ;;", diagnostics.ErrP002)
}

func TestFunWithoutParams(t *testing.T) {
	expectError(t, "fun -> 1 ;;", diagnostics.ErrP002)
}

func TestMatchWithoutCases(t *testing.T) {
	expectError(t, "match x with ;;", diagnostics.ErrP002)
}

func TestMatchCaseMissingArrow(t *testing.T) {
	expectError(t, "match x with | n n + 1 ;;", diagnostics.ErrP002)
}

func TestLetMissingName(t *testing.T) {
	expectError(t, "let = 5 ;;", diagnostics.ErrP002)
}

func TestLetMissingEquals(t *testing.T) {
	expectError(t, "let x 5 ;;", diagnostics.ErrP002)
}

func TestDanglingOperator(t *testing.T) {
	expectError(t, "1 + ;;", diagnostics.ErrP001)
}

func TestUnclosedParen(t *testing.T) {
	expectError(t, "(1 + 2 ;;", diagnostics.ErrP002)
}

func TestUnsupportedDeclarations(t *testing.T) {
	for _, input := range []string{
		"type t = int ;;",
		"module M ;;",
		"open List ;;",
		"exception E ;;",
	} {
		t.Run(input, func(t *testing.T) {
			err := expectError(t, input, diagnostics.ErrP003)
			if !strings.Contains(err.Message, "not supported") {
				t.Errorf("message: got %q", err.Message)
			}
		})
	}
}

func TestLetRecInExpressionPosition(t *testing.T) {
	expectError(t, "let rec f x = f x in f 1 ;;", diagnostics.ErrP003)
}

func TestRecoveryAcrossPhrases(t *testing.T) {
	// The bad middle phrase must not prevent the surrounding ones from
	// parsing; one pass surfaces the error and both valid declarations.
	ctx := parseWithErrors("let a = 1 ;; let b = ;; let c = 3 ;;")

	if len(ctx.Errors) == 0 {
		t.Fatal("expected an error for the malformed phrase")
	}
	if ctx.AstRoot == nil {
		t.Fatal("AstRoot is nil; recovery failed")
	}
	got := ctx.AstRoot.String()
	if !strings.Contains(got, "let a = 1") || !strings.Contains(got, "let c = 3") {
		t.Errorf("recovered program: %s", got)
	}
}

func TestMultipleErrorsInOnePass(t *testing.T) {
	ctx := parseWithErrors("let = 1 ;; if 1 then 2 ;;")
	if len(ctx.Errors) < 2 {
		var msgs []string
		for _, e := range ctx.Errors {
			msgs = append(msgs, e.Error())
		}
		t.Fatalf("expected two errors, got:\n%s", strings.Join(msgs, "\n"))
	}
}

func TestIllegalTokenBecomesLexDiagnostic(t *testing.T) {
	ctx := parseWithErrors("let x = 1 @ 2 ;;")
	found := false
	for _, e := range ctx.Errors {
		if e.Code == diagnostics.ErrL001 {
			found = true
		}
	}
	if !found {
		t.Fatal("expected an L001 diagnostic for '@'")
	}
}

func TestErrorPositions(t *testing.T) {
	err := expectError(t, "let x = ;;", diagnostics.ErrP001)
	if err.Line != 1 || err.Column != 9 {
		t.Errorf("position: got %d:%d, want 1:9", err.Line, err.Column)
	}
}

func TestNothingRecoverableYieldsNilRoot(t *testing.T) {
	ctx := parseWithErrors("type t = int ;;")
	if ctx.AstRoot != nil {
		t.Errorf("AstRoot: got %v, want nil", ctx.AstRoot)
	}
}
