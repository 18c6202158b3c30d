package parser_test

import (
	"strings"
	"testing"

	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/lexer"
	"github.com/camlet-lang/camlet/internal/parser"
	"github.com/camlet-lang/camlet/internal/pipeline"
)

// parseProgram runs lexer and parser and fails the test on any diagnostic.
func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	ctx := &pipeline.PipelineContext{SourceCode: input}
	ctx = lexer.NewLexerProcessor().Process(ctx)
	ctx = parser.NewParserProcessor().Process(ctx)

	if len(ctx.Errors) > 0 {
		var msgs []string
		for _, err := range ctx.Errors {
			msgs = append(msgs, err.Error())
		}
		t.Fatalf("parsing failed:\n%s\ninput: %s", strings.Join(msgs, "\n"), input)
	}

	program, ok := ctx.AstRoot.(*ast.Program)
	if !ok {
		t.Fatalf("AstRoot is %T, want *ast.Program", ctx.AstRoot)
	}
	return program
}

// parseExpr parses a single phrase and returns its expression.
func parseExpr(t *testing.T, input string) ast.Expression {
	t.Helper()
	program := parseProgram(t, input)
	if len(program.Statements) != 1 {
		t.Fatalf("statement count: got %d, want 1", len(program.Statements))
	}
	es, ok := program.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExpressionStatement", program.Statements[0])
	}
	return es.Expression
}

func TestOperatorPrecedence(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 * 2 + 3", "((1 * 2) + 3)"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"10 / 2 / 5", "((10 / 2) / 5)"},
		{"7 mod 2 + 1", "((7 mod 2) + 1)"},
		{"1 < 2 == 0", "((1 < 2) == 0)"},
		{"1 == 2 and 3 <> 4", "((1 == 2) and (3 <> 4))"},
		{"1 and 2 or 3", "((1 and 2) or 3)"},
		{"(1 + 2) * 3", "((1 + 2) * 3)"},
		{"-5 + 3", "((0 - 5) + 3)"},
		{"2 * -3", "(2 * (0 - 3))"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			expr := parseExpr(t, tc.input+" ;;")
			if got := expr.String(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestApplicationByJuxtaposition(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"f x", "(f x)"},
		{"f x y", "((f x) y)"},
		{"f x y z", "(((f x) y) z)"},
		{"f x + g y", "((f x) + (g y))"},
		{"f (g x)", "(f (g x))"},
		{"f 1 2.5 \"s\"", "(((f 1) 2.5) \"s\")"},
		{"-f x", "(0 - (f x))"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			expr := parseExpr(t, tc.input+" ;;")
			if got := expr.String(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestFunDesugarsToNestedLambdas(t *testing.T) {
	expr := parseExpr(t, "fun a b c -> a + b + c ;;")
	want := "(fun a -> (fun b -> (fun c -> ((a + b) + c))))"
	if got := expr.String(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestLetStatementForms(t *testing.T) {
	t.Run("simple_value", func(t *testing.T) {
		program := parseProgram(t, "let x = 5 ;;")
		ls, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement is %T, want *ast.LetStatement", program.Statements[0])
		}
		if ls.Name.Value != "x" || ls.Rec {
			t.Errorf("got name=%q rec=%v, want x/false", ls.Name.Value, ls.Rec)
		}
	})

	t.Run("parameters_make_fun_statement", func(t *testing.T) {
		program := parseProgram(t, "let add a b = a + b ;;")
		fs, ok := program.Statements[0].(*ast.FunStatement)
		if !ok {
			t.Fatalf("statement is %T, want *ast.FunStatement", program.Statements[0])
		}
		if fs.Name.Value != "add" || len(fs.Params) != 2 {
			t.Errorf("got name=%q params=%d, want add/2", fs.Name.Value, len(fs.Params))
		}
	})

	t.Run("rec", func(t *testing.T) {
		program := parseProgram(t, "let rec loop n = loop n ;;")
		fs, ok := program.Statements[0].(*ast.FunStatement)
		if !ok {
			t.Fatalf("statement is %T, want *ast.FunStatement", program.Statements[0])
		}
		if !fs.Rec {
			t.Error("Rec not set")
		}
	})

	t.Run("lambda_value", func(t *testing.T) {
		program := parseProgram(t, "let inc = fun n -> n + 1 ;;")
		ls, ok := program.Statements[0].(*ast.LetStatement)
		if !ok {
			t.Fatalf("statement is %T, want *ast.LetStatement", program.Statements[0])
		}
		if _, ok := ls.Value.(*ast.Lambda); !ok {
			t.Errorf("value is %T, want *ast.Lambda", ls.Value)
		}
	})
}

func TestLetInDesugarsToApplication(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"simple", "let x = 1 in x + 2 ;;", "((fun x -> (x + 2)) 1)"},
		{"nested", "let x = 1 in let y = 2 in x + y ;;", "((fun x -> ((fun y -> (x + y)) 2)) 1)"},
		{"with_params", "let f a = a * 2 in f 3 ;;", "((fun f -> (f 3)) (fun a -> (a * 2)))"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			expr := parseExpr(t, tc.input)
			if got := expr.String(); got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func TestIfExpression(t *testing.T) {
	expr := parseExpr(t, "if x < 2 then 1 else 0 ;;")
	ie, ok := expr.(*ast.IfExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.IfExpression", expr)
	}
	if got := ie.Condition.String(); got != "(x < 2)" {
		t.Errorf("condition: got %s", got)
	}
	if ie.Consequence.String() != "1" || ie.Alternative.String() != "0" {
		t.Errorf("branches: got %s / %s", ie.Consequence.String(), ie.Alternative.String())
	}
}

func TestMatchExpression(t *testing.T) {
	expr := parseExpr(t, "match x with | n -> n + 1 | _ -> 0 ;;")
	me, ok := expr.(*ast.MatchExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.MatchExpression", expr)
	}
	if len(me.Cases) != 2 {
		t.Fatalf("case count: got %d, want 2", len(me.Cases))
	}
	if _, ok := me.Cases[0].Pattern.(*ast.BindPattern); !ok {
		t.Errorf("case 0 pattern is %T, want *ast.BindPattern", me.Cases[0].Pattern)
	}
	if _, ok := me.Cases[1].Pattern.(*ast.WildcardPattern); !ok {
		t.Errorf("case 1 pattern is %T, want *ast.WildcardPattern", me.Cases[1].Pattern)
	}
}

func TestBacktickIdentifier(t *testing.T) {
	expr := parseExpr(t, "`my var` + 1 ;;")
	ie, ok := expr.(*ast.InfixExpression)
	if !ok {
		t.Fatalf("expression is %T, want *ast.InfixExpression", expr)
	}
	id, ok := ie.Left.(*ast.Identifier)
	if !ok {
		t.Fatalf("left is %T, want *ast.Identifier", ie.Left)
	}
	if id.Value != "my var" {
		t.Errorf("identifier value: got %q, want %q", id.Value, "my var")
	}
}

func TestMultiplePhrases(t *testing.T) {
	program := parseProgram(t, "let x = 1 ;; let y = 2 ;; x + y ;;")
	if len(program.Statements) != 3 {
		t.Fatalf("statement count: got %d, want 3", len(program.Statements))
	}
}

func TestCommentsAreInvisibleToParser(t *testing.T) {
	program := parseProgram(t, "let x (* the value *) = (* = *) 1 ;;")
	if len(program.Statements) != 1 {
		t.Fatalf("statement count: got %d, want 1", len(program.Statements))
	}
	if _, ok := program.Statements[0].(*ast.LetStatement); !ok {
		t.Fatalf("statement is %T, want *ast.LetStatement", program.Statements[0])
	}
}
