package analyzer

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/symbols"
	"github.com/camlet-lang/camlet/internal/typesystem"
)

// Analyzer walks the AST checking scope and coarse type rules before
// evaluation. Analysis is batched across declarations (each top-level
// declaration is checked independently so one bad binding does not hide
// errors in later ones) but fail-fast within a declaration.
type Analyzer struct {
	symbols *symbols.SymbolTable
}

func New(table *symbols.SymbolTable) *Analyzer {
	return &Analyzer{symbols: table}
}

// Analyze checks every declaration in program and returns the type of the
// last successfully analyzed declaration together with all diagnostics
// collected along the way.
func (a *Analyzer) Analyze(program *ast.Program) (typesystem.Type, []*diagnostics.DiagnosticError) {
	programType := typesystem.Unknown
	var errs []*diagnostics.DiagnosticError

	for _, stmt := range program.Statements {
		t, err := a.analyzeStatement(stmt)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		programType = t
	}

	return programType, errs
}

func (a *Analyzer) analyzeStatement(stmt ast.Statement) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return a.analyzeLetStatement(s)
	case *ast.FunStatement:
		return a.analyzeFunStatement(s)
	case *ast.ExpressionStatement:
		return a.inferExpression(s.Expression)
	default:
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrX001, stmt.GetToken(),
			"internal error: unhandled statement %T", stmt)
	}
}

func (a *Analyzer) analyzeLetStatement(ls *ast.LetStatement) (typesystem.Type, *diagnostics.DiagnosticError) {
	name := ls.Name.Value
	if a.symbols.DefinedInCurrent(name) {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA001, ls.Name.Token,
			"duplicate declaration of '%s' in the same scope", name)
	}

	if ls.Rec {
		// The name must be visible while its own body is checked.
		a.symbols.Define(name, typesystem.Function)
		t, err := a.inferExpression(ls.Value)
		if err != nil {
			a.symbols.Undefine(name)
			return typesystem.Unknown, err
		}
		a.symbols.Rebind(name, t)
		return t, nil
	}

	t, err := a.inferExpression(ls.Value)
	if err != nil {
		return typesystem.Unknown, err
	}
	a.symbols.Define(name, t)
	return t, nil
}

func (a *Analyzer) analyzeFunStatement(fs *ast.FunStatement) (typesystem.Type, *diagnostics.DiagnosticError) {
	name := fs.Name.Value
	if a.symbols.DefinedInCurrent(name) {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA001, fs.Name.Token,
			"duplicate declaration of '%s' in the same scope", name)
	}

	if fs.Rec {
		a.symbols.Define(name, typesystem.Function)
	}

	if err := a.analyzeFunctionBody(fs.Params, fs.Body); err != nil {
		if fs.Rec {
			a.symbols.Undefine(name)
		}
		return typesystem.Unknown, err
	}

	if !fs.Rec {
		a.symbols.Define(name, typesystem.Function)
	}
	return typesystem.Function, nil
}

// analyzeFunctionBody checks a function body in a fresh scope frame with the
// parameters bound. Parameter types are unknown until application.
func (a *Analyzer) analyzeFunctionBody(params []*ast.Identifier, body ast.Expression) *diagnostics.DiagnosticError {
	a.symbols.PushFrame()
	defer a.symbols.PopFrame()

	for _, p := range params {
		if !a.symbols.Define(p.Value, typesystem.Unknown) {
			return diagnostics.NewError(diagnostics.ErrA001, p.Token,
				"duplicate parameter '%s'", p.Value)
		}
	}

	_, err := a.inferExpression(body)
	return err
}

func (a *Analyzer) inferExpression(node ast.Expression) (typesystem.Type, *diagnostics.DiagnosticError) {
	switch e := node.(type) {
	case *ast.IntegerLiteral:
		return typesystem.Int, nil
	case *ast.FloatLiteral:
		return typesystem.Float, nil
	case *ast.StringLiteral:
		return typesystem.String, nil
	case *ast.CharLiteral:
		return typesystem.Char, nil

	case *ast.Identifier:
		t, ok := a.symbols.Resolve(e.Value)
		if !ok {
			return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA002, e.Token,
				"undeclared variable '%s'", e.Value)
		}
		return t, nil

	case *ast.Lambda:
		if err := a.analyzeFunctionBody([]*ast.Identifier{e.Param}, e.Body); err != nil {
			return typesystem.Unknown, err
		}
		return typesystem.Function, nil

	case *ast.Apply:
		return a.inferApply(e)
	case *ast.InfixExpression:
		return a.inferInfix(e)
	case *ast.IfExpression:
		return a.inferIf(e)
	case *ast.MatchExpression:
		return a.inferMatch(e)

	default:
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrX001, node.GetToken(),
			"internal error: unhandled expression %T", node)
	}
}

func (a *Analyzer) inferApply(ap *ast.Apply) (typesystem.Type, *diagnostics.DiagnosticError) {
	ft, err := a.inferExpression(ap.Function)
	if err != nil {
		return typesystem.Unknown, err
	}
	if ft != typesystem.Function && ft != typesystem.Unknown {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA004, ap.Function.GetToken(),
			"applied a non-function (%s)", ft)
	}
	if _, err := a.inferExpression(ap.Argument); err != nil {
		return typesystem.Unknown, err
	}
	// Return types are not tracked across applications.
	return typesystem.Unknown, nil
}

func (a *Analyzer) inferInfix(ie *ast.InfixExpression) (typesystem.Type, *diagnostics.DiagnosticError) {
	lt, err := a.inferExpression(ie.Left)
	if err != nil {
		return typesystem.Unknown, err
	}
	rt, err := a.inferExpression(ie.Right)
	if err != nil {
		return typesystem.Unknown, err
	}

	if lt != typesystem.Unknown && !lt.IsNumeric() {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA003, ie.Token,
			"operator '%s' requires numeric operands, got %s", ie.Operator, lt)
	}
	if rt != typesystem.Unknown && !rt.IsNumeric() {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA003, ie.Token,
			"operator '%s' requires numeric operands, got %s", ie.Operator, rt)
	}

	switch ie.Operator {
	case "==", "<>", "<", ">", "and", "or":
		// Comparisons and logic yield an Int truth value.
		return typesystem.Int, nil
	default:
		if lt == typesystem.Float || rt == typesystem.Float {
			return typesystem.Float, nil
		}
		if lt == typesystem.Unknown || rt == typesystem.Unknown {
			return typesystem.Unknown, nil
		}
		return typesystem.Int, nil
	}
}

func (a *Analyzer) inferIf(ie *ast.IfExpression) (typesystem.Type, *diagnostics.DiagnosticError) {
	ct, err := a.inferExpression(ie.Condition)
	if err != nil {
		return typesystem.Unknown, err
	}
	if ct != typesystem.Int && ct != typesystem.Unknown {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA003, ie.Condition.GetToken(),
			"if condition must be Int, got %s", ct)
	}

	tt, err := a.inferExpression(ie.Consequence)
	if err != nil {
		return typesystem.Unknown, err
	}
	et, err := a.inferExpression(ie.Alternative)
	if err != nil {
		return typesystem.Unknown, err
	}

	if tt != typesystem.Unknown && et != typesystem.Unknown && tt != et {
		return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA003, ie.Token,
			"type mismatch between if branches: %s vs %s", tt, et)
	}
	if tt != typesystem.Unknown {
		return tt, nil
	}
	return et, nil
}

func (a *Analyzer) inferMatch(me *ast.MatchExpression) (typesystem.Type, *diagnostics.DiagnosticError) {
	if _, err := a.inferExpression(me.Scrutinee); err != nil {
		return typesystem.Unknown, err
	}

	result := typesystem.Unknown
	for i, c := range me.Cases {
		bt, err := a.analyzeMatchCase(c)
		if err != nil {
			return typesystem.Unknown, err
		}
		if i > 0 && bt != typesystem.Unknown && result != typesystem.Unknown && bt != result {
			return typesystem.Unknown, diagnostics.NewError(diagnostics.ErrA003, c.Token,
				"type mismatch between match cases: %s vs %s", result, bt)
		}
		if result == typesystem.Unknown {
			result = bt
		}
	}
	return result, nil
}

// analyzeMatchCase checks a single case body in a frame holding the
// pattern's bindings, if any.
func (a *Analyzer) analyzeMatchCase(c *ast.MatchCase) (typesystem.Type, *diagnostics.DiagnosticError) {
	a.symbols.PushFrame()
	defer a.symbols.PopFrame()

	if bp, ok := c.Pattern.(*ast.BindPattern); ok {
		a.symbols.Define(bp.Name, typesystem.Unknown)
	}

	return a.inferExpression(c.Body)
}
