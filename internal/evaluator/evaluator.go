package evaluator

import (
	"github.com/camlet-lang/camlet/internal/ast"
)

const maxEvalDepth = 10000

// Evaluator is a tree-walking interpreter over analyzed programs. It owns a
// global environment so a REPL session can keep evaluating declarations into
// the same world.
type Evaluator struct {
	GlobalEnv *Environment
	depth     int
}

func New() *Evaluator {
	return &Evaluator{GlobalEnv: NewEnvironment()}
}

// EvalDeclaration evaluates one top-level declaration and returns the bound
// name ("-" for a bare expression) and the resulting value. Runtime failures
// come back as *Error objects, never as panics.
func (ev *Evaluator) EvalDeclaration(stmt ast.Statement) (string, Object) {
	switch s := stmt.(type) {
	case *ast.LetStatement:
		return ev.evalLetDeclaration(s)
	case *ast.FunStatement:
		return ev.evalFunDeclaration(s)
	case *ast.ExpressionStatement:
		return "-", ev.Eval(s.Expression, ev.GlobalEnv)
	default:
		return "-", newError(stmt.GetToken(), "unhandled declaration %T", stmt)
	}
}

func (ev *Evaluator) evalLetDeclaration(ls *ast.LetStatement) (string, Object) {
	name := ls.Name.Value

	val := ev.Eval(ls.Value, ev.GlobalEnv)
	if isError(val) {
		return name, val
	}

	if fn, ok := val.(*Function); ok {
		fn.Name = name
		if ls.Rec {
			// Patch the closure so the body can see its own binding.
			fn.Env.Set(name, fn)
		}
	}

	ev.GlobalEnv.Set(name, val)
	return name, val
}

func (ev *Evaluator) evalFunDeclaration(fs *ast.FunStatement) (string, Object) {
	name := fs.Name.Value

	// A multi-parameter declaration curries: the inner parameters become
	// nested single-parameter lambdas around the body.
	body := fs.Body
	for i := len(fs.Params) - 1; i >= 1; i-- {
		body = &ast.Lambda{
			Token: fs.Params[i].Token,
			Param: fs.Params[i],
			Body:  body,
		}
	}

	fn := &Function{
		Param: fs.Params[0].Value,
		Body:  body,
		Env:   ev.GlobalEnv.Snapshot(),
		Name:  name,
	}
	if fs.Rec {
		fn.Env.Set(name, fn)
	}

	ev.GlobalEnv.Set(name, fn)
	return name, fn
}

// Eval evaluates a single expression in env.
func (ev *Evaluator) Eval(node ast.Expression, env *Environment) Object {
	ev.depth++
	defer func() { ev.depth-- }()
	if ev.depth > maxEvalDepth {
		return newError(node.GetToken(), "evaluation depth limit exceeded")
	}

	switch e := node.(type) {
	case *ast.IntegerLiteral:
		return &Integer{Value: e.Value}
	case *ast.FloatLiteral:
		return &Float{Value: e.Value}
	case *ast.StringLiteral:
		return &String{Value: e.Value}
	case *ast.CharLiteral:
		return &Char{Value: e.Value}

	case *ast.Identifier:
		val, ok := env.Get(e.Value)
		if !ok {
			return newError(e.Token, "undeclared variable '%s'", e.Value)
		}
		return val

	case *ast.Lambda:
		return &Function{Param: e.Param.Value, Body: e.Body, Env: env.Snapshot()}

	case *ast.Apply:
		fn := ev.Eval(e.Function, env)
		if isError(fn) {
			return fn
		}
		arg := ev.Eval(e.Argument, env)
		if isError(arg) {
			return arg
		}
		return ev.applyFunction(e, fn, arg)

	case *ast.InfixExpression:
		return ev.evalInfix(e, env)

	case *ast.IfExpression:
		return ev.evalIf(e, env)

	case *ast.MatchExpression:
		return ev.evalMatch(e, env)

	default:
		return newError(node.GetToken(), "unhandled expression %T", node)
	}
}

func (ev *Evaluator) applyFunction(ap *ast.Apply, fn, arg Object) Object {
	function, ok := fn.(*Function)
	if !ok {
		return newError(ap.Function.GetToken(), "'%s' applied to a non-function", fn.Inspect())
	}

	callEnv := NewEnclosedEnvironment(function.Env)
	callEnv.Set(function.Param, arg)
	return ev.Eval(function.Body, callEnv)
}

func (ev *Evaluator) evalIf(ie *ast.IfExpression, env *Environment) Object {
	cond := ev.Eval(ie.Condition, env)
	if isError(cond) {
		return cond
	}

	truthy, ok := isTruthy(cond)
	if !ok {
		return newError(ie.Condition.GetToken(), "if condition is not a number: %s", cond.Inspect())
	}
	if truthy {
		return ev.Eval(ie.Consequence, env)
	}
	return ev.Eval(ie.Alternative, env)
}

// isTruthy implements the boolean-as-int convention: any nonzero number is
// true. The second result reports whether the value is a number at all.
func isTruthy(obj Object) (bool, bool) {
	switch v := obj.(type) {
	case *Integer:
		return v.Value != 0, true
	case *Float:
		return v.Value != 0, true
	default:
		return false, false
	}
}

func (ev *Evaluator) evalMatch(me *ast.MatchExpression, env *Environment) Object {
	scrutinee := ev.Eval(me.Scrutinee, env)
	if isError(scrutinee) {
		return scrutinee
	}

	for _, c := range me.Cases {
		switch p := c.Pattern.(type) {
		case *ast.WildcardPattern:
			return ev.Eval(c.Body, env)
		case *ast.BindPattern:
			caseEnv := NewEnclosedEnvironment(env)
			caseEnv.Set(p.Name, scrutinee)
			return ev.Eval(c.Body, caseEnv)
		}
	}

	return newError(me.Token, "no matching case for %s", scrutinee.Inspect())
}
