package evaluator

import (
	"math"

	"github.com/camlet-lang/camlet/internal/ast"
)

func (ev *Evaluator) evalInfix(ie *ast.InfixExpression, env *Environment) Object {
	left := ev.Eval(ie.Left, env)
	if isError(left) {
		return left
	}

	// Logic operators short-circuit on the left operand.
	switch ie.Operator {
	case "and":
		lt, ok := isTruthy(left)
		if !ok {
			return newError(ie.Token, "operator 'and' requires numeric operands, got %s", left.Inspect())
		}
		if !lt {
			return &Integer{Value: 0}
		}
		return ev.evalTruthValue(ie, env)
	case "or":
		lt, ok := isTruthy(left)
		if !ok {
			return newError(ie.Token, "operator 'or' requires numeric operands, got %s", left.Inspect())
		}
		if lt {
			return &Integer{Value: 1}
		}
		return ev.evalTruthValue(ie, env)
	}

	right := ev.Eval(ie.Right, env)
	if isError(right) {
		return right
	}

	li, lIsInt := left.(*Integer)
	ri, rIsInt := right.(*Integer)
	if lIsInt && rIsInt {
		return evalIntegerInfix(ie, li.Value, ri.Value)
	}

	lf, lOK := numericValue(left)
	rf, rOK := numericValue(right)
	if !lOK || !rOK {
		return newError(ie.Token, "operator '%s' requires numeric operands, got %s and %s",
			ie.Operator, left.Inspect(), right.Inspect())
	}
	return evalFloatInfix(ie, lf, rf)
}

// evalTruthValue evaluates the right operand of a logic operator and reduces
// it to 0 or 1.
func (ev *Evaluator) evalTruthValue(ie *ast.InfixExpression, env *Environment) Object {
	right := ev.Eval(ie.Right, env)
	if isError(right) {
		return right
	}
	rt, ok := isTruthy(right)
	if !ok {
		return newError(ie.Token, "operator '%s' requires numeric operands, got %s",
			ie.Operator, right.Inspect())
	}
	if rt {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}

func evalIntegerInfix(ie *ast.InfixExpression, left, right int64) Object {
	switch ie.Operator {
	case "+":
		return &Integer{Value: left + right}
	case "-":
		return &Integer{Value: left - right}
	case "*":
		return &Integer{Value: left * right}
	case "/":
		if right == 0 {
			return newError(ie.Token, "division by zero")
		}
		return &Integer{Value: floorDiv(left, right)}
	case "mod":
		if right == 0 {
			return newError(ie.Token, "modulo by zero")
		}
		return &Integer{Value: left - floorDiv(left, right)*right}
	case "==":
		return truthObject(left == right)
	case "<>":
		return truthObject(left != right)
	case "<":
		return truthObject(left < right)
	case ">":
		return truthObject(left > right)
	default:
		return newError(ie.Token, "unknown operator '%s'", ie.Operator)
	}
}

func evalFloatInfix(ie *ast.InfixExpression, left, right float64) Object {
	switch ie.Operator {
	case "+":
		return &Float{Value: left + right}
	case "-":
		return &Float{Value: left - right}
	case "*":
		return &Float{Value: left * right}
	case "/":
		if right == 0 {
			return newError(ie.Token, "division by zero")
		}
		return &Float{Value: left / right}
	case "mod":
		if right == 0 {
			return newError(ie.Token, "modulo by zero")
		}
		return &Float{Value: math.Mod(left, right)}
	case "==":
		return truthObject(left == right)
	case "<>":
		return truthObject(left != right)
	case "<":
		return truthObject(left < right)
	case ">":
		return truthObject(left > right)
	default:
		return newError(ie.Token, "unknown operator '%s'", ie.Operator)
	}
}

// floorDiv rounds the quotient toward negative infinity, matching the
// mathematical convention rather than Go's truncation toward zero.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func numericValue(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case *Integer:
		return float64(v.Value), true
	case *Float:
		return v.Value, true
	default:
		return 0, false
	}
}

func truthObject(b bool) *Integer {
	if b {
		return &Integer{Value: 1}
	}
	return &Integer{Value: 0}
}
