package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/camlet-lang/camlet/internal/token"
)

// Identifier is a variable reference. Backtick identifiers parse to this
// node as well, carrying the inner name.
type Identifier struct {
	Token token.Token
	Value string
}

func (i *Identifier) expressionNode()       {}
func (i *Identifier) TokenLiteral() string  { return i.Token.Lexeme }
func (i *Identifier) GetToken() token.Token { return i.Token }
func (i *Identifier) String() string        { return i.Value }

type IntegerLiteral struct {
	Token token.Token
	Value int64
}

func (il *IntegerLiteral) expressionNode()       {}
func (il *IntegerLiteral) TokenLiteral() string  { return il.Token.Lexeme }
func (il *IntegerLiteral) GetToken() token.Token { return il.Token }
func (il *IntegerLiteral) String() string        { return strconv.FormatInt(il.Value, 10) }

type FloatLiteral struct {
	Token token.Token
	Value float64
}

func (fl *FloatLiteral) expressionNode()       {}
func (fl *FloatLiteral) TokenLiteral() string  { return fl.Token.Lexeme }
func (fl *FloatLiteral) GetToken() token.Token { return fl.Token }
func (fl *FloatLiteral) String() string        { return strconv.FormatFloat(fl.Value, 'g', -1, 64) }

type StringLiteral struct {
	Token token.Token
	Value string
}

func (sl *StringLiteral) expressionNode()       {}
func (sl *StringLiteral) TokenLiteral() string  { return sl.Token.Lexeme }
func (sl *StringLiteral) GetToken() token.Token { return sl.Token }
func (sl *StringLiteral) String() string        { return strconv.Quote(sl.Value) }

type CharLiteral struct {
	Token token.Token
	Value rune
}

func (cl *CharLiteral) expressionNode()       {}
func (cl *CharLiteral) TokenLiteral() string  { return cl.Token.Lexeme }
func (cl *CharLiteral) GetToken() token.Token { return cl.Token }
func (cl *CharLiteral) String() string        { return strconv.QuoteRune(cl.Value) }

// InfixExpression is a binary operation. Unary minus is desugared at parse
// time to 0 - x, so there is no separate prefix variant.
type InfixExpression struct {
	Token    token.Token // the operator token
	Operator string
	Left     Expression
	Right    Expression
}

func (ie *InfixExpression) expressionNode()       {}
func (ie *InfixExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *InfixExpression) GetToken() token.Token { return ie.Token }
func (ie *InfixExpression) String() string {
	return "(" + ie.Left.String() + " " + ie.Operator + " " + ie.Right.String() + ")"
}

// IfExpression requires both branches; there is no one-armed if.
type IfExpression struct {
	Token       token.Token // the 'if' token
	Condition   Expression
	Consequence Expression
	Alternative Expression
}

func (ie *IfExpression) expressionNode()       {}
func (ie *IfExpression) TokenLiteral() string  { return ie.Token.Lexeme }
func (ie *IfExpression) GetToken() token.Token { return ie.Token }
func (ie *IfExpression) String() string {
	return "if " + ie.Condition.String() + " then " + ie.Consequence.String() +
		" else " + ie.Alternative.String()
}

// Lambda is always single-parameter. fun a b -> e is desugared at parse
// time into nested Lambdas, so currying holds by construction.
type Lambda struct {
	Token token.Token // the 'fun' token, or the parameter token for inner desugared lambdas
	Param *Identifier
	Body  Expression
}

func (l *Lambda) expressionNode()       {}
func (l *Lambda) TokenLiteral() string  { return l.Token.Lexeme }
func (l *Lambda) GetToken() token.Token { return l.Token }
func (l *Lambda) String() string {
	return "(fun " + l.Param.Value + " -> " + l.Body.String() + ")"
}

// Apply is single-argument application; f x y parses as Apply(Apply(f,x),y).
type Apply struct {
	Token    token.Token // the first token of the argument
	Function Expression
	Argument Expression
}

func (a *Apply) expressionNode()       {}
func (a *Apply) TokenLiteral() string  { return a.Token.Lexeme }
func (a *Apply) GetToken() token.Token { return a.Token }
func (a *Apply) String() string {
	return "(" + a.Function.String() + " " + a.Argument.String() + ")"
}

// Pattern is the closed pattern set: wildcard or bind-identifier.
type Pattern interface {
	Node
	patternNode()
	GetToken() token.Token
}

type WildcardPattern struct {
	Token token.Token
}

func (wp *WildcardPattern) patternNode()          {}
func (wp *WildcardPattern) TokenLiteral() string  { return wp.Token.Lexeme }
func (wp *WildcardPattern) GetToken() token.Token { return wp.Token }
func (wp *WildcardPattern) String() string        { return "_" }

type BindPattern struct {
	Token token.Token
	Name  string
}

func (bp *BindPattern) patternNode()          {}
func (bp *BindPattern) TokenLiteral() string  { return bp.Token.Lexeme }
func (bp *BindPattern) GetToken() token.Token { return bp.Token }
func (bp *BindPattern) String() string        { return bp.Name }

type MatchCase struct {
	Token   token.Token // the '|' token
	Pattern Pattern
	Body    Expression
}

func (mc *MatchCase) String() string {
	return "| " + mc.Pattern.String() + " -> " + mc.Body.String()
}

type MatchExpression struct {
	Token     token.Token // the 'match' token
	Scrutinee Expression
	Cases     []*MatchCase
}

func (me *MatchExpression) expressionNode()       {}
func (me *MatchExpression) TokenLiteral() string  { return me.Token.Lexeme }
func (me *MatchExpression) GetToken() token.Token { return me.Token }
func (me *MatchExpression) String() string {
	var out strings.Builder
	fmt.Fprintf(&out, "match %s with", me.Scrutinee.String())
	for _, c := range me.Cases {
		out.WriteString(" " + c.String())
	}
	return out.String()
}
