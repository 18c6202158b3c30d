package ast

import (
	"strings"

	"github.com/camlet-lang/camlet/internal/token"
)

// Node is the base interface for all AST nodes. The node set is closed:
// every stage dispatches exhaustively over the variants in this package.
// Nodes are immutable once their enclosing declaration finishes parsing.
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement is a Node that represents a top-level declaration or phrase.
type Statement interface {
	Node
	statementNode()
	GetToken() token.Token
}

// Expression is a Node that represents an expression.
type Expression interface {
	Node
	expressionNode()
	GetToken() token.Token
}

// Program is the root node of every AST the parser produces. It exclusively
// owns its declarations; each declaration owns its expression subtree.
type Program struct {
	File       string
	Statements []Statement
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// LetStatement represents a value binding.
// let x = 1  /  let rec loop = fun n -> loop n
type LetStatement struct {
	Token token.Token // the 'let' token
	Name  *Identifier
	Rec   bool
	Value Expression
}

func (ls *LetStatement) statementNode()        {}
func (ls *LetStatement) TokenLiteral() string  { return ls.Token.Lexeme }
func (ls *LetStatement) GetToken() token.Token { return ls.Token }
func (ls *LetStatement) String() string {
	rec := ""
	if ls.Rec {
		rec = "rec "
	}
	return "let " + rec + ls.Name.Value + " = " + ls.Value.String() + ";;"
}

// FunStatement represents a named function binding with parameter sugar.
// let add a b = a + b
// Params is non-empty; the evaluator curries it into nested single-parameter
// closures exactly as if it had been written fun a -> fun b -> ...
type FunStatement struct {
	Token  token.Token // the 'let' token
	Name   *Identifier
	Rec    bool
	Params []*Identifier
	Body   Expression
}

func (fs *FunStatement) statementNode()        {}
func (fs *FunStatement) TokenLiteral() string  { return fs.Token.Lexeme }
func (fs *FunStatement) GetToken() token.Token { return fs.Token }
func (fs *FunStatement) String() string {
	var out strings.Builder
	out.WriteString("let ")
	if fs.Rec {
		out.WriteString("rec ")
	}
	out.WriteString(fs.Name.Value)
	for _, p := range fs.Params {
		out.WriteString(" " + p.Value)
	}
	out.WriteString(" = " + fs.Body.String() + ";;")
	return out.String()
}

// ExpressionStatement is a bare top-level phrase, e.g. 10 / 3;;
type ExpressionStatement struct {
	Token      token.Token // the first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()        {}
func (es *ExpressionStatement) TokenLiteral() string  { return es.Token.Lexeme }
func (es *ExpressionStatement) GetToken() token.Token { return es.Token }
func (es *ExpressionStatement) String() string        { return es.Expression.String() + ";;" }
