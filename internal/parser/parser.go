package parser

import (
	"strings"

	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/pipeline"
	"github.com/camlet-lang/camlet/internal/token"
)

// Precedence levels, lowest to highest. Application by juxtaposition binds
// tighter than every operator, so argument-starting tokens sit at CALL.
const (
	_ int = iota
	LOWEST
	LOGIC_OR    // or
	LOGIC_AND   // and
	EQUALS      // == <>
	LESSGREATER // < >
	SUM         // + -
	PRODUCT     // * / mod
	PREFIX      // unary minus
	CALL        // juxtaposition application
)

// MaxRecursionDepth bounds expression nesting so malformed input cannot
// overflow the Go stack.
const MaxRecursionDepth = 512

var precedences = map[token.TokenType]int{
	token.OR:       LOGIC_OR,
	token.AND:      LOGIC_AND,
	token.EQ:       EQUALS,
	token.NOT_EQ:   EQUALS,
	token.LT:       LESSGREATER,
	token.GT:       LESSGREATER,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.ASTERISK: PRODUCT,
	token.SLASH:    PRODUCT,
	token.MOD:      PRODUCT,

	// Tokens that can start a primary expression continue the current
	// expression as an application argument.
	token.INT:            CALL,
	token.FLOAT:          CALL,
	token.STRING:         CALL,
	token.CHAR:           CALL,
	token.IDENT:          CALL,
	token.BACKTICK_IDENT: CALL,
	token.LPAREN:         CALL,
}

type (
	prefixParseFn func() ast.Expression
	infixParseFn  func(ast.Expression) ast.Expression
)

type Parser struct {
	stream *token.Stream
	ctx    *pipeline.PipelineContext

	curToken  token.Token
	peekToken token.Token

	prefixParseFns map[token.TokenType]prefixParseFn
	infixParseFns  map[token.TokenType]infixParseFn

	depth int
}

func New(stream *token.Stream, ctx *pipeline.PipelineContext) *Parser {
	p := &Parser{stream: stream, ctx: ctx}

	p.prefixParseFns = make(map[token.TokenType]prefixParseFn)
	p.registerPrefix(token.IDENT, p.parseIdentifier)
	p.registerPrefix(token.BACKTICK_IDENT, p.parseIdentifier)
	p.registerPrefix(token.INT, p.parseIntegerLiteral)
	p.registerPrefix(token.FLOAT, p.parseFloatLiteral)
	p.registerPrefix(token.STRING, p.parseStringLiteral)
	p.registerPrefix(token.CHAR, p.parseCharLiteral)
	p.registerPrefix(token.MINUS, p.parsePrefixMinus)
	p.registerPrefix(token.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(token.IF, p.parseIfExpression)
	p.registerPrefix(token.FUN, p.parseFunExpression)
	p.registerPrefix(token.MATCH, p.parseMatchExpression)
	p.registerPrefix(token.LET, p.parseLetExpression)

	p.infixParseFns = make(map[token.TokenType]infixParseFn)
	for _, tt := range []token.TokenType{
		token.OR, token.AND, token.EQ, token.NOT_EQ, token.LT, token.GT,
		token.PLUS, token.MINUS, token.ASTERISK, token.SLASH, token.MOD,
	} {
		p.registerInfix(tt, p.parseInfixExpression)
	}
	for _, tt := range []token.TokenType{
		token.INT, token.FLOAT, token.STRING, token.CHAR,
		token.IDENT, token.BACKTICK_IDENT, token.LPAREN,
	} {
		p.registerInfix(tt, p.parseApplyExpression)
	}

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) registerPrefix(tt token.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tt] = fn
}

func (p *Parser) registerInfix(tt token.TokenType, fn infixParseFn) {
	p.infixParseFns[tt] = fn
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.stream.Next()
}

func (p *Parser) curTokenIs(tt token.TokenType) bool  { return p.curToken.Type == tt }
func (p *Parser) peekTokenIs(tt token.TokenType) bool { return p.peekToken.Type == tt }

func (p *Parser) expectPeek(tt token.TokenType) bool {
	if p.peekTokenIs(tt) {
		p.nextToken()
		return true
	}
	p.peekError(tt)
	return false
}

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) peekError(tt token.TokenType) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP002,
		p.peekToken,
		"expected %s, found %s", describeTokenType(tt), describeToken(p.peekToken),
	))
}

func (p *Parser) noPrefixParseFnError(tok token.Token) {
	p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
		diagnostics.ErrP001,
		tok,
		"unexpected %s", describeToken(tok),
	))
}

// skipToStatementBoundary resynchronizes after a syntax error: it advances
// until the current token is ';;' (a statement terminator, left for the
// main loop to consume) or end of input, or until the next token starts a
// declaration. The cursor strictly advances, so recovery terminates.
func (p *Parser) skipToStatementBoundary() {
	for {
		if p.curTokenIs(token.EOF) || p.curTokenIs(token.SEMISEMI) {
			return
		}
		if isDeclStart(p.peekToken.Type) {
			return
		}
		p.nextToken()
	}
}

func isDeclStart(tt token.TokenType) bool {
	switch tt {
	case token.LET, token.TYPE, token.MODULE, token.OPEN, token.EXCEPTION:
		return true
	}
	return false
}

func describeToken(tok token.Token) string {
	if tok.Type == token.EOF {
		return "end of input"
	}
	return "'" + tok.Lexeme + "'"
}

func describeTokenType(tt token.TokenType) string {
	switch {
	case tt == token.EOF:
		return "end of input"
	case tt == token.IDENT:
		return "identifier"
	case tt.Kind() == token.KindKeyword:
		return "'" + strings.ToLower(string(tt)) + "'"
	default:
		return "'" + string(tt) + "'"
	}
}
