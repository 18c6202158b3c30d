package parser

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/token"
)

// ParseProgram parses zero or more top-level phrases until end of input.
// Syntax errors are recorded on the context and parsing resumes at the
// next statement boundary, so one pass surfaces every independent error.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}

	for !p.curTokenIs(token.EOF) {
		if p.curTokenIs(token.SEMISEMI) || p.curTokenIs(token.SEMI) {
			p.nextToken()
			continue
		}
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.nextToken()
	}

	return program
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case token.LET:
		return p.parseLetStatement()
	case token.TYPE, token.MODULE, token.OPEN, token.EXCEPTION, token.TRY:
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			p.curToken,
			"'%s' declarations are not supported", p.curToken.Lexeme,
		))
		p.skipToStatementBoundary()
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

// letBinding is the parsed head of a let form, before we know whether it
// is a top-level declaration or a let-in expression.
type letBinding struct {
	tok    token.Token
	rec    bool
	name   *ast.Identifier
	params []*ast.Identifier
	value  ast.Expression
}

func (p *Parser) parseLetBinding() *letBinding {
	b := &letBinding{tok: p.curToken}

	if p.peekTokenIs(token.REC) {
		p.nextToken()
		b.rec = true
	}

	if !p.expectPeek(token.IDENT) {
		return nil
	}
	b.name = &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}

	for p.peekTokenIs(token.IDENT) {
		p.nextToken()
		b.params = append(b.params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)})
	}

	if !p.expectPeek(token.ASSIGN) {
		return nil
	}

	p.nextToken()
	b.value = p.parseExpression(LOWEST)
	if b.value == nil {
		return nil
	}
	return b
}

func (p *Parser) parseLetStatement() ast.Statement {
	b := p.parseLetBinding()
	if b == nil {
		p.skipToStatementBoundary()
		return nil
	}

	if p.peekTokenIs(token.IN) {
		// let x = e1 in e2 in statement position is an expression phrase.
		expr := p.parseLetInTail(b)
		if expr == nil {
			p.skipToStatementBoundary()
			return nil
		}
		stmt := &ast.ExpressionStatement{Token: b.tok, Expression: expr}
		p.finishStatement()
		return stmt
	}

	p.finishStatement()

	if len(b.params) > 0 {
		return &ast.FunStatement{Token: b.tok, Name: b.name, Rec: b.rec, Params: b.params, Body: b.value}
	}
	return &ast.LetStatement{Token: b.tok, Name: b.name, Rec: b.rec, Value: b.value}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	stmt := &ast.ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		p.skipToStatementBoundary()
		return nil
	}

	p.finishStatement()
	return stmt
}

// finishStatement consumes an optional trailing ';;'.
func (p *Parser) finishStatement() {
	if p.peekTokenIs(token.SEMISEMI) {
		p.nextToken()
	}
}
