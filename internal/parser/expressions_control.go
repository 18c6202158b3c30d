package parser

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/token"
)

// parseIfExpression parses if cond then e1 else e2. Both keywords and both
// branches are mandatory; there is no one-armed if.
func (p *Parser) parseIfExpression() ast.Expression {
	expression := &ast.IfExpression{Token: p.curToken}

	p.nextToken()
	expression.Condition = p.parseExpression(LOWEST)
	if expression.Condition == nil {
		return nil
	}

	if !p.expectPeek(token.THEN) {
		return nil
	}
	p.nextToken()
	expression.Consequence = p.parseExpression(LOWEST)
	if expression.Consequence == nil {
		return nil
	}

	if !p.expectPeek(token.ELSE) {
		return nil
	}
	p.nextToken()
	expression.Alternative = p.parseExpression(LOWEST)
	if expression.Alternative == nil {
		return nil
	}

	return expression
}

// parseFunExpression parses fun p1 p2 ... pn -> body. Parameters are
// collected greedily while the next token is an identifier; the result is
// right-folded into nested single-parameter lambdas, so currying holds by
// construction.
func (p *Parser) parseFunExpression() ast.Expression {
	funTok := p.curToken

	var params []*ast.Identifier
	for p.peekTokenIs(token.IDENT) {
		p.nextToken()
		params = append(params, &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)})
	}

	if len(params) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			"expected at least one parameter after 'fun', found %s", describeToken(p.peekToken),
		))
		return nil
	}

	if !p.expectPeek(token.ARROW) {
		return nil
	}

	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	for i := len(params) - 1; i >= 1; i-- {
		body = &ast.Lambda{Token: params[i].Token, Param: params[i], Body: body}
	}
	return &ast.Lambda{Token: funTok, Param: params[0], Body: body}
}

// parseMatchExpression parses match e with | pat1 -> e1 | pat2 -> e2 ...
// At least one case is required; each case opens with '|'.
func (p *Parser) parseMatchExpression() ast.Expression {
	expression := &ast.MatchExpression{Token: p.curToken}

	p.nextToken()
	expression.Scrutinee = p.parseExpression(LOWEST)
	if expression.Scrutinee == nil {
		return nil
	}

	if !p.expectPeek(token.WITH) {
		return nil
	}

	for p.peekTokenIs(token.PIPE) {
		p.nextToken() // the '|'
		caseTok := p.curToken

		p.nextToken()
		pattern := p.parsePattern()
		if pattern == nil {
			return nil
		}

		if !p.expectPeek(token.ARROW) {
			return nil
		}

		p.nextToken()
		body := p.parseExpression(LOWEST)
		if body == nil {
			return nil
		}

		expression.Cases = append(expression.Cases, &ast.MatchCase{Token: caseTok, Pattern: pattern, Body: body})
	}

	if len(expression.Cases) == 0 {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP002,
			p.peekToken,
			"expected '|' to start a match case, found %s", describeToken(p.peekToken),
		))
		return nil
	}

	return expression
}

// parsePattern parses the closed pattern set: '_' (wildcard) or a bare
// identifier (bind).
func (p *Parser) parsePattern() ast.Pattern {
	if !p.curTokenIs(token.IDENT) {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"expected pattern ('_' or identifier), found %s", describeToken(p.curToken),
		))
		return nil
	}
	if p.curToken.Lexeme == "_" {
		return &ast.WildcardPattern{Token: p.curToken}
	}
	return &ast.BindPattern{Token: p.curToken, Name: p.curToken.Literal.(string)}
}

// parseLetExpression parses let [rec] name [params] = e1 in e2 in
// expression position, desugaring it to Apply(Lambda(name, e2), e1') where
// e1' folds any parameters into nested lambdas. The AST variant set stays
// closed and the scoping semantics fall out of ordinary application.
func (p *Parser) parseLetExpression() ast.Expression {
	b := p.parseLetBinding()
	if b == nil {
		return nil
	}
	if !p.peekTokenIs(token.IN) {
		p.peekError(token.IN)
		return nil
	}
	return p.parseLetInTail(b)
}

// parseLetInTail finishes a let-in once the binding head is parsed and the
// peek token is known to be 'in'.
func (p *Parser) parseLetInTail(b *letBinding) ast.Expression {
	if b.rec {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP003,
			b.tok,
			"'let rec' is only supported at top level",
		))
	}

	p.nextToken() // the 'in'
	p.nextToken()
	body := p.parseExpression(LOWEST)
	if body == nil {
		return nil
	}

	value := b.value
	for i := len(b.params) - 1; i >= 0; i-- {
		value = &ast.Lambda{Token: b.params[i].Token, Param: b.params[i], Body: value}
	}

	return &ast.Apply{
		Token:    b.tok,
		Function: &ast.Lambda{Token: b.tok, Param: b.name, Body: body},
		Argument: value,
	}
}
