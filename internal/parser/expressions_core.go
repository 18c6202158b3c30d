package parser

import (
	"github.com/camlet-lang/camlet/internal/ast"
	"github.com/camlet-lang/camlet/internal/diagnostics"
	"github.com/camlet-lang/camlet/internal/token"
)

func (p *Parser) parseExpression(precedence int) ast.Expression {
	p.depth++
	defer func() { p.depth-- }()

	if p.depth > MaxRecursionDepth {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001,
			p.curToken,
			"expression too deeply nested",
		))
		return nil
	}

	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil
	}

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}
		p.nextToken()
		nextExp := infix(leftExp)
		if nextExp == nil {
			return nil
		}
		leftExp = nextExp
	}

	return leftExp
}

func (p *Parser) parseIdentifier() ast.Expression {
	return &ast.Identifier{Token: p.curToken, Value: p.curToken.Literal.(string)}
}

func (p *Parser) parseIntegerLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(int64)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken, "invalid integer literal '%s'", p.curToken.Lexeme))
		return nil
	}
	return &ast.IntegerLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseFloatLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(float64)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken, "invalid float literal '%s'", p.curToken.Lexeme))
		return nil
	}
	return &ast.FloatLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseStringLiteral() ast.Expression {
	value, _ := p.curToken.Literal.(string)
	return &ast.StringLiteral{Token: p.curToken, Value: value}
}

func (p *Parser) parseCharLiteral() ast.Expression {
	value, ok := p.curToken.Literal.(rune)
	if !ok {
		p.ctx.Errors = append(p.ctx.Errors, diagnostics.NewError(
			diagnostics.ErrP001, p.curToken, "invalid character literal '%s'", p.curToken.Lexeme))
		return nil
	}
	return &ast.CharLiteral{Token: p.curToken, Value: value}
}

// parsePrefixMinus desugars unary minus into 0 - x, keeping the node set
// closed to binary operations.
func (p *Parser) parsePrefixMinus() ast.Expression {
	tok := p.curToken
	p.nextToken()
	right := p.parseExpression(PREFIX)
	if right == nil {
		return nil
	}
	return &ast.InfixExpression{
		Token:    tok,
		Operator: "-",
		Left:     &ast.IntegerLiteral{Token: tok, Value: 0},
		Right:    right,
	}
}

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	expression := &ast.InfixExpression{
		Token:    p.curToken,
		Operator: p.curToken.Lexeme,
		Left:     left,
	}

	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	expression.Right = right

	return expression
}

// parseApplyExpression handles application by juxtaposition: the current
// token starts a primary expression, which becomes the argument. The
// expression loop repeats this left-associatively, so f x y builds
// Apply(Apply(f, x), y).
func (p *Parser) parseApplyExpression(fn ast.Expression) ast.Expression {
	argTok := p.curToken

	prefix := p.prefixParseFns[argTok.Type]
	if prefix == nil {
		p.noPrefixParseFnError(argTok)
		return nil
	}
	arg := prefix()
	if arg == nil {
		return nil
	}

	return &ast.Apply{Token: argTok, Function: fn, Argument: arg}
}

func (p *Parser) parseGroupedExpression() ast.Expression {
	p.nextToken()

	exp := p.parseExpression(LOWEST)
	if exp == nil {
		return nil
	}
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return exp
}
