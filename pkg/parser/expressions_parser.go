package parser

import (
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
)

func (p *Parser) parseExpression() (ast.Expression, error) {
	return p.parseAssignment()
}

// parseAssignment handles the lowest, right-associative level: `name = expr`.
func (p *Parser) parseAssignment() (ast.Expression, error) {
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.TokenAssign) {
		return expr, nil
	}
	assignTok := p.advance()
	value, err := p.parseAssignment()
	if err != nil {
		return nil, err
	}
	target, ok := expr.(*ast.Identifier)
	if !ok {
		return nil, p.errorAt(assignTok, "Invalid assignment target")
	}
	node := ast.NewAssignmentExpression(target, value)
	ast.SetSpan(node, ast.SpanBetween(target.Span(), value.Span()))
	return node, nil
}

// parseBinaryLevel builds one left-associative precedence level over the
// given operand parser.
func (p *Parser) parseBinaryLevel(operand func() (ast.Expression, error), types ...lexer.TokenType) (ast.Expression, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(types...) {
		op := p.previous()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		node := ast.NewBinaryExpression(op.Lexeme, expr, right)
		ast.SetSpan(node, ast.SpanBetween(expr.Span(), right.Span()))
		expr = node
	}
	return expr, nil
}

func (p *Parser) parseOr() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseAnd, lexer.TokenOr)
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseEquality, lexer.TokenAnd)
}

func (p *Parser) parseEquality() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseComparison, lexer.TokenEqual, lexer.TokenNotEqual)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseAdditive,
		lexer.TokenLess, lexer.TokenLessEqual, lexer.TokenGreater, lexer.TokenGreaterEqual)
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseMultiplicative, lexer.TokenPlus, lexer.TokenMinus)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.parseBinaryLevel(p.parseUnary, lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent)
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	if p.match(lexer.TokenNot, lexer.TokenMinus, lexer.TokenTypeof) {
		op := p.previous()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		node := ast.NewUnaryExpression(op.Lexeme, operand)
		ast.SetSpan(node, ast.Span{Start: tokenStart(op), End: operand.Span().End})
		return node, nil
	}
	return p.parseCall()
}

func (p *Parser) parseCall() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.TokenLeftParen) {
		p.advance()
		args := []ast.Expression{}
		if !p.check(lexer.TokenRightParen) {
			for {
				arg, err := p.parseExpression()
				if err != nil {
					return nil, err
				}
				args = append(args, arg)
				if !p.match(lexer.TokenComma) {
					break
				}
			}
		}
		rparen, err := p.expect(lexer.TokenRightParen, "after arguments")
		if err != nil {
			return nil, err
		}
		node := ast.NewCallExpression(expr, args)
		ast.SetSpan(node, ast.Span{Start: expr.Span().Start, End: tokenEnd(rparen)})
		expr = node
	}
	return expr, nil
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Type {
	case lexer.TokenNumber:
		p.advance()
		value, ok := tok.Literal.(float64)
		if !ok {
			return nil, p.errorAt(tok, "Malformed number literal")
		}
		node := ast.NewNumberLiteral(value)
		ast.SetSpan(node, spanFromToken(tok))
		return node, nil
	case lexer.TokenString:
		p.advance()
		value, ok := tok.Literal.(string)
		if !ok {
			return nil, p.errorAt(tok, "Malformed string literal")
		}
		node := ast.NewStringLiteral(value)
		ast.SetSpan(node, spanFromToken(tok))
		return node, nil
	case lexer.TokenTrue, lexer.TokenFalse:
		p.advance()
		node := ast.NewBooleanLiteral(tok.Type == lexer.TokenTrue)
		ast.SetSpan(node, spanFromToken(tok))
		return node, nil
	case lexer.TokenNil:
		p.advance()
		node := ast.NewNilLiteral()
		ast.SetSpan(node, spanFromToken(tok))
		return node, nil
	case lexer.TokenIdentifier:
		p.advance()
		return p.identifier(tok), nil
	case lexer.TokenLeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenRightParen, "after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	case lexer.TokenFun:
		return p.parseFunctionLiteral()
	default:
		return nil, p.errorAt(tok, "Expected expression, found "+tok.Describe())
	}
}

// parseFunctionLiteral handles anonymous `fun (params) { body }` expressions.
func (p *Parser) parseFunctionLiteral() (ast.Expression, error) {
	funTok := p.advance()
	params, err := p.parseParameters("after 'fun'")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("to open function body")
	if err != nil {
		return nil, err
	}
	node := ast.NewFunctionLiteral(params, body)
	ast.SetSpan(node, ast.Span{Start: tokenStart(funTok), End: body.Span().End})
	return node, nil
}
