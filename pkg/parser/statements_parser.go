package parser

import (
	"fmt"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch {
	case p.check(lexer.TokenVar):
		return p.parseVariableDeclaration()
	case p.check(lexer.TokenFun) && p.peekNext().Type == lexer.TokenIdentifier:
		return p.parseFunctionDeclaration()
	case p.check(lexer.TokenIf):
		return p.parseIfStatement()
	case p.check(lexer.TokenFor):
		return p.parseForStatement()
	case p.check(lexer.TokenReturn):
		return p.parseReturnStatement()
	case p.check(lexer.TokenBreak):
		return p.parseBreakStatement()
	case p.check(lexer.TokenContinue):
		return p.parseContinueStatement()
	case p.check(lexer.TokenLog):
		return p.parseLogStatement()
	case p.check(lexer.TokenLeftBrace):
		return p.parseBlock("to open block")
	case p.check(lexer.TokenStructKeyword), p.check(lexer.TokenTypeKeyword):
		tok := p.peek()
		return nil, p.errorAt(tok, fmt.Sprintf("'%s' declarations are reserved but not supported yet", tok.Lexeme))
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseVariableDeclaration() (ast.Statement, error) {
	varTok := p.advance()
	nameTok, err := p.expect(lexer.TokenIdentifier, "after 'var'")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenAssign, "after variable name"); err != nil {
		return nil, err
	}
	initializer, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.TokenSemicolon, "after declaration")
	if err != nil {
		return nil, err
	}
	node := ast.NewVariableDeclaration(p.identifier(nameTok), initializer)
	ast.SetSpan(node, spanFromTokens(varTok, semi))
	return node, nil
}

func (p *Parser) parseFunctionDeclaration() (ast.Statement, error) {
	funTok := p.advance()
	nameTok, err := p.expect(lexer.TokenIdentifier, "after 'fun'")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters("after function name")
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock("to open function body")
	if err != nil {
		return nil, err
	}
	node := ast.NewFunctionDeclaration(p.identifier(nameTok), params, body)
	ast.SetSpan(node, ast.Span{Start: tokenStart(funTok), End: body.Span().End})
	return node, nil
}

// parseParameters consumes `( a, b, c )` and rejects duplicate names.
func (p *Parser) parseParameters(where string) ([]*ast.Identifier, error) {
	if _, err := p.expect(lexer.TokenLeftParen, where); err != nil {
		return nil, err
	}
	params := []*ast.Identifier{}
	seen := map[string]bool{}
	if !p.check(lexer.TokenRightParen) {
		for {
			tok, err := p.expect(lexer.TokenIdentifier, "in parameter list")
			if err != nil {
				return nil, err
			}
			if seen[tok.Lexeme] {
				return nil, p.errorAt(tok, fmt.Sprintf("Duplicate parameter '%s'", tok.Lexeme))
			}
			seen[tok.Lexeme] = true
			params = append(params, p.identifier(tok))
			if !p.match(lexer.TokenComma) {
				break
			}
		}
	}
	if _, err := p.expect(lexer.TokenRightParen, "after parameters"); err != nil {
		return nil, err
	}
	return params, nil
}

func (p *Parser) parseBlock(where string) (*ast.BlockStatement, error) {
	lbrace, err := p.expect(lexer.TokenLeftBrace, where)
	if err != nil {
		return nil, err
	}
	statements := []ast.Statement{}
	for !p.check(lexer.TokenRightBrace) && !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	rbrace, err := p.expect(lexer.TokenRightBrace, "to close block")
	if err != nil {
		return nil, err
	}
	node := ast.NewBlockStatement(statements)
	ast.SetSpan(node, spanFromTokens(lbrace, rbrace))
	return node, nil
}

func (p *Parser) parseIfStatement() (ast.Statement, error) {
	ifTok := p.advance()
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenThen, "after if condition"); err != nil {
		return nil, err
	}
	consequence, err := p.parseBlock("to open if branch")
	if err != nil {
		return nil, err
	}
	end := consequence.Span().End

	elseIfs := []*ast.ElseIfClause{}
	for p.check(lexer.TokenElseIf) {
		elseIfTok := p.advance()
		clauseCond, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.TokenThen, "after elseif condition"); err != nil {
			return nil, err
		}
		body, err := p.parseBlock("to open elseif branch")
		if err != nil {
			return nil, err
		}
		clause := ast.NewElseIfClause(clauseCond, body)
		ast.SetSpan(clause, ast.Span{Start: tokenStart(elseIfTok), End: body.Span().End})
		elseIfs = append(elseIfs, clause)
		end = body.Span().End
	}

	var alternative *ast.BlockStatement
	if p.match(lexer.TokenElse) {
		alternative, err = p.parseBlock("to open else branch")
		if err != nil {
			return nil, err
		}
		end = alternative.Span().End
	}

	node := ast.NewIfStatement(condition, consequence, elseIfs, alternative)
	ast.SetSpan(node, ast.Span{Start: tokenStart(ifTok), End: end})
	return node, nil
}

func (p *Parser) parseForStatement() (ast.Statement, error) {
	forTok := p.advance()
	if _, err := p.expect(lexer.TokenLeftParen, "after 'for'"); err != nil {
		return nil, err
	}
	condition, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenRightParen, "after loop condition"); err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.TokenDo, "before loop body"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock("to open loop body")
	if err != nil {
		return nil, err
	}
	node := ast.NewForStatement(condition, body)
	ast.SetSpan(node, ast.Span{Start: tokenStart(forTok), End: body.Span().End})
	return node, nil
}

func (p *Parser) parseReturnStatement() (ast.Statement, error) {
	retTok := p.advance()
	var value ast.Expression
	if !p.check(lexer.TokenSemicolon) {
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		value = expr
	}
	semi, err := p.expect(lexer.TokenSemicolon, "after return")
	if err != nil {
		return nil, err
	}
	node := ast.NewReturnStatement(value)
	ast.SetSpan(node, spanFromTokens(retTok, semi))
	return node, nil
}

func (p *Parser) parseBreakStatement() (ast.Statement, error) {
	breakTok := p.advance()
	semi, err := p.expect(lexer.TokenSemicolon, "after 'break'")
	if err != nil {
		return nil, err
	}
	node := ast.NewBreakStatement()
	ast.SetSpan(node, spanFromTokens(breakTok, semi))
	return node, nil
}

func (p *Parser) parseContinueStatement() (ast.Statement, error) {
	continueTok := p.advance()
	semi, err := p.expect(lexer.TokenSemicolon, "after 'continue'")
	if err != nil {
		return nil, err
	}
	node := ast.NewContinueStatement()
	ast.SetSpan(node, spanFromTokens(continueTok, semi))
	return node, nil
}

func (p *Parser) parseLogStatement() (ast.Statement, error) {
	logTok := p.advance()
	values := []ast.Expression{}
	first, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	values = append(values, first)
	for p.match(lexer.TokenComma) {
		next, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		values = append(values, next)
	}
	semi, err := p.expect(lexer.TokenSemicolon, "after log arguments")
	if err != nil {
		return nil, err
	}
	node := ast.NewLogStatement(values)
	ast.SetSpan(node, spanFromTokens(logTok, semi))
	return node, nil
}

func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	semi, err := p.expect(lexer.TokenSemicolon, "after expression")
	if err != nil {
		return nil, err
	}
	node := ast.NewExpressionStatement(expr)
	ast.SetSpan(node, ast.Span{Start: expr.Span().Start, End: tokenEnd(semi)})
	return node, nil
}

func (p *Parser) identifier(tok lexer.Token) *ast.Identifier {
	node := ast.NewIdentifier(tok.Lexeme)
	ast.SetSpan(node, spanFromToken(tok))
	return node
}
