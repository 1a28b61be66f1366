// Package parser turns reef token sequences into syntax trees by recursive
// descent, climbing precedence levels for expressions. The first error
// aborts the unit; no partial tree survives a failed parse.
package parser

import (
	"fmt"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
)

// Parser consumes one token sequence. Construct via Parse or
// ParseInteractive.
type Parser struct {
	tokens      []lexer.Token
	current     int
	interactive bool
}

// Parse lexes and parses one compilation unit. Parsing the same source twice
// yields structurally identical trees.
func Parse(source string) (*ast.Program, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, false)
}

// ParseInteractive parses like Parse but marks errors caused by reaching end
// of input mid-construct as incomplete (see IsIncomplete), so a REPL can
// keep collecting lines instead of reporting them.
func ParseInteractive(source string) (*ast.Program, error) {
	tokens, err := lexer.LexInteractive(source)
	if err != nil {
		return nil, err
	}
	return parseTokens(tokens, true)
}

func parseTokens(tokens []lexer.Token, interactive bool) (*ast.Program, error) {
	p := &Parser{tokens: tokens, interactive: interactive}
	statements := []ast.Statement{}
	for !p.isAtEnd() {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	program := ast.NewProgram(statements)
	if len(statements) > 0 {
		ast.SetSpan(program, ast.SpanBetween(statements[0].Span(), statements[len(statements)-1].Span()))
	}
	return program, nil
}

//-----------------------------------------------------------------------------
// Token cursor
//-----------------------------------------------------------------------------

func (p *Parser) peek() lexer.Token {
	return p.tokens[p.current]
}

func (p *Parser) peekNext() lexer.Token {
	if p.current+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.current+1]
}

func (p *Parser) previous() lexer.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.peek().Type == tt
}

func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tt := range types {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.TokenEOF
}

// expect consumes a token of the given type or fails with a syntax error
// naming what was required and what was found. At end of input in
// interactive mode the failure is marked incomplete instead.
func (p *Parser) expect(tt lexer.TokenType, where string) (lexer.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	tok := p.peek()
	return lexer.Token{}, p.errorAt(tok, fmt.Sprintf("Expected %s %s, found %s", describeTokenType(tt), where, tok.Describe()))
}

func (p *Parser) errorAt(tok lexer.Token, message string) error {
	return &ParseError{
		Message:    message,
		Location:   locationForToken(tok),
		Incomplete: p.interactive && tok.Type == lexer.TokenEOF,
	}
}

func describeTokenType(tt lexer.TokenType) string {
	switch tt {
	case lexer.TokenIdentifier, lexer.TokenNumber, lexer.TokenString, lexer.TokenEOF:
		return string(tt)
	default:
		return fmt.Sprintf("'%s'", tt)
	}
}

//-----------------------------------------------------------------------------
// Span helpers
//-----------------------------------------------------------------------------

func tokenStart(tok lexer.Token) ast.Position {
	return ast.Position{Line: tok.Line, Column: tok.Column}
}

// tokenEnd is the position one past the token's final character, tracking
// newlines inside multi-line string lexemes.
func tokenEnd(tok lexer.Token) ast.Position {
	line, col := tok.Line, tok.Column
	for _, r := range tok.Lexeme {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return ast.Position{Line: line, Column: col}
}

func spanFromTokens(first, last lexer.Token) ast.Span {
	return ast.Span{Start: tokenStart(first), End: tokenEnd(last)}
}

func spanFromToken(tok lexer.Token) ast.Span {
	return spanFromTokens(tok, tok)
}
