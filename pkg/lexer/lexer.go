// Package lexer turns reef source text into a flat token sequence with
// line/column/offset positions. Lexing is a pure function of the input:
// scanning the same text twice yields identical tokens.
package lexer

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Lexer scans one source text. The zero value is not usable; construct via
// Lex or LexInteractive.
type Lexer struct {
	source      string
	tokens      []Token
	start       int // byte offset of the token being scanned
	current     int // byte offset of the scan position
	line        int
	col         int
	startLine   int
	startCol    int
	interactive bool
}

// Lex scans source and returns its complete token sequence, terminated by an
// EOF token. The first invalid character aborts scanning with an *Error.
func Lex(source string) ([]Token, error) {
	return newLexer(source, false).scan()
}

// LexInteractive scans like Lex but marks an unterminated string at end of
// input as incomplete rather than failing hard, so a collecting REPL can
// prompt for more lines.
func LexInteractive(source string) ([]Token, error) {
	return newLexer(source, true).scan()
}

func newLexer(source string, interactive bool) *Lexer {
	return &Lexer{source: source, line: 1, col: 1, interactive: interactive}
}

func (l *Lexer) scan() ([]Token, error) {
	for {
		l.skipBlanks()
		l.start = l.current
		l.startLine, l.startCol = l.line, l.col
		if l.isAtEnd() {
			break
		}
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	l.add(TokenEOF)
	return l.tokens, nil
}

// skipBlanks consumes whitespace and `--` line comments.
func (l *Lexer) skipBlanks() {
	for !l.isAtEnd() {
		switch {
		case l.peek() == ' ' || l.peek() == '\t' || l.peek() == '\r' || l.peek() == '\n':
			l.advance()
		case l.peek() == '-' && l.peekNext() == '-':
			for !l.isAtEnd() && l.peek() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *Lexer) scanToken() error {
	c := l.advance()
	switch c {
	case '(':
		l.add(TokenLeftParen)
	case ')':
		l.add(TokenRightParen)
	case '{':
		l.add(TokenLeftBrace)
	case '}':
		l.add(TokenRightBrace)
	case ',':
		l.add(TokenComma)
	case ';':
		l.add(TokenSemicolon)
	case '+':
		l.add(TokenPlus)
	case '-':
		// `--` was consumed as a comment by skipBlanks.
		l.add(TokenMinus)
	case '*':
		l.add(TokenStar)
	case '/':
		l.add(TokenSlash)
	case '%':
		l.add(TokenPercent)
	case '=':
		if l.match('=') {
			l.add(TokenEqual)
		} else {
			l.add(TokenAssign)
		}
	case '!':
		if l.match('=') {
			l.add(TokenNotEqual)
		} else {
			return l.errorf("Unexpected character '!'")
		}
	case '<':
		if l.match('=') {
			l.add(TokenLessEqual)
		} else {
			l.add(TokenLess)
		}
	case '>':
		if l.match('=') {
			l.add(TokenGreaterEqual)
		} else {
			l.add(TokenGreater)
		}
	case '"':
		return l.scanString()
	default:
		switch {
		case isDigit(c):
			return l.scanNumber()
		case isAlpha(c):
			l.scanIdentifier()
		default:
			return l.errorf("Unexpected character '%c'", c)
		}
	}
	return nil
}

func (l *Lexer) scanString() error {
	var b strings.Builder
	for !l.isAtEnd() && l.peek() != '"' {
		c := l.advance()
		if c != '\\' {
			b.WriteRune(c)
			continue
		}
		if l.isAtEnd() {
			break
		}
		switch esc := l.advance(); esc {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			return l.errorf("Unknown escape sequence '\\%c' in string", esc)
		}
	}
	if l.isAtEnd() {
		if l.interactive {
			return &Error{Message: "Unterminated string", Line: l.startLine, Column: l.startCol, Offset: l.start, Incomplete: true}
		}
		return l.errorf("Unterminated string")
	}
	l.advance() // closing quote
	l.addLiteral(TokenString, b.String())
	return nil
}

// scanNumber consumes digits with optional `_` separators and an optional
// fraction part. A dot not followed by a digit is left for the next token.
func (l *Lexer) scanNumber() error {
	for isDigit(rune(l.peek())) || l.peek() == '_' {
		l.advance()
	}
	if l.peek() == '.' && isDigit(rune(l.peekNext())) {
		l.advance()
		for isDigit(rune(l.peek())) || l.peek() == '_' {
			l.advance()
		}
	}
	lexeme := l.source[l.start:l.current]
	val, err := strconv.ParseFloat(strings.ReplaceAll(lexeme, "_", ""), 64)
	if err != nil {
		return l.errorf("Malformed number '%s'", lexeme)
	}
	l.addLiteral(TokenNumber, val)
	return nil
}

func (l *Lexer) scanIdentifier() {
	for isAlphaNumeric(rune(l.peek())) {
		l.advance()
	}
	if kw, ok := keywords[l.source[l.start:l.current]]; ok {
		l.add(kw)
		return
	}
	l.add(TokenIdentifier)
}

func (l *Lexer) add(tt TokenType) {
	l.addLiteral(tt, nil)
}

func (l *Lexer) addLiteral(tt TokenType, literal any) {
	l.tokens = append(l.tokens, Token{
		Type:    tt,
		Lexeme:  l.source[l.start:l.current],
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startCol,
		Offset:  l.start,
	})
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.current:])
	l.current += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return r
}

func (l *Lexer) match(expected byte) bool {
	if l.isAtEnd() || l.source[l.current] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() byte {
	if l.isAtEnd() {
		return 0
	}
	return l.source[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.source) {
		return 0
	}
	return l.source[l.current+1]
}

func (l *Lexer) isAtEnd() bool {
	return l.current >= len(l.source)
}

func (l *Lexer) errorf(format string, args ...any) error {
	return &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    l.startLine,
		Column:  l.startCol,
		Offset:  l.start,
	}
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}
