package lexer

import "fmt"

// TokenType classifies a lexical token. The value doubles as the short
// human-readable name used in diagnostics.
type TokenType string

const (
	// Names and literals.
	TokenIdentifier TokenType = "identifier"
	TokenNumber     TokenType = "number"
	TokenString     TokenType = "string"

	// Keywords.
	TokenAnd           TokenType = "and"
	TokenBreak         TokenType = "break"
	TokenContinue      TokenType = "continue"
	TokenDo            TokenType = "do"
	TokenElse          TokenType = "else"
	TokenElseIf        TokenType = "elseif"
	TokenFalse         TokenType = "false"
	TokenFor           TokenType = "for"
	TokenFun           TokenType = "fun"
	TokenIf            TokenType = "if"
	TokenLog           TokenType = "log"
	TokenNil           TokenType = "nil"
	TokenNot           TokenType = "not"
	TokenOr            TokenType = "or"
	TokenReturn        TokenType = "return"
	TokenStructKeyword TokenType = "struct"
	TokenThen          TokenType = "then"
	TokenTrue          TokenType = "true"
	TokenTypeKeyword   TokenType = "type"
	TokenTypeof        TokenType = "typeof"
	TokenVar           TokenType = "var"

	// Operators.
	TokenPlus         TokenType = "+"
	TokenMinus        TokenType = "-"
	TokenStar         TokenType = "*"
	TokenSlash        TokenType = "/"
	TokenPercent      TokenType = "%"
	TokenAssign       TokenType = "="
	TokenEqual        TokenType = "=="
	TokenNotEqual     TokenType = "!="
	TokenLess         TokenType = "<"
	TokenLessEqual    TokenType = "<="
	TokenGreater      TokenType = ">"
	TokenGreaterEqual TokenType = ">="

	// Punctuation.
	TokenLeftParen  TokenType = "("
	TokenRightParen TokenType = ")"
	TokenLeftBrace  TokenType = "{"
	TokenRightBrace TokenType = "}"
	TokenComma      TokenType = ","
	TokenSemicolon  TokenType = ";"

	TokenEOF TokenType = "end of input"
)

// keywords maps reserved words to their token types. struct and type are
// reserved without grammar behind them yet; the parser rejects both.
var keywords = map[string]TokenType{
	"and":      TokenAnd,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"do":       TokenDo,
	"else":     TokenElse,
	"elseif":   TokenElseIf,
	"false":    TokenFalse,
	"for":      TokenFor,
	"fun":      TokenFun,
	"if":       TokenIf,
	"log":      TokenLog,
	"nil":      TokenNil,
	"not":      TokenNot,
	"or":       TokenOr,
	"return":   TokenReturn,
	"struct":   TokenStructKeyword,
	"then":     TokenThen,
	"true":     TokenTrue,
	"type":     TokenTypeKeyword,
	"typeof":   TokenTypeof,
	"var":      TokenVar,
}

// Token is one classified lexical unit. Tokens are immutable once produced.
// Literal carries the decoded value for number (float64) and string (string)
// tokens and is nil for every other type.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Line    int // 1-based
	Column  int // 1-based, counted in runes
	Offset  int // 0-based byte offset into the source
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d %s '%s'", t.Line, t.Column, t.Type, t.Lexeme)
}

// Describe renders the token for diagnostics: names and literals by type and
// lexeme, end of input by name, everything else by its spelling.
func (t Token) Describe() string {
	switch t.Type {
	case TokenEOF:
		return string(TokenEOF)
	case TokenIdentifier, TokenNumber, TokenString:
		return fmt.Sprintf("%s '%s'", t.Type, t.Lexeme)
	default:
		return fmt.Sprintf("'%s'", t.Lexeme)
	}
}
