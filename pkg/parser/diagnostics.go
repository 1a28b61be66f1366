package parser

import (
	"errors"
	"fmt"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
)

// SourceLocation captures a source span for parser diagnostics.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// ParseError is a syntax fault at a source location. Incomplete marks
// failures caused by running out of tokens mid-construct in interactive
// mode; a collecting REPL treats those as "keep reading" rather than
// reporting them.
type ParseError struct {
	Message    string
	Location   SourceLocation
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Syntax error at %d:%d: %s", e.Location.Line, e.Location.Column, e.Message)
}

// IsIncomplete reports whether err marks input that further lines could
// complete, from either the parser or the lexer.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Incomplete
	}
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Incomplete
	}
	return false
}

func locationForToken(tok lexer.Token) SourceLocation {
	end := tokenEnd(tok)
	return SourceLocation{
		Line:      tok.Line,
		Column:    tok.Column,
		EndLine:   end.Line,
		EndColumn: end.Column,
	}
}
