package lexer

import "fmt"

// Error describes a lexical fault at a source position. Incomplete marks
// faults that more input could still repair (an unterminated string at end
// of input in interactive mode); interactive callers keep collecting lines
// instead of reporting those.
type Error struct {
	Message    string
	Line       int
	Column     int
	Offset     int
	Incomplete bool
}

func (e *Error) Error() string {
	return fmt.Sprintf("Lexical error at %d:%d: %s", e.Line, e.Column, e.Message)
}
