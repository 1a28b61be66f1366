package driver

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
)

// Debug tracing, gated by the configured debug level: 1 dumps tokens per
// unit, 2 adds the parsed tree as JSON, 3 adds a line per evaluated
// statement. Every trace line starts with `-- ` so dumps read as reef
// comments and can be pasted back into a source file.

func (s *Session) tracef(format string, args ...any) {
	fmt.Fprintf(s.trace, "-- "+format+"\n", args...)
}

func (s *Session) traceTokens(name, source string) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		// The parse that follows reports the same error; nothing to dump.
		return
	}
	s.tracef("tokens (%s):", name)
	for _, tok := range tokens {
		s.tracef("  %s", tok)
	}
}

func (s *Session) traceAST(name string, program *ast.Program) {
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		s.tracef("ast (%s): marshal failed: %v", name, err)
		return
	}
	s.tracef("ast (%s):", name)
	for _, line := range strings.Split(string(data), "\n") {
		s.tracef("  %s", line)
	}
}

func (s *Session) traceStatement(stmt ast.Statement) {
	pos := stmt.Span().Start
	s.tracef("eval %s at %d:%d", stmt.NodeType(), pos.Line, pos.Column)
}
