package driver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/interpreter"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/lexer"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/parser"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// Describe renders err in the reporting form `<ErrorKind> at line:col:
// <message>`. The typed diagnostics already print that way; anything else
// passes through unchanged.
func Describe(err error) string {
	return err.Error()
}

// DescribeWithSource renders err like Describe and, when the error carries a
// position inside source, appends the offending line with a caret under the
// column. Runtime errors additionally list their "called from" notes,
// innermost first.
func DescribeWithSource(err error, source string) string {
	var b strings.Builder
	b.WriteString(Describe(err))

	if line, col, ok := errorPosition(err); ok {
		writeSnippet(&b, source, line, col)
	}

	var runtimeErr *interpreter.RuntimeError
	if errors.As(err, &runtimeErr) {
		for _, note := range runtimeErr.Notes {
			fmt.Fprintf(&b, "\n  called from %s at %d:%d", note.Function, note.Location.Line, note.Location.Column)
		}
	}
	return b.String()
}

// errorPosition extracts the 1-based line/column a diagnostic points at. A
// zero position (an error with no source anchor) reports false.
func errorPosition(err error) (line, col int, ok bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Line, lexErr.Column, lexErr.Line > 0
	}
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Location.Line, parseErr.Location.Column, parseErr.Location.Line > 0
	}
	var runtimeErr *interpreter.RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Location.Line, runtimeErr.Location.Column, runtimeErr.Location.Line > 0
	}
	return 0, 0, false
}

// writeSnippet appends the numbered source line and a caret under col.
// Coordinates are clamped so a stale position cannot break rendering.
func writeSnippet(b *strings.Builder, source string, line, col int) {
	lines := strings.Split(source, "\n")
	if len(lines) == 0 {
		return
	}
	if line < 1 {
		line = 1
	}
	if line > len(lines) {
		line = len(lines)
	}
	if col < 1 {
		col = 1
	}
	text := lines[line-1]
	fmt.Fprintf(b, "\n%4d | %s", line, text)
	fmt.Fprintf(b, "\n     | %s^", strings.Repeat(" ", col-1))
}

// formatResult renders a submission's value for the REPL echo. Strings are
// quoted so `"nil"` and nil stay distinguishable; everything else prints the
// way log prints it.
func formatResult(v runtime.Value) string {
	if s, ok := v.(runtime.StringValue); ok {
		return strconv.Quote(s.Val)
	}
	return runtime.FormatValue(v)
}
