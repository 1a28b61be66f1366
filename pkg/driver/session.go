// Package driver orchestrates lexing, parsing, and evaluation per compilation
// unit, for both file runs and the interactive loop. It is the sole recovery
// boundary: core packages return typed errors, the driver renders them and
// decides whether the run continues.
package driver

import (
	"fmt"
	"io"
	"os"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/interpreter"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/parser"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// Session owns one interpreter and its persistent top-level environment.
// Bindings made by one evaluated unit are visible to the next, which is what
// keeps REPL state alive across submissions. A Session is not safe for
// concurrent use; execution is strictly sequential.
type Session struct {
	config Config
	interp *interpreter.Interpreter
	out    io.Writer
	errOut io.Writer
	trace  io.Writer
}

// NewSession builds a session from cfg. Log output goes to out, reported
// errors and debug traces to errOut; nil writers default to stdout/stderr.
func NewSession(cfg Config, out, errOut io.Writer) *Session {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	s := &Session{config: cfg, out: out, errOut: errOut, trace: errOut}
	opts := []interpreter.Option{
		interpreter.WithOutput(out),
		interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
	}
	if cfg.Debug >= 3 {
		opts = append(opts, interpreter.WithStatementHook(s.traceStatement))
	}
	s.interp = interpreter.New(opts...)
	return s
}

// Config returns the settings the session was built with.
func (s *Session) Config() Config {
	return s.config
}

// Result is the outcome of one successfully evaluated compilation unit.
type Result struct {
	Value runtime.Value
	// Echo reports whether the unit's final statement was an expression
	// statement, meaning a REPL should print Value.
	Echo bool
}

// EvalSource runs one compilation unit: lex, parse, evaluate top-level
// statements in order against the session environment. The first error stops
// the unit; bindings committed by earlier statements persist. name labels the
// unit in debug traces.
func (s *Session) EvalSource(name, source string) (Result, error) {
	if s.config.Debug >= 1 {
		s.traceTokens(name, source)
	}
	program, err := parser.Parse(source)
	if err != nil {
		return Result{}, err
	}
	if s.config.Debug >= 2 {
		s.traceAST(name, program)
	}
	value, err := s.interp.EvaluateProgram(program, nil)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: value, Echo: endsInExpression(program)}, nil
}

// RunFile executes path as one file-mode unit. Any error is reported to the
// session's error writer and returned; remaining statements are skipped.
func (s *Session) RunFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(s.errOut, "cannot read %s: %v\n", path, err)
		return err
	}
	return s.RunSource(path, string(source))
}

// RunSource is RunFile for source already in hand (stdin, tests).
func (s *Session) RunSource(name, source string) error {
	if _, err := s.EvalSource(name, source); err != nil {
		fmt.Fprintln(s.errOut, DescribeWithSource(err, source))
		return err
	}
	return nil
}

func endsInExpression(program *ast.Program) bool {
	if len(program.Statements) == 0 {
		return false
	}
	_, ok := program.Statements[len(program.Statements)-1].(*ast.ExpressionStatement)
	return ok
}
