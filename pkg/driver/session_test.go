package driver

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/interpreter"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// newTestSession builds a session over in-memory writers.
func newTestSession(t *testing.T, cfg Config) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	return NewSession(cfg, &out, &errOut), &out, &errOut
}

func TestEvalSourceEchoesFinalExpression(t *testing.T) {
	session, _, _ := newTestSession(t, DefaultConfig())

	result, err := session.EvalSource("test", "1 + 2 * 3;")
	if err != nil {
		t.Fatalf("EvalSource returned error: %v", err)
	}
	if !result.Echo {
		t.Fatal("Echo = false for an expression statement, want true")
	}
	num, ok := result.Value.(runtime.NumberValue)
	if !ok || num.Val != 7 {
		t.Fatalf("Value = %#v, want 7", result.Value)
	}
}

func TestEvalSourceDeclarationsDoNotEcho(t *testing.T) {
	session, _, _ := newTestSession(t, DefaultConfig())

	result, err := session.EvalSource("test", "var x = 1;")
	if err != nil {
		t.Fatalf("EvalSource returned error: %v", err)
	}
	if result.Echo {
		t.Fatal("Echo = true for a declaration, want false")
	}
}

func TestEvalSourceBindingsPersistAcrossUnits(t *testing.T) {
	session, _, _ := newTestSession(t, DefaultConfig())

	if _, err := session.EvalSource("test", "var x = 40;"); err != nil {
		t.Fatalf("first unit failed: %v", err)
	}
	result, err := session.EvalSource("test", "x + 2;")
	if err != nil {
		t.Fatalf("second unit failed: %v", err)
	}
	if num := result.Value.(runtime.NumberValue); num.Val != 42 {
		t.Fatalf("x + 2 = %v, want 42", num.Val)
	}
}

func TestEvalSourceBindingsSurviveFailedUnit(t *testing.T) {
	session, _, _ := newTestSession(t, DefaultConfig())

	_, err := session.EvalSource("test", "var x = 1; missing;")
	if err == nil {
		t.Fatal("unit with undefined reference succeeded, want error")
	}
	result, err := session.EvalSource("test", "x;")
	if err != nil {
		t.Fatalf("binding from failed unit lost: %v", err)
	}
	if num := result.Value.(runtime.NumberValue); num.Val != 1 {
		t.Fatalf("x = %v, want 1", num.Val)
	}
}

func TestEvalSourceHonoursMaxCallDepth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxCallDepth = 10
	session, _, _ := newTestSession(t, cfg)

	_, err := session.EvalSource("test", "fun loop() { return loop(); } loop();")
	var runtimeErr *interpreter.RuntimeError
	if !errors.As(err, &runtimeErr) {
		t.Fatalf("error = %v, want *RuntimeError", err)
	}
	if runtimeErr.Kind != interpreter.ErrStackOverflow {
		t.Fatalf("Kind = %v, want ErrStackOverflow", runtimeErr.Kind)
	}
}

func TestRunSourceReportsErrorWithSnippet(t *testing.T) {
	session, _, errOut := newTestSession(t, DefaultConfig())

	err := session.RunSource("test", "var x = 1;\nx + missing;")
	if err == nil {
		t.Fatal("RunSource succeeded, want error")
	}
	report := errOut.String()
	if !strings.Contains(report, "Undefined variable error at 2:5: Undefined variable 'missing'") {
		t.Fatalf("report missing heading:\n%s", report)
	}
	if !strings.Contains(report, "   2 | x + missing;") {
		t.Fatalf("report missing source line:\n%s", report)
	}
	if !strings.Contains(report, "     |     ^") {
		t.Fatalf("report missing caret:\n%s", report)
	}
}

func TestRunSourceLexicalError(t *testing.T) {
	session, _, errOut := newTestSession(t, DefaultConfig())

	err := session.RunSource("test", "var x = @;")
	if err == nil {
		t.Fatal("RunSource succeeded, want error")
	}
	if !strings.Contains(errOut.String(), "Lexical error at 1:9: Unexpected character '@'") {
		t.Fatalf("report = %q", errOut.String())
	}
}

func TestRunSourceHaltsAtFirstError(t *testing.T) {
	session, out, _ := newTestSession(t, DefaultConfig())

	err := session.RunSource("test", "log \"before\";\nmissing;\nlog \"after\";")
	if err == nil {
		t.Fatal("RunSource succeeded, want error")
	}
	if got, want := out.String(), "before\n"; got != want {
		t.Fatalf("output = %q, want %q (statements after the failure must not run)", got, want)
	}
}

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.reef")
	source := "fun fact(n) { if n <= 1 then { return 1; } return n * fact(n - 1); }\nlog fact(5);\n"
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	session, out, _ := newTestSession(t, DefaultConfig())
	if err := session.RunFile(path); err != nil {
		t.Fatalf("RunFile returned error: %v", err)
	}
	if got, want := out.String(), "120\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunFileMissing(t *testing.T) {
	session, _, errOut := newTestSession(t, DefaultConfig())
	if err := session.RunFile(filepath.Join(t.TempDir(), "absent.reef")); err == nil {
		t.Fatal("RunFile on missing path succeeded, want error")
	}
	if !strings.Contains(errOut.String(), "cannot read") {
		t.Fatalf("report = %q", errOut.String())
	}
}

func TestDescribeWithSourceCallNotes(t *testing.T) {
	session, _, _ := newTestSession(t, DefaultConfig())

	source := "fun inner() { return missing; }\nfun outer() { return inner(); }\nouter();"
	_, err := session.EvalSource("test", source)
	if err == nil {
		t.Fatal("EvalSource succeeded, want error")
	}
	report := DescribeWithSource(err, source)
	if !strings.Contains(report, "called from inner at 2:22") {
		t.Fatalf("report missing inner call note:\n%s", report)
	}
	if !strings.Contains(report, "called from outer at 3:1") {
		t.Fatalf("report missing outer call note:\n%s", report)
	}
}

func TestDebugTraceTokensAndAST(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = 2
	session, _, errOut := newTestSession(t, cfg)

	if _, err := session.EvalSource("test", "var x = 1;"); err != nil {
		t.Fatalf("EvalSource returned error: %v", err)
	}
	trace := errOut.String()
	if !strings.Contains(trace, "-- tokens (test):") {
		t.Fatalf("trace missing token dump:\n%s", trace)
	}
	if !strings.Contains(trace, "1:1 var 'var'") {
		t.Fatalf("trace missing var token:\n%s", trace)
	}
	if !strings.Contains(trace, "-- ast (test):") {
		t.Fatalf("trace missing ast dump:\n%s", trace)
	}
	if !strings.Contains(trace, `"type": "VariableDeclaration"`) {
		t.Fatalf("trace missing node type:\n%s", trace)
	}
}

func TestDebugTraceStatements(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Debug = 3
	session, _, errOut := newTestSession(t, cfg)

	if _, err := session.EvalSource("test", "var x = 1;\nx = 2;"); err != nil {
		t.Fatalf("EvalSource returned error: %v", err)
	}
	trace := errOut.String()
	if !strings.Contains(trace, "-- eval VariableDeclaration at 1:1") {
		t.Fatalf("trace missing declaration step:\n%s", trace)
	}
	if !strings.Contains(trace, "-- eval ExpressionStatement at 2:1") {
		t.Fatalf("trace missing assignment step:\n%s", trace)
	}
}

func TestDebugZeroIsSilent(t *testing.T) {
	session, _, errOut := newTestSession(t, DefaultConfig())

	if _, err := session.EvalSource("test", "1 + 1;"); err != nil {
		t.Fatalf("EvalSource returned error: %v", err)
	}
	if errOut.Len() != 0 {
		t.Fatalf("trace output at debug 0: %q", errOut.String())
	}
}
