package interpreter

import (
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// Control flow travels through the evaluator's error return as signal values.
// Loops absorb break and continue, call boundaries absorb return; a signal
// that reaches the top level is a misplaced statement and becomes a syntax
// error carrying the statement's position.

type breakSignal struct {
	pos ast.Position
}

func (breakSignal) Error() string { return "break" }

type continueSignal struct {
	pos ast.Position
}

func (continueSignal) Error() string { return "continue" }

type returnSignal struct {
	value runtime.Value
	pos   ast.Position
}

func (returnSignal) Error() string { return "return" }

// escapedSignalError converts a control signal that crossed its last legal
// boundary into the syntax error reported to the user. Non-signal errors are
// returned unchanged.
func (i *Interpreter) escapedSignalError(err error) error {
	switch sig := err.(type) {
	case returnSignal:
		return &RuntimeError{Kind: ErrSyntax, Message: "return outside function", Location: sig.pos, Notes: i.snapshotCallNotes()}
	case breakSignal:
		return &RuntimeError{Kind: ErrSyntax, Message: "break outside loop", Location: sig.pos, Notes: i.snapshotCallNotes()}
	case continueSignal:
		return &RuntimeError{Kind: ErrSyntax, Message: "continue outside loop", Location: sig.pos, Notes: i.snapshotCallNotes()}
	default:
		return err
	}
}
