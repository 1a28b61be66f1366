package interpreter

import (
	"fmt"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
)

// ErrorKind classifies runtime failures for rendering and for tests.
type ErrorKind int

const (
	ErrUndefinedVariable ErrorKind = iota
	ErrType
	ErrArithmetic
	ErrArity
	ErrStackOverflow
	ErrSyntax
)

// Label is the kind's diagnostic heading.
func (k ErrorKind) Label() string {
	switch k {
	case ErrUndefinedVariable:
		return "Undefined variable error"
	case ErrType:
		return "Type error"
	case ErrArithmetic:
		return "Arithmetic error"
	case ErrArity:
		return "Arity error"
	case ErrStackOverflow:
		return "Stack overflow error"
	case ErrSyntax:
		return "Syntax error"
	default:
		return "Runtime error"
	}
}

// CallNote records one enclosing call site active when an error was raised,
// innermost first.
type CallNote struct {
	Function string
	Location ast.Position
}

// RuntimeError is any failure raised during evaluation. Location points at
// the start of the node that raised it; Notes carry up to three enclosing
// call sites for "called from" reporting.
type RuntimeError struct {
	Kind     ErrorKind
	Message  string
	Location ast.Position
	Notes    []CallNote
}

func (e *RuntimeError) Error() string {
	if e.Location == (ast.Position{}) {
		return fmt.Sprintf("%s: %s", e.Kind.Label(), e.Message)
	}
	return fmt.Sprintf("%s at %d:%d: %s", e.Kind.Label(), e.Location.Line, e.Location.Column, e.Message)
}

// errorAt builds a RuntimeError positioned at the given node, capturing the
// current call stack.
func (i *Interpreter) errorAt(kind ErrorKind, node ast.Node, format string, args ...any) error {
	return &RuntimeError{
		Kind:     kind,
		Message:  fmt.Sprintf(format, args...),
		Location: node.Span().Start,
		Notes:    i.snapshotCallNotes(),
	}
}

func (i *Interpreter) snapshotCallNotes() []CallNote {
	if len(i.callStack) == 0 {
		return nil
	}
	notes := make([]CallNote, 0, maxCallNotes)
	for idx := len(i.callStack) - 1; idx >= 0 && len(notes) < maxCallNotes; idx-- {
		frame := i.callStack[idx]
		notes = append(notes, CallNote{Function: frame.function, Location: frame.site})
	}
	return notes
}

const maxCallNotes = 3
