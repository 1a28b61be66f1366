// Package interpreter walks reef syntax trees and evaluates them against
// chained environments.
package interpreter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// DefaultMaxCallDepth bounds function call nesting when no override is given.
const DefaultMaxCallDepth = 1000

// callFrame records one active function call for diagnostics.
type callFrame struct {
	function string
	site     ast.Position
}

// Interpreter drives evaluation of reef AST nodes. It owns the global
// environment, the call stack, and the writer log statements print to.
type Interpreter struct {
	global        *runtime.Environment
	output        io.Writer
	maxCallDepth  int
	callStack     []callFrame
	statementHook func(ast.Statement)
}

// Option configures an Interpreter at construction time.
type Option func(*Interpreter)

// WithOutput redirects log statement output. The default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(i *Interpreter) {
		if w != nil {
			i.output = w
		}
	}
}

// WithMaxCallDepth overrides the function call nesting bound.
func WithMaxCallDepth(depth int) Option {
	return func(i *Interpreter) {
		if depth > 0 {
			i.maxCallDepth = depth
		}
	}
}

// WithStatementHook registers a callback invoked before each statement is
// evaluated. The driver uses it for execution tracing.
func WithStatementHook(hook func(ast.Statement)) Option {
	return func(i *Interpreter) {
		i.statementHook = hook
	}
}

// New returns an interpreter whose global environment holds the built-in
// functions.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		global:       runtime.NewEnvironment(nil),
		output:       os.Stdout,
		maxCallDepth: DefaultMaxCallDepth,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.installBuiltins()
	return i
}

// GlobalEnvironment returns the interpreter's global environment.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

// EvaluateProgram executes top-level statements in order against env (the
// global environment when env is nil) and returns the last statement's value.
// Bindings made by statements that ran before a failure persist. A control
// signal escaping the top level is reported as a syntax error.
func (i *Interpreter) EvaluateProgram(program *ast.Program, env *runtime.Environment) (runtime.Value, error) {
	if env == nil {
		env = i.global
	}
	var last runtime.Value = runtime.NilValue{}
	for _, stmt := range program.Statements {
		val, err := i.evaluateStatement(stmt, env)
		if err != nil {
			return nil, i.escapedSignalError(err)
		}
		last = val
	}
	return last, nil
}

// evaluateStatement yields the statement's value: the expression's value for
// expression statements, nil for everything else.
func (i *Interpreter) evaluateStatement(node ast.Statement, env *runtime.Environment) (runtime.Value, error) {
	if i.statementHook != nil {
		i.statementHook(node)
	}
	switch n := node.(type) {
	case *ast.ExpressionStatement:
		return i.evaluateExpression(n.Expression, env)
	case *ast.VariableDeclaration:
		return i.evaluateVariableDeclaration(n, env)
	case *ast.FunctionDeclaration:
		return i.evaluateFunctionDeclaration(n, env)
	case *ast.BlockStatement:
		return i.evaluateBlock(n, env)
	case *ast.IfStatement:
		return i.evaluateIfStatement(n, env)
	case *ast.ForStatement:
		return i.evaluateForStatement(n, env)
	case *ast.ReturnStatement:
		return i.evaluateReturnStatement(n, env)
	case *ast.BreakStatement:
		return nil, breakSignal{pos: n.Span().Start}
	case *ast.ContinueStatement:
		return nil, continueSignal{pos: n.Span().Start}
	case *ast.LogStatement:
		return i.evaluateLogStatement(n, env)
	default:
		return nil, fmt.Errorf("unsupported statement type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateVariableDeclaration(decl *ast.VariableDeclaration, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(decl.Initializer, env)
	if err != nil {
		return nil, err
	}
	env.Define(decl.Name.Name, val)
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateFunctionDeclaration(decl *ast.FunctionDeclaration, env *runtime.Environment) (runtime.Value, error) {
	fn := &runtime.FunctionValue{
		Name:       decl.Name.Name,
		Parameters: decl.Parameters,
		Body:       decl.Body,
		Closure:    env,
	}
	env.Define(decl.Name.Name, fn)
	return runtime.NilValue{}, nil
}

// evaluateBlock runs the block's statements in a fresh child environment.
func (i *Interpreter) evaluateBlock(block *ast.BlockStatement, env *runtime.Environment) (runtime.Value, error) {
	scope := runtime.NewEnvironment(env)
	for _, stmt := range block.Statements {
		if _, err := i.evaluateStatement(stmt, scope); err != nil {
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateIfStatement(stmt *ast.IfStatement, env *runtime.Environment) (runtime.Value, error) {
	take, err := i.evaluateCondition(stmt.Condition, env, "if")
	if err != nil {
		return nil, err
	}
	if take {
		return i.evaluateBlock(stmt.Consequence, env)
	}
	for _, clause := range stmt.ElseIfs {
		take, err := i.evaluateCondition(clause.Condition, env, "elseif")
		if err != nil {
			return nil, err
		}
		if take {
			return i.evaluateBlock(clause.Body, env)
		}
	}
	if stmt.Alternative != nil {
		return i.evaluateBlock(stmt.Alternative, env)
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateForStatement(stmt *ast.ForStatement, env *runtime.Environment) (runtime.Value, error) {
	for {
		proceed, err := i.evaluateCondition(stmt.Condition, env, "for")
		if err != nil {
			return nil, err
		}
		if !proceed {
			return runtime.NilValue{}, nil
		}
		if _, err := i.evaluateBlock(stmt.Body, env); err != nil {
			switch err.(type) {
			case breakSignal:
				return runtime.NilValue{}, nil
			case continueSignal:
				continue
			default:
				return nil, err
			}
		}
	}
}

// evaluateCondition evaluates a condition expression and requires it to be a
// boolean. where names the construct for the type error.
func (i *Interpreter) evaluateCondition(expr ast.Expression, env *runtime.Environment, where string) (bool, error) {
	val, err := i.evaluateExpression(expr, env)
	if err != nil {
		return false, err
	}
	b, ok := val.(runtime.BoolValue)
	if !ok {
		return false, i.errorAt(ErrType, expr, "Condition of '%s' must be a boolean, got %s", where, runtime.TypeName(val))
	}
	return b.Val, nil
}

func (i *Interpreter) evaluateReturnStatement(stmt *ast.ReturnStatement, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NilValue{}
	if stmt.Value != nil {
		val, err := i.evaluateExpression(stmt.Value, env)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return nil, returnSignal{value: result, pos: stmt.Span().Start}
}

func (i *Interpreter) evaluateLogStatement(stmt *ast.LogStatement, env *runtime.Environment) (runtime.Value, error) {
	parts := make([]string, 0, len(stmt.Values))
	for _, expr := range stmt.Values {
		val, err := i.evaluateExpression(expr, env)
		if err != nil {
			return nil, err
		}
		parts = append(parts, runtime.FormatValue(val))
	}
	fmt.Fprintln(i.output, strings.Join(parts, " "))
	return runtime.NilValue{}, nil
}
