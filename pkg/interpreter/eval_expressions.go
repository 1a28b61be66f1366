package interpreter

import (
	"errors"
	"fmt"
	"math"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

func (i *Interpreter) evaluateExpression(node ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.NumberLiteral:
		return runtime.NumberValue{Val: n.Value}, nil
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.BooleanLiteral:
		return runtime.BoolValue{Val: n.Value}, nil
	case *ast.NilLiteral:
		return runtime.NilValue{}, nil
	case *ast.Identifier:
		val, err := env.Get(n.Name)
		if err != nil {
			return nil, i.errorAt(ErrUndefinedVariable, n, "%s", err)
		}
		return val, nil
	case *ast.UnaryExpression:
		return i.evaluateUnaryExpression(n, env)
	case *ast.BinaryExpression:
		return i.evaluateBinaryExpression(n, env)
	case *ast.AssignmentExpression:
		return i.evaluateAssignment(n, env)
	case *ast.CallExpression:
		return i.evaluateCall(n, env)
	case *ast.FunctionLiteral:
		return &runtime.FunctionValue{Parameters: n.Parameters, Body: n.Body, Closure: env}, nil
	default:
		return nil, fmt.Errorf("unsupported expression type: %s", n.NodeType())
	}
}

func (i *Interpreter) evaluateUnaryExpression(expr *ast.UnaryExpression, env *runtime.Environment) (runtime.Value, error) {
	operand, err := i.evaluateExpression(expr.Operand, env)
	if err != nil {
		return nil, err
	}
	switch expr.Operator {
	case "-":
		num, ok := operand.(runtime.NumberValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator '-' requires a number, got %s", runtime.TypeName(operand))
		}
		return runtime.NumberValue{Val: -num.Val}, nil
	case "not":
		b, ok := operand.(runtime.BoolValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator 'not' requires a boolean, got %s", runtime.TypeName(operand))
		}
		return runtime.BoolValue{Val: !b.Val}, nil
	case "typeof":
		return runtime.StringValue{Val: runtime.TypeName(operand)}, nil
	default:
		return nil, fmt.Errorf("unsupported unary operator %s", expr.Operator)
	}
}

func (i *Interpreter) evaluateBinaryExpression(expr *ast.BinaryExpression, env *runtime.Environment) (runtime.Value, error) {
	left, err := i.evaluateExpression(expr.Left, env)
	if err != nil {
		return nil, err
	}

	// and/or short-circuit: the right side only runs when the left side did
	// not already decide the result. Every operand that runs must be boolean.
	switch expr.Operator {
	case "and":
		lb, ok := left.(runtime.BoolValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator 'and' requires booleans, got %s", runtime.TypeName(left))
		}
		if !lb.Val {
			return runtime.BoolValue{Val: false}, nil
		}
		right, err := i.evaluateExpression(expr.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(runtime.BoolValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator 'and' requires booleans, got %s", runtime.TypeName(right))
		}
		return rb, nil
	case "or":
		lb, ok := left.(runtime.BoolValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator 'or' requires booleans, got %s", runtime.TypeName(left))
		}
		if lb.Val {
			return runtime.BoolValue{Val: true}, nil
		}
		right, err := i.evaluateExpression(expr.Right, env)
		if err != nil {
			return nil, err
		}
		rb, ok := right.(runtime.BoolValue)
		if !ok {
			return nil, i.errorAt(ErrType, expr, "Operator 'or' requires booleans, got %s", runtime.TypeName(right))
		}
		return rb, nil
	}

	right, err := i.evaluateExpression(expr.Right, env)
	if err != nil {
		return nil, err
	}

	switch expr.Operator {
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	}

	ln, lok := left.(runtime.NumberValue)
	rn, rok := right.(runtime.NumberValue)
	if !lok || !rok {
		return nil, i.errorAt(ErrType, expr, "Operator '%s' requires numbers, got %s and %s",
			expr.Operator, runtime.TypeName(left), runtime.TypeName(right))
	}

	switch expr.Operator {
	case "+":
		return runtime.NumberValue{Val: ln.Val + rn.Val}, nil
	case "-":
		return runtime.NumberValue{Val: ln.Val - rn.Val}, nil
	case "*":
		return runtime.NumberValue{Val: ln.Val * rn.Val}, nil
	case "/":
		if rn.Val == 0 {
			return nil, i.errorAt(ErrArithmetic, expr, "Division by zero")
		}
		return runtime.NumberValue{Val: ln.Val / rn.Val}, nil
	case "%":
		if rn.Val == 0 {
			return nil, i.errorAt(ErrArithmetic, expr, "Modulo by zero")
		}
		return runtime.NumberValue{Val: math.Mod(ln.Val, rn.Val)}, nil
	case "<":
		return runtime.BoolValue{Val: ln.Val < rn.Val}, nil
	case "<=":
		return runtime.BoolValue{Val: ln.Val <= rn.Val}, nil
	case ">":
		return runtime.BoolValue{Val: ln.Val > rn.Val}, nil
	case ">=":
		return runtime.BoolValue{Val: ln.Val >= rn.Val}, nil
	default:
		return nil, fmt.Errorf("unsupported binary operator %s", expr.Operator)
	}
}

// valuesEqual implements == across any pair of values: same-kind scalars
// compare structurally, functions compare by identity, different kinds are
// never equal.
func valuesEqual(left, right runtime.Value) bool {
	if left.Kind() != right.Kind() {
		return false
	}
	switch l := left.(type) {
	case runtime.NumberValue:
		return l.Val == right.(runtime.NumberValue).Val
	case runtime.StringValue:
		return l.Val == right.(runtime.StringValue).Val
	case runtime.BoolValue:
		return l.Val == right.(runtime.BoolValue).Val
	case runtime.NilValue:
		return true
	case *runtime.FunctionValue:
		r, ok := right.(*runtime.FunctionValue)
		return ok && l == r
	case *runtime.NativeFunctionValue:
		r, ok := right.(*runtime.NativeFunctionValue)
		return ok && l == r
	default:
		return false
	}
}

func (i *Interpreter) evaluateAssignment(expr *ast.AssignmentExpression, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluateExpression(expr.Value, env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(expr.Target.Name, val); err != nil {
		return nil, i.errorAt(ErrUndefinedVariable, expr.Target, "%s", err)
	}
	return val, nil
}

func (i *Interpreter) evaluateCall(call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	callee, err := i.evaluateExpression(call.Callee, env)
	if err != nil {
		return nil, err
	}
	args := make([]runtime.Value, 0, len(call.Arguments))
	for _, argExpr := range call.Arguments {
		val, err := i.evaluateExpression(argExpr, env)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		return i.callFunction(fn, args, call)
	case *runtime.NativeFunctionValue:
		return i.callNative(fn, args, call, env)
	default:
		return nil, i.errorAt(ErrType, call, "Cannot call a %s value", runtime.TypeName(callee))
	}
}

func (i *Interpreter) callFunction(fn *runtime.FunctionValue, args []runtime.Value, call *ast.CallExpression) (runtime.Value, error) {
	if len(args) != fn.Arity() {
		return nil, i.errorAt(ErrArity, call, "Function '%s' expects %d arguments, got %d",
			functionLabel(fn), fn.Arity(), len(args))
	}
	if len(i.callStack) >= i.maxCallDepth {
		return nil, i.errorAt(ErrStackOverflow, call, "Maximum call depth %d exceeded", i.maxCallDepth)
	}
	i.callStack = append(i.callStack, callFrame{function: functionLabel(fn), site: call.Span().Start})
	defer func() { i.callStack = i.callStack[:len(i.callStack)-1] }()

	localEnv := runtime.NewEnvironment(fn.Closure)
	for idx, param := range fn.Parameters {
		localEnv.Define(param.Name, args[idx])
	}
	if _, err := i.evaluateBlock(fn.Body, localEnv); err != nil {
		switch sig := err.(type) {
		case returnSignal:
			if sig.value == nil {
				return runtime.NilValue{}, nil
			}
			return sig.value, nil
		case breakSignal, continueSignal:
			// break and continue never cross a call boundary.
			return nil, i.escapedSignalError(err)
		default:
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

func (i *Interpreter) callNative(fn *runtime.NativeFunctionValue, args []runtime.Value, call *ast.CallExpression, env *runtime.Environment) (runtime.Value, error) {
	if fn.Arity >= 0 && len(args) != fn.Arity {
		return nil, i.errorAt(ErrArity, call, "Function '%s' expects %d arguments, got %d",
			fn.Name, fn.Arity, len(args))
	}
	result, err := fn.Impl(&runtime.NativeCallContext{Env: env}, args)
	if err != nil {
		var runtimeErr *RuntimeError
		if errors.As(err, &runtimeErr) {
			return nil, err
		}
		return nil, i.errorAt(ErrType, call, "%s", err)
	}
	if result == nil {
		return runtime.NilValue{}, nil
	}
	return result, nil
}

func functionLabel(fn *runtime.FunctionValue) string {
	if fn.Name == "" {
		return "<anonymous>"
	}
	return fn.Name
}
