// Package runtime defines the values reef programs evaluate to and the
// lexical environments they are bound in.
package runtime

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindNumber Kind = iota
	KindString
	KindBool
	KindNil
	KindFunction
	KindNativeFunction
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindNil:
		return "nil"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "native_function"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

// NumberValue holds reef's single numeric kind, a 64-bit float.
type NumberValue struct {
	Val float64
}

func (v NumberValue) Kind() Kind { return KindNumber }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

//-----------------------------------------------------------------------------
// Functions & closures
//-----------------------------------------------------------------------------

// FunctionValue is a closure: the parameter list and body from the defining
// node, plus the environment active at the definition site. Name is empty
// for anonymous function literals.
type FunctionValue struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Closure    *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// Arity reports the declared parameter count.
func (v *FunctionValue) Arity() int { return len(v.Parameters) }

// NativeCallContext provides hooks for native functions.
type NativeCallContext struct {
	Env *Environment
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

type NativeFunctionValue struct {
	Name  string
	Arity int
	Impl  NativeFunc
}

func (v *NativeFunctionValue) Kind() Kind { return KindNativeFunction }

//-----------------------------------------------------------------------------
// Rendering helpers
//-----------------------------------------------------------------------------

// TypeName is the name `typeof` reports for a value. Both function kinds
// answer "function".
func TypeName(v Value) string {
	switch v.(type) {
	case NumberValue:
		return "number"
	case StringValue:
		return "string"
	case BoolValue:
		return "boolean"
	case NilValue:
		return "nil"
	case *FunctionValue, *NativeFunctionValue:
		return "function"
	default:
		return v.Kind().String()
	}
}

// FormatValue renders a value the way `log` prints it. Numbers use plain
// decimal notation with no exponent and no trailing zeros; strings print
// verbatim.
func FormatValue(v Value) string {
	switch val := v.(type) {
	case NumberValue:
		return FormatNumber(val.Val)
	case StringValue:
		return val.Val
	case BoolValue:
		if val.Val {
			return "true"
		}
		return "false"
	case NilValue:
		return "nil"
	case *FunctionValue:
		params := make([]string, 0, len(val.Parameters))
		for _, p := range val.Parameters {
			params = append(params, p.Name)
		}
		if val.Name == "" {
			return fmt.Sprintf("<fun (%s)>", strings.Join(params, ", "))
		}
		return fmt.Sprintf("<fun %s(%s)>", val.Name, strings.Join(params, ", "))
	case *NativeFunctionValue:
		return fmt.Sprintf("<native fun %s>", val.Name)
	default:
		return fmt.Sprintf("[%s]", v.Kind())
	}
}

// FormatNumber renders a float the way reef number values print.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
