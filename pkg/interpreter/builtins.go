package interpreter

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

// installBuiltins seeds the global environment with the native functions.
// Errors returned by an Impl surface as type errors at the call site.
func (i *Interpreter) installBuiltins() {
	for _, fn := range builtinFunctions() {
		i.global.Define(fn.Name, fn)
	}
}

func builtinFunctions() []*runtime.NativeFunctionValue {
	return []*runtime.NativeFunctionValue{
		{
			Name:  "clock",
			Arity: 0,
			Impl: func(_ *runtime.NativeCallContext, _ []runtime.Value) (runtime.Value, error) {
				return runtime.NumberValue{Val: float64(time.Now().UnixNano()) / 1e9}, nil
			},
		},
		{
			Name:  "len",
			Arity: 1,
			Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
				s, ok := args[0].(runtime.StringValue)
				if !ok {
					return nil, fmt.Errorf("Function 'len' expects a string, got %s", runtime.TypeName(args[0]))
				}
				return runtime.NumberValue{Val: float64(len(s.Val))}, nil
			},
		},
		{
			Name:  "str",
			Arity: 1,
			Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
				return runtime.StringValue{Val: runtime.FormatValue(args[0])}, nil
			},
		},
		{
			Name:  "num",
			Arity: 1,
			Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
				s, ok := args[0].(runtime.StringValue)
				if !ok {
					return nil, fmt.Errorf("Function 'num' expects a string, got %s", runtime.TypeName(args[0]))
				}
				// Accept the same '_' separators number literals allow.
				parsed, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s.Val), "_", ""), 64)
				if err != nil {
					return nil, fmt.Errorf("Cannot parse '%s' as a number", s.Val)
				}
				return runtime.NumberValue{Val: parsed}, nil
			},
		},
	}
}
