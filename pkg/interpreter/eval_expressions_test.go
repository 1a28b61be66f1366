package interpreter

import (
	"testing"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/runtime"
)

func wantBool(t *testing.T, val runtime.Value, want bool) {
	t.Helper()
	b, ok := val.(runtime.BoolValue)
	if !ok {
		t.Fatalf("value = %#v, want boolean %v", val, want)
	}
	if b.Val != want {
		t.Fatalf("value = %v, want %v", b.Val, want)
	}
}

func TestArithmeticPrecedence(t *testing.T) {
	cases := []struct {
		source string
		want   float64
	}{
		{"1 + 2 * 3;", 7},
		{"(1 + 2) * 3;", 9},
		{"10 - 4 - 3;", 3},
		{"7 % 3;", 1},
		{"1 / 2;", 0.5},
		{"-3 * -2;", 6},
		{"2 * 3 + 4 * 5;", 26},
	}
	for _, tc := range cases {
		val, _, _ := evalProgram(t, tc.source)
		wantNumber(t, val, tc.want)
	}
}

func TestComparisonOperators(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"1 < 2;", true},
		{"2 <= 2;", true},
		{"3 > 4;", false},
		{"4 >= 4;", true},
		{"1 < 2 and 2 < 3;", true},
		{"1 < 2 and 3 < 2;", false},
		{"1 > 2 or 2 > 1;", true},
	}
	for _, tc := range cases {
		val, _, _ := evalProgram(t, tc.source)
		wantBool(t, val, tc.want)
	}
}

func TestEqualityAcrossKinds(t *testing.T) {
	cases := []struct {
		source string
		want   bool
	}{
		{"1 == 1;", true},
		{"1 == 2;", false},
		{`"a" == "a";`, true},
		{`"a" == "b";`, false},
		{"true == true;", true},
		{"nil == nil;", true},
		{`1 == "1";`, false},
		{"nil == false;", false},
		{"1 != 2;", true},
		{`"a" != "a";`, false},
	}
	for _, tc := range cases {
		val, _, _ := evalProgram(t, tc.source)
		wantBool(t, val, tc.want)
	}
}

func TestFunctionEqualityIsIdentity(t *testing.T) {
	val, _, _ := evalProgram(t, "fun f() { }\nvar g = f;\nf == g;")
	wantBool(t, val, true)

	val, _, _ = evalProgram(t, "fun f() { }\nfun h() { }\nf == h;")
	wantBool(t, val, false)

	val, _, _ = evalProgram(t, "len == len;")
	wantBool(t, val, true)

	val, _, _ = evalProgram(t, "len == str;")
	wantBool(t, val, false)
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	// boom is unbound; reaching it would fail, so these prove the right
	// side never ran.
	val, _, _ := evalProgram(t, "false and boom;")
	wantBool(t, val, false)

	val, _, _ = evalProgram(t, "true or boom;")
	wantBool(t, val, true)

	runtimeErr := evalError(t, "true and boom;")
	if runtimeErr.Kind != ErrUndefinedVariable {
		t.Fatalf("kind = %v, want ErrUndefinedVariable", runtimeErr.Kind)
	}
}

func TestTypeofOperator(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{"typeof 1;", "number"},
		{`typeof "s";`, "string"},
		{"typeof true;", "boolean"},
		{"typeof nil;", "nil"},
		{"fun f() { }\ntypeof f;", "function"},
		{"typeof clock;", "function"},
		{"typeof typeof 1;", "string"},
	}
	for _, tc := range cases {
		val, _, _ := evalProgram(t, tc.source)
		s, ok := val.(runtime.StringValue)
		if !ok || s.Val != tc.want {
			t.Fatalf("%q = %#v, want %q", tc.source, val, tc.want)
		}
	}
}

func TestTypeErrors(t *testing.T) {
	cases := []struct {
		source string
		want   string
	}{
		{`var x = 1 + "a";`, "Operator '+' requires numbers, got number and string"},
		{`"a" < "b";`, "Operator '<' requires numbers, got string and string"},
		{`-"s";`, "Operator '-' requires a number, got string"},
		{"not 1;", "Operator 'not' requires a boolean, got number"},
		{"1 and true;", "Operator 'and' requires booleans, got number"},
		{"true and 1;", "Operator 'and' requires booleans, got number"},
		{"false or nil;", "Operator 'or' requires booleans, got nil"},
		{"if 1 then { }", "Condition of 'if' must be a boolean, got number"},
		{"for (nil) do { }", "Condition of 'for' must be a boolean, got nil"},
		{"5();", "Cannot call a number value"},
		{`var s = "x";
s();`, "Cannot call a string value"},
	}
	for _, tc := range cases {
		runtimeErr := evalError(t, tc.source)
		if runtimeErr.Kind != ErrType {
			t.Fatalf("%q kind = %v, want ErrType", tc.source, runtimeErr.Kind)
		}
		if runtimeErr.Message != tc.want {
			t.Fatalf("%q message = %q, want %q", tc.source, runtimeErr.Message, tc.want)
		}
	}
}

func TestBinaryTypeErrorPosition(t *testing.T) {
	runtimeErr := evalError(t, `var x = 1 + "a";`)
	if runtimeErr.Location.Line != 1 || runtimeErr.Location.Column != 9 {
		t.Fatalf("location = %d:%d, want 1:9", runtimeErr.Location.Line, runtimeErr.Location.Column)
	}
}

func TestDivisionAndModuloByZero(t *testing.T) {
	runtimeErr := evalError(t, "1 / 0;")
	if runtimeErr.Kind != ErrArithmetic {
		t.Fatalf("kind = %v, want ErrArithmetic", runtimeErr.Kind)
	}
	if got, want := runtimeErr.Message, "Division by zero"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}

	runtimeErr = evalError(t, "5 % 0;")
	if got, want := runtimeErr.Message, "Modulo by zero"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
}

func TestAssignmentYieldsAssignedValue(t *testing.T) {
	val, _, _ := evalProgram(t, "var a = 0;\nvar b = 0;\na = b = 5;\na + b;")
	wantNumber(t, val, 10)
}

func TestAnonymousFunctionCalledInline(t *testing.T) {
	val, _, _ := evalProgram(t, "var twice = fun (x) { return x * 2; };\ntwice(21);")
	wantNumber(t, val, 42)
}

func TestFunctionAsArgument(t *testing.T) {
	source := `fun apply(f, x) { return f(x); }
fun inc(n) { return n + 1; }
apply(inc, 41);`
	val, _, _ := evalProgram(t, source)
	wantNumber(t, val, 42)
}

func TestCallChainedReturnValue(t *testing.T) {
	source := `fun makeAdder(n) {
  return fun (x) { return x + n; };
}
makeAdder(40)(2);`
	val, _, _ := evalProgram(t, source)
	wantNumber(t, val, 42)
}
