package parser

import (
	"errors"
	"testing"

	"github.com/D3VILNOBODY/Reef-Interpreter/pkg/ast"
)

func asBinary(t *testing.T, expr ast.Expression, operator string) *ast.BinaryExpression {
	t.Helper()
	binary, ok := expr.(*ast.BinaryExpression)
	if !ok {
		t.Fatalf("expression = %T, want *ast.BinaryExpression", expr)
	}
	if binary.Operator != operator {
		t.Fatalf("operator = %q, want %q", binary.Operator, operator)
	}
	return binary
}

func numberOf(t *testing.T, expr ast.Expression) float64 {
	t.Helper()
	literal, ok := expr.(*ast.NumberLiteral)
	if !ok {
		t.Fatalf("expression = %T, want *ast.NumberLiteral", expr)
	}
	return literal.Value
}

func TestParseMultiplicationBindsTighterThanAddition(t *testing.T) {
	sum := asBinary(t, firstExpression(t, "1 + 2 * 3;"), "+")
	if got := numberOf(t, sum.Left); got != 1 {
		t.Fatalf("left = %v, want 1", got)
	}
	product := asBinary(t, sum.Right, "*")
	if got := numberOf(t, product.Left); got != 2 {
		t.Fatalf("product left = %v, want 2", got)
	}
	if got := numberOf(t, product.Right); got != 3 {
		t.Fatalf("product right = %v, want 3", got)
	}
}

func TestParseGroupingOverridesPrecedence(t *testing.T) {
	product := asBinary(t, firstExpression(t, "(1 + 2) * 3;"), "*")
	sum := asBinary(t, product.Left, "+")
	if got := numberOf(t, sum.Left); got != 1 {
		t.Fatalf("sum left = %v, want 1", got)
	}
	if got := numberOf(t, product.Right); got != 3 {
		t.Fatalf("product right = %v, want 3", got)
	}
}

func TestParseBinaryLeftAssociative(t *testing.T) {
	// 10 - 4 - 3 must parse as (10 - 4) - 3.
	outer := asBinary(t, firstExpression(t, "10 - 4 - 3;"), "-")
	inner := asBinary(t, outer.Left, "-")
	if got := numberOf(t, inner.Left); got != 10 {
		t.Fatalf("inner left = %v, want 10", got)
	}
	if got := numberOf(t, outer.Right); got != 3 {
		t.Fatalf("outer right = %v, want 3", got)
	}
}

func TestParseComparisonBindsTighterThanLogical(t *testing.T) {
	conjunction := asBinary(t, firstExpression(t, "1 < 2 and 3 >= 4;"), "and")
	asBinary(t, conjunction.Left, "<")
	asBinary(t, conjunction.Right, ">=")
}

func TestParseAndBindsTighterThanOr(t *testing.T) {
	disjunction := asBinary(t, firstExpression(t, "a or b and c;"), "or")
	if _, ok := disjunction.Left.(*ast.Identifier); !ok {
		t.Fatalf("left = %T, want *ast.Identifier", disjunction.Left)
	}
	asBinary(t, disjunction.Right, "and")
}

func TestParseUnaryBindsTighterThanMultiplication(t *testing.T) {
	product := asBinary(t, firstExpression(t, "-a * b;"), "*")
	unary, ok := product.Left.(*ast.UnaryExpression)
	if !ok {
		t.Fatalf("left = %T, want *ast.UnaryExpression", product.Left)
	}
	if unary.Operator != "-" {
		t.Fatalf("operator = %q, want \"-\"", unary.Operator)
	}
}

func TestParseUnaryNesting(t *testing.T) {
	outer, ok := firstExpression(t, "not not ready;").(*ast.UnaryExpression)
	if !ok {
		t.Fatal("outer expression is not unary")
	}
	inner, ok := outer.Operand.(*ast.UnaryExpression)
	if !ok {
		t.Fatal("inner expression is not unary")
	}
	if _, ok := inner.Operand.(*ast.Identifier); !ok {
		t.Fatalf("operand = %T, want *ast.Identifier", inner.Operand)
	}
}

func TestParseTypeofOperator(t *testing.T) {
	unary, ok := firstExpression(t, "typeof value;").(*ast.UnaryExpression)
	if !ok {
		t.Fatal("expression is not unary")
	}
	if unary.Operator != "typeof" {
		t.Fatalf("operator = %q, want \"typeof\"", unary.Operator)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	outer, ok := firstExpression(t, "a = b = 1;").(*ast.AssignmentExpression)
	if !ok {
		t.Fatal("expression is not an assignment")
	}
	if outer.Target.Name != "a" {
		t.Fatalf("target = %q, want \"a\"", outer.Target.Name)
	}
	inner, ok := outer.Value.(*ast.AssignmentExpression)
	if !ok {
		t.Fatalf("value = %T, want nested assignment", outer.Value)
	}
	if inner.Target.Name != "b" {
		t.Fatalf("nested target = %q, want \"b\"", inner.Target.Name)
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	_, err := Parse("1 = 2;")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *ParseError", err)
	}
	if got, want := parseErr.Message, "Invalid assignment target"; got != want {
		t.Fatalf("message = %q, want %q", got, want)
	}
	if parseErr.Location.Line != 1 || parseErr.Location.Column != 3 {
		t.Fatalf("location = %d:%d, want 1:3", parseErr.Location.Line, parseErr.Location.Column)
	}
}

func TestParseCallArguments(t *testing.T) {
	call, ok := firstExpression(t, "add(1, 2 * 3, x);").(*ast.CallExpression)
	if !ok {
		t.Fatal("expression is not a call")
	}
	callee, ok := call.Callee.(*ast.Identifier)
	if !ok || callee.Name != "add" {
		t.Fatalf("callee = %#v, want identifier add", call.Callee)
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("argument count = %d, want 3", len(call.Arguments))
	}
	asBinary(t, call.Arguments[1], "*")
}

func TestParseCallChains(t *testing.T) {
	outer, ok := firstExpression(t, "make(1)(2);").(*ast.CallExpression)
	if !ok {
		t.Fatal("expression is not a call")
	}
	inner, ok := outer.Callee.(*ast.CallExpression)
	if !ok {
		t.Fatalf("callee = %T, want inner call", outer.Callee)
	}
	if got := numberOf(t, inner.Arguments[0]); got != 1 {
		t.Fatalf("inner argument = %v, want 1", got)
	}
	if got := numberOf(t, outer.Arguments[0]); got != 2 {
		t.Fatalf("outer argument = %v, want 2", got)
	}
}

func TestParseFunctionLiteral(t *testing.T) {
	program := parseProgram(t, "var twice = fun (x) { return x * 2; };")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	literal, ok := decl.Initializer.(*ast.FunctionLiteral)
	if !ok {
		t.Fatalf("initializer = %T, want *ast.FunctionLiteral", decl.Initializer)
	}
	if len(literal.Parameters) != 1 || literal.Parameters[0].Name != "x" {
		t.Fatalf("parameters = %#v, want single x", literal.Parameters)
	}
	if len(literal.Body.Statements) != 1 {
		t.Fatalf("body statement count = %d, want 1", len(literal.Body.Statements))
	}
}

func TestParseLiteralValues(t *testing.T) {
	tests := []struct {
		source string
		check  func(expr ast.Expression) bool
	}{
		{"12_500.5;", func(expr ast.Expression) bool {
			literal, ok := expr.(*ast.NumberLiteral)
			return ok && literal.Value == 12500.5
		}},
		{`"hi\n";`, func(expr ast.Expression) bool {
			literal, ok := expr.(*ast.StringLiteral)
			return ok && literal.Value == "hi\n"
		}},
		{"true;", func(expr ast.Expression) bool {
			literal, ok := expr.(*ast.BooleanLiteral)
			return ok && literal.Value
		}},
		{"false;", func(expr ast.Expression) bool {
			literal, ok := expr.(*ast.BooleanLiteral)
			return ok && !literal.Value
		}},
		{"nil;", func(expr ast.Expression) bool {
			_, ok := expr.(*ast.NilLiteral)
			return ok
		}},
	}
	for _, tt := range tests {
		if !tt.check(firstExpression(t, tt.source)) {
			t.Fatalf("literal %q parsed to unexpected shape", tt.source)
		}
	}
}

func TestParseEqualityOperators(t *testing.T) {
	asBinary(t, firstExpression(t, "a == b;"), "==")
	asBinary(t, firstExpression(t, "a != b;"), "!=")
}
