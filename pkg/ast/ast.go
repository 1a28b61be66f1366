// Package ast defines the reef syntax tree: a closed set of node variants
// produced by the parser and consumed by the evaluator. Nodes are pure data;
// each carries the source span of the construct it was parsed from.
package ast

type NodeType string

const (
	NodeProgram              NodeType = "Program"
	NodeIdentifier           NodeType = "Identifier"
	NodeNumberLiteral        NodeType = "NumberLiteral"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeBooleanLiteral       NodeType = "BooleanLiteral"
	NodeNilLiteral           NodeType = "NilLiteral"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeCallExpression       NodeType = "CallExpression"
	NodeFunctionLiteral      NodeType = "FunctionLiteral"
	NodeVariableDeclaration  NodeType = "VariableDeclaration"
	NodeFunctionDeclaration  NodeType = "FunctionDeclaration"
	NodeExpressionStatement  NodeType = "ExpressionStatement"
	NodeBlockStatement       NodeType = "BlockStatement"
	NodeIfStatement          NodeType = "IfStatement"
	NodeElseIfClause         NodeType = "ElseIfClause"
	NodeForStatement         NodeType = "ForStatement"
	NodeReturnStatement      NodeType = "ReturnStatement"
	NodeBreakStatement       NodeType = "BreakStatement"
	NodeContinueStatement    NodeType = "ContinueStatement"
	NodeLogStatement         NodeType = "LogStatement"
)

type Node interface {
	NodeType() NodeType
	Span() Span
	isNode()
}

// Position is a 1-based line/column source coordinate.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Span covers a node's source extent; Start is the position of the node's
// first token.
type Span struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

type nodeImpl struct {
	Type NodeType `json:"type"`
	span Span
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (n nodeImpl) Span() Span         { return n.span }
func (nodeImpl) isNode()              {}
func (n *nodeImpl) setSpan(span Span) { n.span = span }

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Program

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	if statements == nil {
		statements = []Statement{}
	}
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value float64 `json:"value"`
}

func NewNumberLiteral(value float64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

type NilLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNilLiteral() *NilLiteral {
	return &NilLiteral{nodeImpl: newNodeImpl(NodeNilLiteral)}
}

// UnaryExpression covers `-`, `not`, and `typeof`.
type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

// BinaryExpression covers arithmetic, comparison, equality, and the
// short-circuiting `and`/`or`.
type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

// AssignmentExpression rebinds an existing name; it never declares.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Target *Identifier `json:"target"`
	Value  Expression  `json:"value"`
}

func NewAssignmentExpression(target *Identifier, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, arguments []Expression) *CallExpression {
	if arguments == nil {
		arguments = []Expression{}
	}
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: arguments}
}

// FunctionLiteral is an anonymous `fun (params) { body }` expression.
type FunctionLiteral struct {
	nodeImpl
	expressionMarker

	Parameters []*Identifier   `json:"parameters"`
	Body       *BlockStatement `json:"body"`
}

func NewFunctionLiteral(parameters []*Identifier, body *BlockStatement) *FunctionLiteral {
	if parameters == nil {
		parameters = []*Identifier{}
	}
	return &FunctionLiteral{nodeImpl: newNodeImpl(NodeFunctionLiteral), Parameters: parameters, Body: body}
}

// Statements

type VariableDeclaration struct {
	nodeImpl
	statementMarker

	Name        *Identifier `json:"name"`
	Initializer Expression  `json:"initializer"`
}

func NewVariableDeclaration(name *Identifier, initializer Expression) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(NodeVariableDeclaration), Name: name, Initializer: initializer}
}

type FunctionDeclaration struct {
	nodeImpl
	statementMarker

	Name       *Identifier     `json:"name"`
	Parameters []*Identifier   `json:"parameters"`
	Body       *BlockStatement `json:"body"`
}

func NewFunctionDeclaration(name *Identifier, parameters []*Identifier, body *BlockStatement) *FunctionDeclaration {
	if parameters == nil {
		parameters = []*Identifier{}
	}
	return &FunctionDeclaration{nodeImpl: newNodeImpl(NodeFunctionDeclaration), Name: name, Parameters: parameters, Body: body}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expression Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expression}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	if statements == nil {
		statements = []Statement{}
	}
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

// ElseIfClause is one `elseif cond then { ... }` arm of an if statement.
type ElseIfClause struct {
	nodeImpl

	Condition Expression      `json:"condition"`
	Body      *BlockStatement `json:"body"`
}

func NewElseIfClause(condition Expression, body *BlockStatement) *ElseIfClause {
	return &ElseIfClause{nodeImpl: newNodeImpl(NodeElseIfClause), Condition: condition, Body: body}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition   Expression      `json:"condition"`
	Consequence *BlockStatement `json:"consequence"`
	ElseIfs     []*ElseIfClause `json:"elseifs"`
	Alternative *BlockStatement `json:"alternative,omitempty"`
}

func NewIfStatement(condition Expression, consequence *BlockStatement, elseIfs []*ElseIfClause, alternative *BlockStatement) *IfStatement {
	if elseIfs == nil {
		elseIfs = []*ElseIfClause{}
	}
	return &IfStatement{
		nodeImpl:    newNodeImpl(NodeIfStatement),
		Condition:   condition,
		Consequence: consequence,
		ElseIfs:     elseIfs,
		Alternative: alternative,
	}
}

// ForStatement is reef's condition loop: `for (cond) do { body }`.
type ForStatement struct {
	nodeImpl
	statementMarker

	Condition Expression      `json:"condition"`
	Body      *BlockStatement `json:"body"`
}

func NewForStatement(condition Expression, body *BlockStatement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Condition: condition, Body: body}
}

// ReturnStatement carries a nil Value for a bare `return;`.
type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type BreakStatement struct {
	nodeImpl
	statementMarker
}

func NewBreakStatement() *BreakStatement {
	return &BreakStatement{nodeImpl: newNodeImpl(NodeBreakStatement)}
}

type ContinueStatement struct {
	nodeImpl
	statementMarker
}

func NewContinueStatement() *ContinueStatement {
	return &ContinueStatement{nodeImpl: newNodeImpl(NodeContinueStatement)}
}

// LogStatement prints its values space-joined: `log a, b;`.
type LogStatement struct {
	nodeImpl
	statementMarker

	Values []Expression `json:"values"`
}

func NewLogStatement(values []Expression) *LogStatement {
	if values == nil {
		values = []Expression{}
	}
	return &LogStatement{nodeImpl: newNodeImpl(NodeLogStatement), Values: values}
}
