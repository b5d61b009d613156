// File: golox/ast/expr.go
//
// Package ast defines Lox's expression and statement node types as a
// tagged-variant sum type: one concrete struct per syntactic form, no
// visitor double-dispatch. Callers switch on the concrete type instead of
// calling Accept.
package ast

import "github.com/akashmaji946/golox/token"

// nextID hands out monotonically increasing node identities. The resolver
// keys its depth table by these IDs rather than by structural equality, so
// that re-parsing the same source — or two textually identical occurrences
// of the same variable — never collide.
var nextID int

func newID() int {
	nextID++
	return nextID
}

// Expr is implemented by every expression node. ID is stable for the
// lifetime of the node and distinct from every other node ever constructed
// in the process, including structurally identical ones.
type Expr interface {
	exprNode()
	ID() int
}

type exprBase struct{ id int }

func (e exprBase) ID() int   { return e.id }
func (exprBase) exprNode()   {}

// LiteralExpr holds a pre-evaluated constant: nil, a bool, a number
// (float64), or a string.
type LiteralExpr struct {
	exprBase
	Value interface{}
}

func NewLiteralExpr(value interface{}) *LiteralExpr {
	return &LiteralExpr{exprBase: exprBase{newID()}, Value: value}
}

// GroupingExpr is a parenthesized sub-expression.
type GroupingExpr struct {
	exprBase
	Expression Expr
}

func NewGroupingExpr(expression Expr) *GroupingExpr {
	return &GroupingExpr{exprBase: exprBase{newID()}, Expression: expression}
}

// UnaryExpr applies a prefix operator (! or -) to one operand.
type UnaryExpr struct {
	exprBase
	Operator token.Token
	Right    Expr
}

func NewUnaryExpr(operator token.Token, right Expr) *UnaryExpr {
	return &UnaryExpr{exprBase: exprBase{newID()}, Operator: operator, Right: right}
}

// BinaryExpr applies an arithmetic, comparison, or equality operator.
type BinaryExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewBinaryExpr(left Expr, operator token.Token, right Expr) *BinaryExpr {
	return &BinaryExpr{exprBase: exprBase{newID()}, Left: left, Operator: operator, Right: right}
}

// LogicalExpr applies `and`/`or`, which short-circuit in the evaluator
// rather than always computing both operands like BinaryExpr does.
type LogicalExpr struct {
	exprBase
	Left     Expr
	Operator token.Token
	Right    Expr
}

func NewLogicalExpr(left Expr, operator token.Token, right Expr) *LogicalExpr {
	return &LogicalExpr{exprBase: exprBase{newID()}, Left: left, Operator: operator, Right: right}
}

// VariableExpr reads the value bound to an identifier.
type VariableExpr struct {
	exprBase
	Name token.Token
}

func NewVariableExpr(name token.Token) *VariableExpr {
	return &VariableExpr{exprBase: exprBase{newID()}, Name: name}
}

// AssignExpr writes a new value to an already-declared variable.
type AssignExpr struct {
	exprBase
	Name  token.Token
	Value Expr
}

func NewAssignExpr(name token.Token, value Expr) *AssignExpr {
	return &AssignExpr{exprBase: exprBase{newID()}, Name: name, Value: value}
}

// CallExpr invokes Callee with Arguments. Paren is the closing ')' token,
// kept so runtime errors (wrong arity, not callable) can report a line.
type CallExpr struct {
	exprBase
	Callee    Expr
	Paren     token.Token
	Arguments []Expr
}

func NewCallExpr(callee Expr, paren token.Token, arguments []Expr) *CallExpr {
	return &CallExpr{exprBase: exprBase{newID()}, Callee: callee, Paren: paren, Arguments: arguments}
}

// GetExpr reads a property (field or method) off an object.
type GetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
}

func NewGetExpr(object Expr, name token.Token) *GetExpr {
	return &GetExpr{exprBase: exprBase{newID()}, Object: object, Name: name}
}

// SetExpr writes a field on an object.
type SetExpr struct {
	exprBase
	Object Expr
	Name   token.Token
	Value  Expr
}

func NewSetExpr(object Expr, name token.Token, value Expr) *SetExpr {
	return &SetExpr{exprBase: exprBase{newID()}, Object: object, Name: name, Value: value}
}

// ThisExpr reads the implicit receiver inside a method body.
type ThisExpr struct {
	exprBase
	Keyword token.Token
}

func NewThisExpr(keyword token.Token) *ThisExpr {
	return &ThisExpr{exprBase: exprBase{newID()}, Keyword: keyword}
}

// SuperExpr reads a method from the enclosing class's superclass, per
// spec.md's resolution of the method-name-token ambiguity.
type SuperExpr struct {
	exprBase
	Keyword token.Token
	Method  token.Token
}

func NewSuperExpr(keyword, method token.Token) *SuperExpr {
	return &SuperExpr{exprBase: exprBase{newID()}, Keyword: keyword, Method: method}
}
