// File: golox/ast/stmt.go
package ast

import "github.com/akashmaji946/golox/token"

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
	ID() int
}

type stmtBase struct{ id int }

func (s stmtBase) ID() int  { return s.id }
func (stmtBase) stmtNode()  {}

// ExpressionStmt evaluates Expression and discards its value.
type ExpressionStmt struct {
	stmtBase
	Expression Expr
}

func NewExpressionStmt(expression Expr) *ExpressionStmt {
	return &ExpressionStmt{stmtBase: stmtBase{newID()}, Expression: expression}
}

// PrintStmt evaluates Expression and writes its canonical string form.
type PrintStmt struct {
	stmtBase
	Expression Expr
}

func NewPrintStmt(expression Expr) *PrintStmt {
	return &PrintStmt{stmtBase: stmtBase{newID()}, Expression: expression}
}

// VarStmt declares a variable, optionally with an initializer; an absent
// initializer binds the name to nil.
type VarStmt struct {
	stmtBase
	Name        token.Token
	Initializer Expr // nil if absent
}

func NewVarStmt(name token.Token, initializer Expr) *VarStmt {
	return &VarStmt{stmtBase: stmtBase{newID()}, Name: name, Initializer: initializer}
}

// BlockStmt introduces a new lexical scope around Statements.
type BlockStmt struct {
	stmtBase
	Statements []Stmt
}

func NewBlockStmt(statements []Stmt) *BlockStmt {
	return &BlockStmt{stmtBase: stmtBase{newID()}, Statements: statements}
}

// IfStmt runs Then if Condition is truthy, else Else (which may be nil).
type IfStmt struct {
	stmtBase
	Condition Expr
	Then      Stmt
	Else      Stmt // nil if absent
}

func NewIfStmt(condition Expr, then, els Stmt) *IfStmt {
	return &IfStmt{stmtBase: stmtBase{newID()}, Condition: condition, Then: then, Else: els}
}

// WhileStmt runs Body while Condition is truthy. For-loops desugar into
// this plus a BlockStmt at parse time (spec.md 4.2).
type WhileStmt struct {
	stmtBase
	Condition Expr
	Body      Stmt
}

func NewWhileStmt(condition Expr, body Stmt) *WhileStmt {
	return &WhileStmt{stmtBase: stmtBase{newID()}, Condition: condition, Body: body}
}

// FunctionStmt declares a named function or method. Params are plain
// identifier tokens; Body is the statement list executed on call.
type FunctionStmt struct {
	stmtBase
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func NewFunctionStmt(name token.Token, params []token.Token, body []Stmt) *FunctionStmt {
	return &FunctionStmt{stmtBase: stmtBase{newID()}, Name: name, Params: params, Body: body}
}

// ReturnStmt exits the nearest enclosing function call. Value is nil for a
// bare `return;`.
type ReturnStmt struct {
	stmtBase
	Keyword token.Token
	Value   Expr // nil if absent
}

func NewReturnStmt(keyword token.Token, value Expr) *ReturnStmt {
	return &ReturnStmt{stmtBase: stmtBase{newID()}, Keyword: keyword, Value: value}
}

// ClassStmt declares a class, its optional superclass reference, and its
// method table. Superclass is a VariableExpr (resolved like any other
// variable reference) or nil.
type ClassStmt struct {
	stmtBase
	Name       token.Token
	Superclass *VariableExpr
	Methods    []*FunctionStmt
}

func NewClassStmt(name token.Token, superclass *VariableExpr, methods []*FunctionStmt) *ClassStmt {
	return &ClassStmt{stmtBase: stmtBase{newID()}, Name: name, Superclass: superclass, Methods: methods}
}
