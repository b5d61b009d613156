// File: golox/ast/print.go
//
// Sexpr renders an expression as a parenthesized, fully-parenthesized
// S-expression — deliberately omitting node IDs, since those are
// occurrence identity, not part of an expression's meaning (spec.md 9).
// It is used for debugging and for the parser's round-trip structural
// equivalence tests.
package ast

import (
	"fmt"
	"strings"
)

// Sexpr renders an expression tree.
func Sexpr(e Expr) string {
	switch n := e.(type) {
	case *LiteralExpr:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *GroupingExpr:
		return parenthesize("group", Sexpr(n.Expression))
	case *UnaryExpr:
		return parenthesize(n.Operator.Lexeme, Sexpr(n.Right))
	case *BinaryExpr:
		return parenthesize(n.Operator.Lexeme, Sexpr(n.Left), Sexpr(n.Right))
	case *LogicalExpr:
		return parenthesize(n.Operator.Lexeme, Sexpr(n.Left), Sexpr(n.Right))
	case *VariableExpr:
		return n.Name.Lexeme
	case *AssignExpr:
		return parenthesize("= "+n.Name.Lexeme, Sexpr(n.Value))
	case *CallExpr:
		parts := make([]string, len(n.Arguments))
		for i, a := range n.Arguments {
			parts[i] = Sexpr(a)
		}
		return parenthesize("call "+Sexpr(n.Callee), parts...)
	case *GetExpr:
		return parenthesize("get "+n.Name.Lexeme, Sexpr(n.Object))
	case *SetExpr:
		return parenthesize("set "+n.Name.Lexeme, Sexpr(n.Object), Sexpr(n.Value))
	case *ThisExpr:
		return "this"
	case *SuperExpr:
		return "super." + n.Method.Lexeme
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

// StmtSexpr renders a statement tree, recursing into sub-expressions and
// sub-statements via Sexpr/StmtSexpr.
func StmtSexpr(s Stmt) string {
	switch n := s.(type) {
	case *ExpressionStmt:
		return parenthesize("expr", Sexpr(n.Expression))
	case *PrintStmt:
		return parenthesize("print", Sexpr(n.Expression))
	case *VarStmt:
		if n.Initializer == nil {
			return parenthesize("var " + n.Name.Lexeme)
		}
		return parenthesize("var "+n.Name.Lexeme, Sexpr(n.Initializer))
	case *BlockStmt:
		parts := make([]string, len(n.Statements))
		for i, st := range n.Statements {
			parts[i] = StmtSexpr(st)
		}
		return parenthesize("block", parts...)
	case *IfStmt:
		if n.Else == nil {
			return parenthesize("if", Sexpr(n.Condition), StmtSexpr(n.Then))
		}
		return parenthesize("if", Sexpr(n.Condition), StmtSexpr(n.Then), StmtSexpr(n.Else))
	case *WhileStmt:
		return parenthesize("while", Sexpr(n.Condition), StmtSexpr(n.Body))
	case *FunctionStmt:
		parts := make([]string, len(n.Body))
		for i, st := range n.Body {
			parts[i] = StmtSexpr(st)
		}
		return parenthesize("fun "+n.Name.Lexeme, parts...)
	case *ReturnStmt:
		if n.Value == nil {
			return parenthesize("return")
		}
		return parenthesize("return", Sexpr(n.Value))
	case *ClassStmt:
		parts := make([]string, len(n.Methods))
		for i, m := range n.Methods {
			parts[i] = StmtSexpr(m)
		}
		if n.Superclass != nil {
			return parenthesize("class "+n.Name.Lexeme+" < "+n.Superclass.Name.Lexeme, parts...)
		}
		return parenthesize("class "+n.Name.Lexeme, parts...)
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

func parenthesize(head string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + head + ")"
	}
	return "(" + head + " " + strings.Join(parts, " ") + ")"
}
