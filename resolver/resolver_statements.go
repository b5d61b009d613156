// File: golox/resolver/resolver_statements.go
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)
	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)
	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}
	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	case *ast.FunctionStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s.Params, s.Body, functionFunction)
	case *ast.ReturnStmt:
		if r.currentFunction == functionNone {
			r.reporter.ErrorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Value != nil {
			if r.currentFunction == functionInitializer {
				r.reporter.ErrorAt(s.Keyword, "Can't return a value from an initializer.")
			}
			r.resolveExpr(s.Value)
		}
	case *ast.ClassStmt:
		r.resolveClassStmt(s)
	default:
		panic("resolver: unhandled statement type")
	}
}

func (r *Resolver) resolveClassStmt(s *ast.ClassStmt) {
	enclosingClass := r.currentClass
	r.currentClass = classClass

	r.declare(s.Name)
	r.define(s.Name)

	if s.Superclass != nil {
		if s.Superclass.Name.Lexeme == s.Name.Lexeme {
			r.reporter.ErrorAt(s.Superclass.Name, "A class can't inherit from itself.")
		} else {
			r.currentClass = classSubclass
			r.resolveExpr(s.Superclass)
		}

		r.beginScope()
		r.scopes[len(r.scopes)-1]["super"] = true
	}

	r.beginScope()
	r.scopes[len(r.scopes)-1]["this"] = true

	for _, method := range s.Methods {
		declType := functionMethod
		if method.Name.Lexeme == "init" {
			declType = functionInitializer
		}
		r.resolveFunction(method.Params, method.Body, declType)
	}

	r.endScope()

	if s.Superclass != nil {
		r.endScope()
	}

	r.currentClass = enclosingClass
}
