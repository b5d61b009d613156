// File: golox/resolver/resolver_expressions.go
package resolver

import "github.com/akashmaji946/golox/ast"

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		// no references to resolve
	case *ast.GroupingExpr:
		r.resolveExpr(e.Expression)
	case *ast.UnaryExpr:
		r.resolveExpr(e.Right)
	case *ast.BinaryExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.LogicalExpr:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.VariableExpr:
		if len(r.scopes) > 0 {
			if initialized, ok := r.scopes[len(r.scopes)-1][e.Name.Lexeme]; ok && !initialized {
				r.reporter.ErrorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.AssignExpr:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.CallExpr:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpr(arg)
		}
	case *ast.GetExpr:
		r.resolveExpr(e.Object)
	case *ast.SetExpr:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)
	case *ast.ThisExpr:
		if r.currentClass == classNone {
			r.reporter.ErrorAt(e.Keyword, "Can't use 'this' outside of a class.")
			return
		}
		r.resolveLocal(e, e.Keyword)
	case *ast.SuperExpr:
		if r.currentClass == classNone {
			r.reporter.ErrorAt(e.Keyword, "Can't use 'super' outside of a class.")
		} else if r.currentClass != classSubclass {
			r.reporter.ErrorAt(e.Keyword, "Can't use 'super' in a class with no superclass.")
		}
		r.resolveLocal(e, e.Keyword)
	default:
		panic("resolver: unhandled expression type")
	}
}
