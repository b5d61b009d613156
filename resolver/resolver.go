// File: golox/resolver/resolver.go
//
// Package resolver performs the static pass between parsing and
// evaluation: it walks the AST once, tracking lexically nested scopes,
// and records how many enclosing scopes separate each variable/this/super
// reference from the scope that declares it. The interpreter uses that
// depth to jump straight to the right environment frame instead of
// walking the chain name by name, per the teacher's tree-walking
// discipline generalized to Lox's block/function/class scoping.
package resolver

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionMethod
	functionInitializer
)

type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// Resolver walks a parsed program and produces a depth table: expression
// node ID -> number of enclosing scopes to climb to reach its binding.
// References absent from the table are resolved by the interpreter against
// the global environment directly.
type Resolver struct {
	reporter *loxerror.Reporter
	scopes   []map[string]bool
	depths   map[int]int

	currentFunction functionType
	currentClass    classType
}

func New(reporter *loxerror.Reporter) *Resolver {
	return &Resolver{
		reporter: reporter,
		depths:   make(map[int]int),
	}
}

// Resolve walks every top-level statement and returns the completed depth
// table. Callers should check reporter.HadError() afterwards and skip
// execution if any scope/flow rule was violated.
func (r *Resolver) Resolve(statements []ast.Stmt) map[int]int {
	r.resolveStmts(statements)
	return r.depths
}

func (r *Resolver) resolveStmts(statements []ast.Stmt) {
	for _, s := range statements {
		r.resolveStmt(s)
	}
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare adds name to the innermost scope marked "not yet initialized". A
// no-op at the global scope, which this resolver never pushes onto the
// stack. Declaring a name already present in the same local scope is a
// static error (spec.md 4.4).
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.reporter.ErrorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope, making it
// visible to subsequent reads.
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

// resolveLocal finds the smallest distance from the innermost scope to the
// one declaring name and records it for expr. A name found in no local
// scope is left unrecorded — the interpreter falls through to globals.
func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.depths[expr.ID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(params []token.Token, body []ast.Stmt, typ functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = typ

	r.beginScope()
	for _, p := range params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(body)
	r.endScope()

	r.currentFunction = enclosingFunction
}
