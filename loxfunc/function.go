// File: golox/loxfunc/function.go
//
// Package loxfunc holds Lox's callable runtime objects: user-defined
// functions and classes, class instances, and native (built-in)
// functions. These are plain data holders, the way the teacher's
// function.Function holds {Name, Params, Body, Scp} without itself
// knowing how to execute a call — the actual call/instantiate dispatch
// lives in package interpreter, which imports this package and
// pattern-matches on the concrete type. Method lookup and binding
// (Class.FindMethod, Function.Bind, Instance.Get) are the only behaviour
// kept here. That split keeps this package
// free of any dependency on the interpreter, avoiding an import cycle.
package loxfunc

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// Function is a user-defined function or method value: its declaration,
// the environment captured at definition time (its closure), and whether
// it is a class's "init" method (which always returns `this`, regardless
// of its body's return statements — spec.md 4.5).
type Function struct {
	Declaration   *ast.FunctionStmt
	Closure       *environment.Environment
	IsInitializer bool
}

func NewFunction(declaration *ast.FunctionStmt, closure *environment.Environment, isInitializer bool) *Function {
	return &Function{Declaration: declaration, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) Type() value.Type { return value.TypeFunction }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Bind returns a new Function identical to f except that its closure has
// one additional enclosing scope binding "this" to instance. Repeated
// binding of the same method to the same instance produces distinct
// Function values that share Declaration and bind the same instance, so
// calling either behaves the same; Lox `==` (value.Equal) compares Function
// pointers, so two such bindings are not equal to each other.
func (f *Function) Bind(instance *Instance) *Function {
	env := environment.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Declaration, env, f.IsInitializer)
}
