// File: golox/interpreter/interpreter.go
//
// Package interpreter walks a resolved AST and executes it. It owns the
// global environment, the current environment, the resolver's depth
// table, and the writer print statements render to. Callable dispatch —
// ordinary calls, super lookup, instantiation — lives here rather than on
// the loxfunc types themselves, so this package alone knows how to execute
// a body; method lookup and binding (Class.FindMethod, Function.Bind) stay
// in loxfunc.
package interpreter

import (
	"fmt"
	"io"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/loxfunc"
	"github.com/akashmaji946/golox/value"
)

// Interpreter executes a resolved program against a chain of environments.
type Interpreter struct {
	globals  *environment.Environment
	env      *environment.Environment
	depths   map[int]int
	out      io.Writer
	reporter *loxerror.Reporter
}

// New creates an Interpreter writing print output to out and reporting
// runtime errors through reporter. depths is the table produced by
// package resolver for the program about to run; it may be nil or empty
// for a program with no local variable references.
func New(out io.Writer, reporter *loxerror.Reporter, depths map[int]int) *Interpreter {
	globals := environment.New()
	registerNatives(globals)
	return &Interpreter{
		globals:  globals,
		env:      globals,
		depths:   depths,
		out:      out,
		reporter: reporter,
	}
}

// MergeDepths folds additional resolver output into the interpreter's
// depth table. The REPL calls this once per line, since each line is
// resolved independently but node IDs are never reused across a process
// (ast.newID is a single monotonic counter), so no entry can collide.
func (in *Interpreter) MergeDepths(depths map[int]int) {
	for k, v := range depths {
		in.depths[k] = v
	}
}

func registerNatives(globals *environment.Environment) {
	globals.Define("clock", loxfunc.NewNative("clock", 0, func(args []value.Value) (value.Value, error) {
		return value.NewNumber(float64(time.Now().UnixNano()) / 1e9), nil
	}))
}

// Interpret runs every top-level statement in order. A runtime error
// aborts the statement in progress; the caller decides (REPL vs. file
// mode) whether to keep going afterward.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

// returnSignal is the non-local control-flow value a `return` statement
// raises; it unwinds exactly to the nearest enclosing function call and is
// never surfaced as a user-visible error (spec.md 4.5, 9).
type returnSignal struct {
	value value.Value
}

func (returnSignal) Error() string { return "return outside a function (internal)" }

// print renders v via value.Value's canonical String and writes one line.
func (in *Interpreter) print(v value.Value) {
	fmt.Fprintln(in.out, v.String())
}
