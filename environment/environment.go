// File: golox/environment/environment.go
//
// Package environment implements the name→value chain that backs Lox's
// lexical scoping: every block, function call, and the top-level program
// itself gets one Environment, linked to its enclosing scope.
package environment

import (
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// Environment is a mutable name→value mapping, optionally chained to an
// enclosing Environment. A nil Enclosing marks the global scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a root (global) environment.
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a new scope nested inside enclosing, e.g. for a block
// or a function call.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: enclosing}
}

// Define binds name to val in this frame. It always succeeds and may
// shadow a binding of the same name in an enclosing frame.
func (e *Environment) Define(name string, val value.Value) {
	e.values[name] = val
}

// Get walks the enclosing chain looking for name, returning a runtime error
// if it is bound nowhere in the chain.
func (e *Environment) Get(name token.Token) (value.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, loxerror.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign walks the enclosing chain and updates the first frame where name
// is already bound. It fails if name is bound nowhere in the chain — Assign
// never creates a new binding (use Define for that).
func (e *Environment) Assign(name token.Token, val value.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = val
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, val)
	}
	return loxerror.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Ancestor walks exactly distance enclosing links and returns that frame.
// It must not be called with a distance the resolver did not certify is
// reachable — the interpreter's sole caller of GetAt/AssignAt guarantees
// this by construction.
func (e *Environment) Ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name from exactly the distance-th enclosing frame, without
// walking further — the fast path a resolved variable reference uses, per
// spec.md 4.3's depth-exactness invariant.
func (e *Environment) GetAt(distance int, name string) value.Value {
	return e.Ancestor(distance).values[name]
}

// AssignAt writes name in exactly the distance-th enclosing frame.
func (e *Environment) AssignAt(distance int, name token.Token, val value.Value) {
	e.Ancestor(distance).values[name.Lexeme] = val
}
