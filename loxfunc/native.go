// File: golox/loxfunc/native.go
package loxfunc

import "github.com/akashmaji946/golox/value"

// Native is a built-in function implemented in Go rather than declared in
// Lox source — currently just clock(), per spec.md 4.9.
type Native struct {
	Name  string
	arity int
	Fn    func(args []value.Value) (value.Value, error)
}

func NewNative(name string, arity int, fn func(args []value.Value) (value.Value, error)) *Native {
	return &Native{Name: name, arity: arity, Fn: fn}
}

func (n *Native) Type() value.Type { return value.TypeFunction }
func (n *Native) String() string   { return "<native fn>" }
func (n *Native) Arity() int       { return n.arity }
