// File: golox/loxfunc/instance.go
package loxfunc

import (
	"fmt"

	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// Instance is a runtime object created by instantiating a Class: an
// open-ended field table plus a reference to the class that made it.
type Instance struct {
	Class  *Class
	Fields map[string]value.Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]value.Value)}
}

func (i *Instance) Type() value.Type { return value.TypeInstance }
func (i *Instance) String() string   { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get reads a property: fields shadow methods, per spec.md 4.6. A method
// hit is bound to this instance before being returned, so later calls to
// it see `this` regardless of how the resulting Function value travels.
func (i *Instance) Get(name token.Token) (value.Value, error) {
	if v, ok := i.Fields[name.Lexeme]; ok {
		return v, nil
	}
	if m, ok := i.Class.FindMethod(name.Lexeme); ok {
		return m.Bind(i), nil
	}
	return nil, loxerror.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// Set writes a field, creating it if absent. Lox instances are open:
// any property name may be assigned, not only ones declared by the class.
func (i *Instance) Set(name token.Token, val value.Value) {
	i.Fields[name.Lexeme] = val
}
