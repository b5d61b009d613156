// File: golox/loxfunc/class.go
package loxfunc

import "github.com/akashmaji946/golox/value"

// Class is a Lox class: its name, an optional superclass, and its own
// method table. Method lookup walks the superclass chain, grounded on
// the single-inheritance rule in spec.md 3 and mirroring the teacher's
// objects.GoMixStruct method table.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

func (c *Class) Type() value.Type { return value.TypeClass }
func (c *Class) String() string   { return c.Name }

// FindMethod looks up name in this class's own method table, falling back
// to the superclass chain. It returns (nil, false) if no class in the
// chain declares the method.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's "init" method, or 0 if it declares
// none — instantiating a class with no initializer takes no arguments.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}
