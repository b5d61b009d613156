// File: golox/interpreter/interpreter_calls.go
package interpreter

import (
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/loxfunc"
	"github.com/akashmaji946/golox/value"
)

// callFunction creates a fresh environment enclosing the function's
// closure, binds parameters to args, and executes the body. A return
// signal unwinds to here and becomes the call's result; falling off the
// end of the body yields nil. An initializer always yields `this`
// regardless of how its body exits (spec.md 4.5, 8.4).
func (in *Interpreter) callFunction(fn *loxfunc.Function, args []value.Value) (value.Value, error) {
	callEnv := environment.NewEnclosed(fn.Closure)
	for i, param := range fn.Declaration.Params {
		callEnv.Define(param.Lexeme, args[i])
	}

	err := in.executeBlock(fn.Declaration.Body, callEnv)

	if rerr, ok := err.(*loxerror.RuntimeError); ok {
		return nil, rerr
	}

	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}

	if ret, ok := err.(returnSignal); ok {
		return ret.value, nil
	}
	if err != nil {
		return nil, err
	}
	return value.NilValue, nil
}

// instantiate creates an Instance and, if the class declares an "init"
// method, binds and invokes it before the call expression yields the
// instance itself.
func (in *Interpreter) instantiate(class *loxfunc.Class, args []value.Value) (value.Value, error) {
	instance := loxfunc.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		if _, err := in.callFunction(init.Bind(instance), args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}
