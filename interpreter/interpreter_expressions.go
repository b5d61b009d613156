// File: golox/interpreter/interpreter_expressions.go
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/loxfunc"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

func (in *Interpreter) evaluate(expr ast.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalValue(e.Value), nil
	case *ast.GroupingExpr:
		return in.evaluate(e.Expression)
	case *ast.UnaryExpr:
		return in.evalUnary(e)
	case *ast.BinaryExpr:
		return in.evalBinary(e)
	case *ast.LogicalExpr:
		return in.evalLogical(e)
	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)
	case *ast.AssignExpr:
		return in.evalAssign(e)
	case *ast.CallExpr:
		return in.evalCall(e)
	case *ast.GetExpr:
		return in.evalGet(e)
	case *ast.SetExpr:
		return in.evalSet(e)
	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)
	case *ast.SuperExpr:
		return in.evalSuper(e)
	default:
		panic("interpreter: unhandled expression type")
	}
}

// literalValue converts a parsed literal (nil, bool, float64, or string)
// into its runtime value.Value representation.
func literalValue(v interface{}) value.Value {
	switch x := v.(type) {
	case nil:
		return value.NilValue
	case bool:
		return value.NewBool(x)
	case float64:
		return value.NewNumber(x)
	case string:
		return value.NewString(x)
	default:
		panic("interpreter: literal of unexpected Go type")
	}
}

// lookUpVariable resolves name against the depth recorded for expr, if
// any, otherwise falls through to globals — the fast path / global-scope
// split spec.md 4.5 describes.
func (in *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (value.Value, error) {
	if d, ok := in.depths[expr.ID()]; ok {
		return in.env.GetAt(d, name.Lexeme), nil
	}
	return in.globals.Get(name)
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) (value.Value, error) {
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, loxerror.NewRuntimeError(e.Operator, "Operand must be a number.")
		}
		return value.NewNumber(-n.Value), nil
	case token.Bang:
		return value.NewBool(!value.Truthy(right)), nil
	default:
		panic("interpreter: unhandled unary operator")
	}
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.EqualEqual:
		return value.NewBool(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.NewBool(!value.Equal(left, right)), nil
	case token.Plus:
		return in.evalPlus(e.Operator, left, right)
	case token.Minus, token.Star, token.Slash,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		return in.evalNumericBinary(e.Operator, left, right)
	default:
		panic("interpreter: unhandled binary operator")
	}
}

func (in *Interpreter) evalPlus(op token.Token, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(value.Number); ok {
		if rn, ok := right.(value.Number); ok {
			return value.NewNumber(ln.Value + rn.Value), nil
		}
	}
	if ls, ok := left.(value.String); ok {
		if rs, ok := right.(value.String); ok {
			return value.NewString(ls.Value + rs.Value), nil
		}
	}
	return nil, loxerror.NewRuntimeError(op, "Operands must be two numbers or two strings.")
}

func (in *Interpreter) evalNumericBinary(op token.Token, left, right value.Value) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return nil, loxerror.NewRuntimeError(op, "Operands must be numbers.")
	}
	switch op.Type {
	case token.Minus:
		return value.NewNumber(ln.Value - rn.Value), nil
	case token.Star:
		return value.NewNumber(ln.Value * rn.Value), nil
	case token.Slash:
		if rn.Value == 0 {
			return nil, loxerror.NewRuntimeError(op, "Division by zero.")
		}
		return value.NewNumber(ln.Value / rn.Value), nil
	case token.Greater:
		return value.NewBool(ln.Value > rn.Value), nil
	case token.GreaterEqual:
		return value.NewBool(ln.Value >= rn.Value), nil
	case token.Less:
		return value.NewBool(ln.Value < rn.Value), nil
	case token.LessEqual:
		return value.NewBool(ln.Value <= rn.Value), nil
	default:
		panic("interpreter: unhandled numeric operator")
	}
}

// evalLogical short-circuits on the operand's truthiness and preserves its
// original value instead of coercing to bool, per spec.md 4.5.
func (in *Interpreter) evalLogical(e *ast.LogicalExpr) (value.Value, error) {
	left, err := in.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Type == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.evaluate(e.Right)
}

func (in *Interpreter) evalAssign(e *ast.AssignExpr) (value.Value, error) {
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	if d, ok := in.depths[e.ID()]; ok {
		in.env.AssignAt(d, e.Name, v)
		return v, nil
	}
	if err := in.globals.Assign(e.Name, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (in *Interpreter) evalCall(e *ast.CallExpr) (value.Value, error) {
	callee, err := in.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		v, err := in.evaluate(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch callable := callee.(type) {
	case *loxfunc.Function:
		if len(args) != callable.Arity() {
			return nil, loxerror.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
		}
		return in.callFunction(callable, args)
	case *loxfunc.Native:
		if len(args) != callable.Arity() {
			return nil, loxerror.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
		}
		return callable.Fn(args)
	case *loxfunc.Class:
		if len(args) != callable.Arity() {
			return nil, loxerror.NewRuntimeError(e.Paren, "Expected %d arguments but got %d.", callable.Arity(), len(args))
		}
		return in.instantiate(callable, args)
	default:
		return nil, loxerror.NewRuntimeError(e.Paren, "Can only call functions and classes.")
	}
}

func (in *Interpreter) evalGet(e *ast.GetExpr) (value.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*loxfunc.Instance)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Name, "Only instances have properties.")
	}
	return inst.Get(e.Name)
}

func (in *Interpreter) evalSet(e *ast.SetExpr) (value.Value, error) {
	obj, err := in.evaluate(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*loxfunc.Instance)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Name, "Only instances have fields.")
	}
	v, err := in.evaluate(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name, v)
	return v, nil
}

// evalSuper reads `super` at the recorded depth d and the implicit `this`
// one scope inner at d-1, since the resolver pushes `this` after `super`
// (spec.md 4.5).
func (in *Interpreter) evalSuper(e *ast.SuperExpr) (value.Value, error) {
	d := in.depths[e.ID()]
	superVal := in.env.GetAt(d, "super")
	superclass := superVal.(*loxfunc.Class)

	thisVal := in.env.GetAt(d-1, "this")
	instance := thisVal.(*loxfunc.Instance)

	method, ok := superclass.FindMethod(e.Method.Lexeme)
	if !ok {
		return nil, loxerror.NewRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme)
	}
	return method.Bind(instance), nil
}
