// File: golox/interpreter/interpreter_statements.go
package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/loxfunc"
	"github.com/akashmaji946/golox/value"
)

func (in *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := in.evaluate(s.Expression)
		return err
	case *ast.PrintStmt:
		v, err := in.evaluate(s.Expression)
		if err != nil {
			return err
		}
		in.print(v)
		return nil
	case *ast.VarStmt:
		return in.executeVarStmt(s)
	case *ast.BlockStmt:
		return in.executeBlock(s.Statements, environment.NewEnclosed(in.env))
	case *ast.IfStmt:
		return in.executeIfStmt(s)
	case *ast.WhileStmt:
		return in.executeWhileStmt(s)
	case *ast.FunctionStmt:
		fn := loxfunc.NewFunction(s, in.env, false)
		in.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.ReturnStmt:
		return in.executeReturnStmt(s)
	case *ast.ClassStmt:
		return in.executeClassStmt(s)
	default:
		panic("interpreter: unhandled statement type")
	}
}

func (in *Interpreter) executeVarStmt(s *ast.VarStmt) error {
	var v value.Value = value.NilValue
	if s.Initializer != nil {
		var err error
		v, err = in.evaluate(s.Initializer)
		if err != nil {
			return err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil
}

func (in *Interpreter) executeIfStmt(s *ast.IfStmt) error {
	cond, err := in.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if value.Truthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil
}

func (in *Interpreter) executeWhileStmt(s *ast.WhileStmt) error {
	for {
		cond, err := in.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if !value.Truthy(cond) {
			return nil
		}
		if err := in.execute(s.Body); err != nil {
			return err
		}
	}
}

func (in *Interpreter) executeReturnStmt(s *ast.ReturnStmt) error {
	var v value.Value = value.NilValue
	if s.Value != nil {
		var err error
		v, err = in.evaluate(s.Value)
		if err != nil {
			return err
		}
	}
	return returnSignal{value: v}
}

// executeBlock runs statements in their own environment, restoring the
// interpreter's current environment on every exit path — normal
// completion, a runtime error, or a return signal unwinding through it.
func (in *Interpreter) executeBlock(statements []ast.Stmt, blockEnv *environment.Environment) error {
	previous := in.env
	in.env = blockEnv
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) executeClassStmt(s *ast.ClassStmt) error {
	var superclass *loxfunc.Class
	if s.Superclass != nil {
		sv, err := in.evaluate(s.Superclass)
		if err != nil {
			return err
		}
		sc, ok := sv.(*loxfunc.Class)
		if !ok {
			return loxerror.NewRuntimeError(s.Superclass.Name, "Superclass must be a class.")
		}
		superclass = sc
	}

	in.env.Define(s.Name.Lexeme, value.NilValue)

	classEnv := in.env
	if superclass != nil {
		classEnv = environment.NewEnclosed(in.env)
		classEnv.Define("super", superclass)
	}

	methods := make(map[string]*loxfunc.Function)
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = loxfunc.NewFunction(m, classEnv, m.Name.Lexeme == "init")
	}

	class := loxfunc.NewClass(s.Name.Lexeme, superclass, methods)

	return in.env.Assign(s.Name, class)
}
