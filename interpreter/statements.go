package interpreter

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/environment"
	"github.com/loxmix/loxmix/object"
)

func (it *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	_, err := it.evaluate(s.Expression)
	return none, err
}

func (it *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	v, err := it.evaluate(s.Expression)
	if err != nil {
		return none, err
	}
	fmt.Fprintln(it.Writer, object.Stringify(v))
	return none, nil
}

func (it *Interpreter) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	var value object.Value
	if s.Initializer != nil {
		v, err := it.evaluate(s.Initializer)
		if err != nil {
			return none, err
		}
		value = v
	}
	it.environment.Define(s.Name.Lexeme, value)
	return none, nil
}

func (it *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	sig, err := it.executeBlock(s.Statements, environment.New(it.environment))
	return sig, err
}

func (it *Interpreter) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	cond, err := it.evaluate(s.Predicate)
	if err != nil {
		return none, err
	}
	if object.Truthy(cond) {
		return it.execute(s.Then)
	}
	if s.Else != nil {
		return it.execute(s.Else)
	}
	return none, nil
}

func (it *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	for {
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return none, err
		}
		if !object.Truthy(cond) {
			return none, nil
		}
		sig, err := it.execute(s.Body)
		if err != nil {
			return none, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
}

func (it *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	fn := &object.UserFunction{
		Name:      s.Name.Lexeme,
		Params:    s.Params,
		Body:      s.Body,
		ParentEnv: it.environment,
	}
	it.environment.Define(s.Name.Lexeme, fn)
	return none, nil
}

// VisitCmdFunctionStmt defines a zero-arity NativeFunction that runs
// ShellText as a subprocess (no shell in between: the command is split
// on whitespace and exec'd directly, so CmdFunction text is never
// interpreted by /bin/sh) and returns its captured, trimmed stdout.
func (it *Interpreter) VisitCmdFunctionStmt(s *ast.CmdFunctionStmt) (interface{}, error) {
	shellText := s.ShellText
	name := s.Name.Lexeme
	fn := &object.NativeFunction{
		Name:  name,
		Arity: 0,
		Fn: func(args []object.Value) (object.Value, error) {
			argv := shellSplit(shellText)
			if len(argv) == 0 {
				return "", nil
			}
			cmd := exec.Command(argv[0], argv[1:]...)
			out, err := cmd.Output()
			if err != nil {
				return nil, fmt.Errorf("command '%s' failed: %w", name, err)
			}
			return strings.TrimRight(string(out), "\n"), nil
		},
	}
	it.environment.Define(name, fn)
	return none, nil
}

func (it *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	var value object.Value
	if s.Value != nil {
		v, err := it.evaluate(s.Value)
		if err != nil {
			return none, err
		}
		value = v
	}
	return signal{kind: signalReturn, value: value}, nil
}

// VisitClassStmt implements class declaration: evaluate an optional
// superclass, declare the name with a nil placeholder (so methods can
// refer to the class recursively), push a `super` scope around method
// closures when there is a superclass, build the method table, then
// bind the finished *object.Class back over the placeholder binding.
func (it *Interpreter) VisitClassStmt(s *ast.ClassStmt) (interface{}, error) {
	var superclass *object.Class
	if s.Superclass != nil {
		v, err := it.evaluate(s.Superclass)
		if err != nil {
			return none, err
		}
		sc, ok := v.(*object.Class)
		if !ok {
			return none, runtimeErrorf(s.Superclass.Name, "superclass must be a class")
		}
		superclass = sc
	}

	it.environment.Define(s.Name.Lexeme, nil)

	methodEnv := it.environment
	if superclass != nil {
		methodEnv = environment.New(it.environment)
		methodEnv.Define("super", superclass)
	}

	methods := make(map[string]*object.UserFunction, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &object.UserFunction{
			Name:          m.Name.Lexeme,
			Params:        m.Params,
			Body:          m.Body,
			ParentEnv:     methodEnv,
			IsInitializer: m.Name.Lexeme == "init",
		}
	}

	class := &object.Class{Name: s.Name.Lexeme, Methods: methods, Superclass: superclass}
	// Overwrites the nil placeholder in the same scope it was declared
	// in; a class declaration is never resolved through the locals map
	// the way a VariableExpr read is, so this bypasses Assign entirely.
	it.environment.Define(s.Name.Lexeme, class)
	return none, nil
}
