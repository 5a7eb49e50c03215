/*
File    : loxmix/interpreter/interpreter.go

Package interpreter tree-walks a resolved program. Interpreter is a
struct, not a package of free functions, carrying its own globals, the
resolver's locals map, the currently active environment, and the
writer `print` statements go to, so a caller
(the REPL, a test, the CLI) can redirect output or run many programs
against independent state without touching globals.

Callable dispatch - UserFunction, NativeFunction, *object.Class - is
a type switch here rather than a method on each, which is what keeps
the object package free of any dependency back on interpreter (see
object.go's package comment).
*/
package interpreter

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/environment"
	"github.com/loxmix/loxmix/object"
	"github.com/loxmix/loxmix/token"
)

// Interpreter holds all state for one program's evaluation.
type Interpreter struct {
	globals     *environment.Environment
	environment *environment.Environment
	locals      environment.Locals
	Writer      io.Writer
	trace       *log.Logger
}

// New creates an Interpreter over a resolver-produced locals map, with
// the builtin globals (currently just `clock`) already defined.
func New(locals environment.Locals) *Interpreter {
	globals := environment.NewGlobals(locals)
	it := &Interpreter{globals: globals, environment: globals, locals: locals, Writer: os.Stdout}
	defineBuiltins(globals)
	return it
}

// runtimeError is returned by expression/statement evaluation for any
// failure that is a property of values at run time (type mismatches,
// undefined names, arity mismatches) as opposed to a
// parser/resolver diagnostic, which never reaches this package.
type runtimeError struct {
	line int
	msg  string
}

func (e *runtimeError) Error() string { return fmt.Sprintf("[line %d] Error: %s", e.line, e.msg) }

func runtimeErrorf(t token.Token, format string, args ...interface{}) *runtimeError {
	return &runtimeError{line: t.Line, msg: fmt.Sprintf(format, args...)}
}

// signalKind distinguishes ordinary fall-through execution from a
// `return` unwinding in progress. It is carried as an explicit value
// returned alongside error from every statement-executing method,
// never via panic/recover - `return` is ordinary, expected control
// flow, not an exceptional one.
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
)

type signal struct {
	kind  signalKind
	value object.Value
}

var none = signal{kind: signalNone}

// Run executes a resolved program's statements in the interpreter's
// global environment. A `return` reaching here (top-level) is not
// possible - the resolver rejects it - so only an error ends a Run early.
func (it *Interpreter) Run(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (it *Interpreter) execute(s ast.Stmt) (signal, error) {
	it.traceStmt(s)
	return stmtResult(s.Accept(it))
}

// Accept on Interpreter returns (interface{}, error) per ast.StmtVisitor,
// but the value it carries is always a signal; stmtResult unwraps it for
// the methods above. Expression-visiting methods instead return the
// object.Value directly.
func stmtResult(v interface{}, err error) (signal, error) {
	if err != nil {
		return none, err
	}
	if v == nil {
		return none, nil
	}
	return v.(signal), nil
}

func (it *Interpreter) evaluate(e ast.Expr) (object.Value, error) {
	return e.Accept(it)
}

func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (signal, error) {
	previous := it.environment
	it.environment = env
	defer func() { it.environment = previous }()

	for _, s := range stmts {
		sig, err := it.execute(s)
		if err != nil {
			return none, err
		}
		if sig.kind != signalNone {
			return sig, nil
		}
	}
	return none, nil
}

// callValue dispatches a call to whatever kind of value callee
// evaluated to: a user-defined function, a native one, or a class
// acting as its own constructor.
func (it *Interpreter) callValue(callee object.Value, args []object.Value, paren token.Token) (object.Value, error) {
	switch fn := callee.(type) {
	case *object.UserFunction:
		if len(args) != fn.CallableArity() {
			return nil, runtimeErrorf(paren, "expected %d arguments but got %d", fn.CallableArity(), len(args))
		}
		return it.callUserFunction(fn, args)
	case *object.NativeFunction:
		if len(args) != fn.CallableArity() {
			return nil, runtimeErrorf(paren, "expected %d arguments but got %d", fn.CallableArity(), len(args))
		}
		return fn.Fn(args)
	case *object.Class:
		return it.instantiate(fn, args, paren)
	default:
		return nil, runtimeErrorf(paren, "can only call functions and classes, got %s", object.TypeName(callee))
	}
}

func (it *Interpreter) callUserFunction(fn *object.UserFunction, args []object.Value) (object.Value, error) {
	callEnv := environment.New(fn.ParentEnv)
	for i, param := range fn.Params {
		callEnv.Define(param.Lexeme, args[i])
	}
	sig, err := it.executeBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if fn.IsInitializer {
		receiver, _ := fn.ParentEnv.GetOwn("this")
		return receiver, nil
	}
	if sig.kind == signalReturn {
		return sig.value, nil
	}
	return nil, nil
}

func (it *Interpreter) instantiate(class *object.Class, args []object.Value, paren token.Token) (object.Value, error) {
	instance := object.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		bound := init.Bind(instance)
		if len(args) != bound.CallableArity() {
			return nil, runtimeErrorf(paren, "expected %d arguments but got %d", bound.CallableArity(), len(args))
		}
		if _, err := it.callUserFunction(bound, args); err != nil {
			return nil, err
		}
	} else if len(args) != 0 {
		return nil, runtimeErrorf(paren, "expected 0 arguments but got %d", len(args))
	}
	return instance, nil
}

// shellSplit implements the exact argv algorithm the language spec
// pins for CmdFunction: split on spaces, then strip one layer of
// surrounding quotation marks off each resulting word. It is
// deliberately not a full shell-word lexer (no escapes, no nesting);
// a CmdFunction body is never passed through sh -c, so it never has
// shell-injection surface from interpolated loxmix values.
func shellSplit(s string) []string {
	fields := strings.Fields(s)
	for i, f := range fields {
		fields[i] = stripQuotes(f)
	}
	return fields
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
