package interpreter

import (
	"io"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/environment"
	"github.com/loxmix/loxmix/lexer"
	"github.com/loxmix/loxmix/parser"
	"github.com/loxmix/loxmix/resolver"
)

// ParseProgram runs Lexer -> Parser -> Resolver and hands back the
// resolved statements and locals map without executing anything, so a
// caller (the CLI's --dump-ast flag, a test) can inspect the AST before
// a single line reaches Run.
func ParseProgram(src string) ([]ast.Stmt, environment.Locals, error) {
	tokens, err := lexer.ScanTokens(src)
	if err != nil {
		return nil, nil, err
	}
	stmts, err := parser.Parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	locals, err := resolver.Resolve(stmts)
	if err != nil {
		return nil, nil, err
	}
	return stmts, locals, nil
}

// runSource drives the full Lexer -> Parser -> Resolver -> Interpreter
// pipeline described in the language overview: each phase's output
// feeds the next and any phase's diagnostic stops the run before the
// next phase ever sees the program. reuse, when non-nil, lets a REPL
// keep one Interpreter (and its globals) across many calls instead of
// starting a fresh one per line.
func runSource(src string, stdout io.Writer, reuse *Interpreter) error {
	stmts, locals, err := ParseProgram(src)
	if err != nil {
		return err
	}

	it := reuse
	if it == nil {
		it = New(locals)
		it.Writer = stdout
	} else {
		it.globals.MergeLocals(locals)
	}
	return it.Run(stmts)
}

// RunSource lexes, parses, resolves and runs a whole program on a fresh
// Interpreter writing to stdout, returning the first diagnostic from
// whichever phase fails. The REPL instead goes through RunInterpreter.
func RunSource(src string, stdout io.Writer) error {
	return runSource(src, stdout, nil)
}

// NewREPLInterpreter builds an Interpreter meant to survive across many
// separate Parse/Resolve calls, one per line of REPL input, each of
// which produces a fresh locals map that must still apply to the one
// long-lived globals environment.
func NewREPLInterpreter(stdout io.Writer) *Interpreter {
	it := New(environment.Locals{})
	it.Writer = stdout
	return it
}

// RunInterpreter runs one more line of source against a long-lived
// Interpreter such as the one NewREPLInterpreter returns.
func RunInterpreter(it *Interpreter, src string) error {
	return runSource(src, it.Writer, it)
}
