package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/loxmix/loxmix/ast"
	"github.com/loxmix/loxmix/interpreter"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "run a loxmix file or inline expression",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubcommand,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "interpret inline source instead of reading a file")
}

func runSubcommand(cmd *cobra.Command, args []string) error {
	if evalExpr != "" {
		return runSourceAndReport(evalExpr, "<eval>")
	}
	if len(args) == 1 {
		return runFile(args[0])
	}
	return fmt.Errorf("either provide a file path or -e/--eval")
}

// runFile implements runFile(path) from the external interface: read
// UTF-8 text, then delegate to the same source-running path a file and
// an inline expression both use.
func runFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read '%s': %w", path, err)
	}
	return runSourceAndReport(string(data), path)
}

// runSourceAndReport runs one program to completion against stdout,
// optionally dumping its AST first and tracing each executed
// statement, per the --dump-ast/--trace debug flags.
func runSourceAndReport(src, name string) error {
	return runSourceTo(src, name, os.Stdout)
}

// runSourceTo is the testable core of runSourceAndReport: everything
// the CLI does to one program, with stdout as an injectable io.Writer
// so integration tests can capture it without touching os.Stdout.
func runSourceTo(src, name string, out io.Writer) error {
	stmts, locals, err := interpreter.ParseProgram(src)
	if err != nil {
		return err
	}

	if dumpAST {
		fmt.Fprintf(os.Stderr, "-- AST: %s --\n", name)
		fmt.Fprint(os.Stderr, ast.NewPrinter().Print(stmts))
	}

	it := interpreter.New(locals)
	it.Writer = out
	if trace {
		it.SetTrace(log.New(os.Stderr, "[trace] ", 0))
	}
	return it.Run(stmts)
}
