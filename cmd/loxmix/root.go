/*
File    : loxmix/cmd/loxmix/root.go

The loxmix binary is a cobra CLI: root.go carries persistent flags and
the default command, alongside a run subcommand and a version
subcommand. It additionally preserves the language's own positional-
argument contract - `loxmix`, `loxmix file.lox`, `loxmix e "source"` -
as the default (no subcommand) behavior of the root command, so both
forms work side by side.
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/loxmix/loxmix/config"
)

// errorColor renders a diagnostic in red when the CLI's file/eval mode
// fails - a driver-level presentation choice layered on top of the
// external interface, not part of the language's own output contract.
var errorColor = color.New(color.FgRed)

var (
	dumpAST bool
	trace   bool

	activeConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "loxmix [file | e source]",
	Short: "loxmix - a tree-walking interpreter for a small Lox-family scripting language",
	Long: `loxmix lexes, parses, resolves and evaluates programs written in a
small dynamically typed scripting language in the Lox family, extended
with anonymous functions, a pipe operator, single inheritance with
super, and a shell-command function form.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDefault,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&dumpAST, "dump-ast", false, "dump the parsed AST before running")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "log each executed statement's line to stderr")
}

// exitCodeError lets main() translate a diagnosed failure into the
// specific process exit code the external interface contract names
// (64 for a malformed command line), instead of cobra's generic 1.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

const usageText = `usage:
  loxmix                  start the REPL
  loxmix <file>           interpret a file
  loxmix e "<source>"     interpret inline source
  loxmix run [file] [-e source] [--dump-ast] [--trace]
  loxmix repl
  loxmix version`

func usageError() error {
	fmt.Fprintln(os.Stderr, usageText)
	return &exitCodeError{code: 64, msg: "usage error"}
}

// runDefault implements the external interface's exact positional-
// argument contract: 0 args starts the REPL, 1 arg interprets a file,
// 2 args with the first literally "e" interprets the second as inline
// source, anything else is a usage error exiting 64.
func runDefault(cmd *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return startRepl()
	case 1:
		return runFile(args[0])
	case 2:
		if args[0] != "e" {
			return usageError()
		}
		return runSourceAndReport(args[1], "<eval>")
	default:
		return usageError()
	}
}

func main() {
	cfg, err := config.Load(".loxmixrc.yaml")
	if err != nil {
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	activeConfig = cfg

	if err := rootCmd.Execute(); err != nil {
		if ec, ok := err.(*exitCodeError); ok {
			os.Exit(ec.code)
		}
		errorColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
