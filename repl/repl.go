/*
File    : loxmix/repl/repl.go

Package repl implements loxmix's interactive Read-Eval-Print Loop:
readline for line editing and history, fatih/color for banner and
error/result coloring, a long-lived interpreter reused across lines so
state (variables, functions, classes) persists between them. Each line
is lexed, parsed and resolved independently, then run against that one
shared interpreter; `.exit` or EOF ends the session.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/loxmix/loxmix/config"
	"github.com/loxmix/loxmix/interpreter"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's configuration: banner text, prompt,
// and the version/license strings shown on startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New builds a Repl from a loaded config.Config, copying its fields as
// they are; defaults for unset fields come from config.Load, not here.
func New(cfg *config.Config) *Repl {
	return &Repl{
		Banner:  cfg.Banner,
		Version: cfg.Version,
		Author:  cfg.Author,
		Line:    cfg.Line,
		License: cfg.License,
		Prompt:  cfg.Prompt,
	}
}

func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to loxmix!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop: read a line, hand it to a single long-lived
// Interpreter, print whatever diagnostic (if any) that produced.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] %v\n", err)
		return
	}
	defer rl.Close()

	it := interpreter.NewREPLInterpreter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		if err := interpreter.RunInterpreter(it, line); err != nil {
			redColor.Fprintf(writer, "%s\n", err.Error())
		}
	}
}
