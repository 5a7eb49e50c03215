package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/loxmix/loxmix/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "start the interactive REPL",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startRepl()
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func startRepl() error {
	repl.New(activeConfig).Start(os.Stdout)
	return nil
}
