package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("loxmix %s\n", activeConfig.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
