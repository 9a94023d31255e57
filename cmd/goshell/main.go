package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goshell",
	Short: "A small interactive command shell",
	Long: "goshell is an interactive command-line shell: line editing with " +
		"TAB completion and history, pipelines, redirection, and a handful " +
		"of built-in commands.\n\nRun with no arguments to start the REPL.",
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runREPL()
	},
}

func init() {
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newDoctorCommand())
	rootCmd.AddCommand(newHistoryCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "goshell:", err)
		os.Exit(1)
	}
}
