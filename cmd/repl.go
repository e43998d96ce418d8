package cmd

import (
	"github.com/aburd/mal/repl"
	"github.com/spf13/cobra"
)

var replPrompt string

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive read-print loop",
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	rootCmd.PersistentFlags().StringVar(&replPrompt, "prompt", "user> ",
		"Prompt shown before each input line")
}
