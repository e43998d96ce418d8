package cmd

import (
	"os"

	"github.com/aburd/mal/repl"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mal",
	Short: "A mal (make-a-lisp) reader",
	Long: `mal reads forms written in a small lisp syntax and echoes them back in
their canonical rendering.  Without a subcommand it starts the interactive
read-print loop.`,
	Run: func(cmd *cobra.Command, args []string) {
		repl.RunRepl(replPrompt)
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately.  This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
