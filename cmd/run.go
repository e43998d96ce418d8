package cmd

import (
	"fmt"
	"os"

	"github.com/aburd/mal/mal"
	"github.com/aburd/mal/parser"
	"github.com/spf13/cobra"
)

var runExpression bool

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Read and print lisp forms",
	Long:  `Read lisp forms supplied via the command line or a file and print their canonical rendering.`,
	Run: func(cmd *cobra.Command, args []string) {
		exprs, err := runReadExpressions(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		env := mal.NewEnv()
		for i := range exprs {
			forms, err := parser.ReadProgram(string(exprs[i]), env)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			for _, form := range forms {
				fmt.Println(form)
			}
		}
	},
}

func runReadExpressions(args []string) ([][]byte, error) {
	exprs := make([][]byte, len(args))
	if runExpression {
		for i := range args {
			exprs[i] = []byte(args[i])
		}
		return exprs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		exprs[i] = b
	}
	return exprs, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVarP(&runExpression, "expression", "e", false,
		"Interpret arguments as lisp forms")
}
