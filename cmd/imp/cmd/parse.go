package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/lexer"
	"imp/interpreter-go/pkg/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse an IMP program and print its syntax tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(string(source))
	if err != nil {
		return err
	}
	program, err := parser.ParseProgram(tokens)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), program)
	return nil
}
