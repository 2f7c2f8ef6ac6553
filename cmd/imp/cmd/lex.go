package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the token stream of an IMP program",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	tokens, err := lexer.Tokenize(string(source))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%-12s %s\n", tok.Tag, tok.Text)
	}
	return nil
}
