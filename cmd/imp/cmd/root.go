package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "imp",
	Short: "Interpreter for the IMP language",
	Long: `imp runs programs written in IMP, a minimal imperative language with
assignment, sequencing, conditionals, loops, and arithmetic and boolean
expressions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command, printing any error to stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.Red("error: %v", err)
	}
	return err
}
