package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/driver"
)

var runCmd = &cobra.Command{
	Use:   "run <file>",
	Short: "Run an IMP program and print the final variable values",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	env, err := driver.RunFile(args[0])
	if err != nil {
		return err
	}

	names := make([]string, 0, len(env))
	for name := range env {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Final variable values:")
	for _, name := range names {
		fmt.Fprintf(out, "%s: %d\n", name, env[name])
	}
	return nil
}
