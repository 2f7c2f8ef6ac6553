package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"imp/interpreter-go/pkg/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check <suite.yml>",
	Short: "Run a YAML suite of IMP programs against expected results",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	suite, err := driver.LoadSuite(args[0])
	if err != nil {
		return err
	}
	results, err := suite.Run(filepath.Dir(args[0]))
	if err != nil {
		return err
	}

	failed := 0
	for _, result := range results {
		if len(result.Problems) == 0 {
			color.Green("ok   %s", result.Name)
			continue
		}
		failed++
		color.Red("FAIL %s", result.Name)
		for _, problem := range result.Problems {
			color.Red("     %s", problem)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d programs failed", failed, len(results))
	}
	color.Green("%d programs passed", len(results))
	return nil
}
