package cmd

import (
	"fmt"
	"os"

	"github.com/abdul-hamid-achik/respec/packages/core/report"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file|directory>",
	Short: "Validate report files without rendering them",
	Long: `Validate report files against the report schema and the tree
invariants without rendering them.

Examples:
  respec validate report.json
  respec validate ./reports/`,
	Args: cobra.MinimumNArgs(1),
	RunE: validateCommand,
}

func validateCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no report files found")
	}

	hasErrors := false
	for _, file := range files {
		rep, err := report.ParseFile(file)
		if err == nil {
			err = spec.Validate(rep.Roots)
		}
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			hasErrors = true
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Valid: %s\n", file)
		}
	}

	if hasErrors {
		os.Exit(ExitParseError)
	}
	return nil
}
