package cmd

import (
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/report"
	"github.com/abdul-hamid-achik/respec/packages/core/resolve"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <file|directory>",
	Short: "List the resolved spec outline of report files",
	Long: `List the resolved specification outline of report files, without
outcomes or glyphs.

Examples:
  respec list report.json
  respec list ./reports/`,
	Args: cobra.MinimumNArgs(1),
	RunE: listCommand,
}

func listCommand(cmd *cobra.Command, args []string) error {
	files, err := collectFiles(args)
	if err != nil {
		return err
	}

	if len(files) == 0 {
		return fmt.Errorf("no report files found")
	}

	for _, file := range files {
		rep, err := report.ParseFile(file)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error parsing %s: %v\n", file, err)
			continue
		}

		blocks, err := consolidate.New(resolve.NewResolver()).Consolidate(rep.Roots)
		if err != nil {
			fmt.Fprintf(cmd.OutOrStderr(), "Error in %s: %v\n", file, err)
			continue
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\n%s:\n", file)
		for _, b := range blocks {
			for _, h := range b.Headers {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s%s\n", strings.Repeat("  ", h.Depth), h.Phrase)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  %s- %s\n", strings.Repeat("  ", b.Depth), b.Example.Phrase)
		}
	}

	return nil
}
