package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/respec/packages/core/config"
	"github.com/abdul-hamid-achik/respec/packages/history"
	"github.com/spf13/cobra"
)

var historyLimitFlag int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show previously recorded render runs",
	Long: `Show render runs recorded in the history store, newest first.

Examples:
  respec history
  respec history --limit 50`,
	RunE: historyCommand,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimitFlag, "limit", 20, "Maximum number of runs to show")
}

func historyCommand(cmd *cobra.Command, args []string) error {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	store, err := history.Open(fileConfig.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.Recent(historyLimitFlag)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs.")
		return nil
	}

	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %d passed, %d failed, %d skipped  (%dms)  %s\n",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.ID[:8],
			e.Passed, e.Failed, e.Skipped, e.Duration.Milliseconds(), e.File)
	}
	return nil
}
