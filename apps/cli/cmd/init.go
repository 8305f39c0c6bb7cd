package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdul-hamid-achik/respec/packages/core/config"
	"github.com/spf13/cobra"
)

var forceInit bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new respec project",
	Long: `Initialize a new respec project in the current directory.

This creates:
  - .respec.config.json  - Configuration file
  - example.report.json  - Example test report

Examples:
  respec init
  respec init --force`,
	RunE: initCommand,
}

func init() {
	initCmd.Flags().BoolVarP(&forceInit, "force", "f", false, "Overwrite existing files")
}

const exampleReport = `{
  "name": "car acceptance suite",
  "duration": 42,
  "flags": { "enabled": true, "verbose": false },
  "nodes": [
    {
      "id": "DescribeCar",
      "kind": "suite",
      "children": [
        { "id": "test_has_engine", "kind": "example", "outcome": "passed" },
        {
          "id": "WithFullTank",
          "kind": "suite",
          "children": [
            { "id": "test_drive_long_distance", "kind": "example", "outcome": "passed" },
            { "id": "it_reports_range", "kind": "example", "outcome": "skipped" }
          ]
        }
      ]
    }
  ]
}
`

func initCommand(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	configFile := filepath.Join(cwd, config.ConfigFilenames[0])
	exampleFile := filepath.Join(cwd, "example.report.json")

	if !forceInit {
		for _, f := range []string{configFile, exampleFile} {
			if _, err := os.Stat(f); err == nil {
				return fmt.Errorf("file already exists: %s (use --force to overwrite)", f)
			}
		}
	}

	if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	if err := os.WriteFile(exampleFile, []byte(exampleReport), 0644); err != nil {
		return fmt.Errorf("writing example report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFile)
	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", exampleFile)
	fmt.Fprintf(cmd.OutOrStdout(), "\nTry: respec render example.report.json\n")
	return nil
}
