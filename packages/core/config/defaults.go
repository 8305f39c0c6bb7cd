package config

import "github.com/abdul-hamid-achik/respec/packages/core/resolve"

// DefaultHistoryPath is the default SQLite database for run history,
// relative to the working directory.
const DefaultHistoryPath = ".respec/history.db"

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Output:        "console",
		OutputFile:    "",
		NoColor:       BoolPtr(false),
		Quiet:         BoolPtr(false),
		History:       BoolPtr(true),
		HistoryPath:   DefaultHistoryPath,
		FillerPhrases: append([]string{}, resolve.DefaultFillerPhrases...),
		CommonWords:   nil,
	}
}
