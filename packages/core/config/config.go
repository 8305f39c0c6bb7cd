package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the respec configuration
type Config struct {
	Output        string   `json:"output,omitempty"`        // console, json, tap, junit
	OutputFile    string   `json:"outputFile,omitempty"`    // write output here instead of stdout
	NoColor       *bool    `json:"noColor,omitempty"`
	Quiet         *bool    `json:"quiet,omitempty"`
	History       *bool    `json:"history,omitempty"`       // record runs in the history store
	HistoryPath   string   `json:"historyPath,omitempty"`   // SQLite database path
	FillerPhrases []string `json:"fillerPhrases,omitempty"` // doc-line filler blocklist
	CommonWords   []string `json:"commonWords,omitempty"`   // extra function words to lowercase
}

// getBool returns the value of a bool pointer, or the default if nil
func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// BoolPtr returns a pointer to a bool value
func BoolPtr(b bool) *bool {
	return &b
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// GetQuiet returns the quiet setting, defaulting to false
func (c *Config) GetQuiet() bool {
	return getBool(c.Quiet, false)
}

// GetHistory returns the history setting, defaulting to true
func (c *Config) GetHistory() bool {
	return getBool(c.History, true)
}

// ConfigFilenames contains the possible config file names
var ConfigFilenames = []string{
	".respec.config.json",
	"respec.config.json",
	".respecrc",
	".respecrc.json",
}

// LoadConfig loads configuration from the specified path or searches for config files
func LoadConfig(path string) (*Config, error) {
	if path != "" {
		return loadConfigFromFile(path)
	}
	return FindAndLoadConfig(".")
}

// FindAndLoadConfig searches for a config file in the given directory
func FindAndLoadConfig(dir string) (*Config, error) {
	for _, filename := range ConfigFilenames {
		configPath := filepath.Join(dir, filename)
		if _, err := os.Stat(configPath); err == nil {
			return loadConfigFromFile(configPath)
		}
	}

	// Return defaults if no config file found
	return DefaultConfig(), nil
}

func loadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Merge merges another config into this one, with other taking precedence
func (c *Config) Merge(other *Config) *Config {
	if other == nil {
		return c
	}

	result := *c // Copy

	if other.Output != "" {
		result.Output = other.Output
	}
	if other.OutputFile != "" {
		result.OutputFile = other.OutputFile
	}
	if other.HistoryPath != "" {
		result.HistoryPath = other.HistoryPath
	}

	// Boolean flags - only override if explicitly set in other config
	if other.NoColor != nil {
		result.NoColor = other.NoColor
	}
	if other.Quiet != nil {
		result.Quiet = other.Quiet
	}
	if other.History != nil {
		result.History = other.History
	}

	if len(other.FillerPhrases) > 0 {
		result.FillerPhrases = other.FillerPhrases
	}
	if len(other.CommonWords) > 0 {
		result.CommonWords = other.CommonWords
	}

	return &result
}

// SaveConfig saves the configuration to a file
func (c *Config) SaveConfig(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
