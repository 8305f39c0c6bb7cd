// Package config handles configuration loading and management for respec.
//
// It provides functionality for:
//   - Loading configuration from .respec.config.json (and respecrc variants)
//   - Default configuration values
//   - Merging file configuration with CLI overrides
package config
