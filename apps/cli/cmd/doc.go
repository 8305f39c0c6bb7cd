// Package cmd implements the respec CLI commands using Cobra.
//
// Available commands:
//   - render: Render test reports as nested, human-readable specifications
//   - validate: Check report files without rendering
//   - list: Display the resolved spec outline of report files
//   - history: Show previously recorded render runs
//   - init: Create a starter config and example report
//   - version: Show respec version information
//
// The CLI supports flags for output formatting, color control, and watch
// mode for development workflows.
package cmd
