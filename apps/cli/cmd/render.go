package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/config"
	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/phrase"
	"github.com/abdul-hamid-achik/respec/packages/core/render"
	"github.com/abdul-hamid-achik/respec/packages/core/report"
	"github.com/abdul-hamid-achik/respec/packages/core/resolve"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/abdul-hamid-achik/respec/packages/history"
	"github.com/abdul-hamid-achik/respec/packages/output"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render <file|directory>",
	Short: "Render test reports as nested specifications",
	Long: `Render test-execution reports (.json, .yaml) as hierarchically
nested, human-readable specifications.

Examples:
  respec render report.json
  respec render ./reports/
  respec render report.json --output junit --output-file report.xml
  respec render report.json --watch`,
	Args: cobra.MinimumNArgs(1),
	RunE: renderCommand,
}

const (
	// WatchDebounceDelay is the debounce delay for file watch events
	WatchDebounceDelay = 300 * time.Millisecond
)

var (
	outputFlag     string
	outputFileFlag string
	noColorFlag    bool
	quietFlag      bool
	verboseFlag    bool
	watchFlag      bool
	configFlag     string
	noHistoryFlag  bool
)

func init() {
	renderCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("RESPEC_OUTPUT", ""), "Output format: console, json, tap, junit (env: RESPEC_OUTPUT)")
	renderCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("RESPEC_OUTPUT_FILE", ""), "Write output to file (default: stdout) (env: RESPEC_OUTPUT_FILE)")
	renderCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("RESPEC_NO_COLOR", false), "Disable colored output (env: RESPEC_NO_COLOR)")
	renderCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", getEnvBool("RESPEC_QUIET", false), "Suppress spec lines, print summaries only (env: RESPEC_QUIET)")
	renderCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Force the default line-per-test output instead of spec formatting")
	renderCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Watch report files for changes and re-render")
	renderCmd.Flags().StringVar(&configFlag, "config", getEnvString("RESPEC_CONFIG", ""), "Path to config file (env: RESPEC_CONFIG)")
	renderCmd.Flags().BoolVar(&noHistoryFlag, "no-history", false, "Do not record this run in the history store")
}

// Environment variable helpers
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

// Formatter interface for all output formatters
type Formatter interface {
	FormatRun(run *output.Run)
	FormatError(err error)
	FormatHeader(version string)
}

// Flushable interface for formatters that need to flush output
type Flushable interface {
	Flush(totalDuration time.Duration) error
}

func renderCommand(cmd *cobra.Command, args []string) error {
	fileConfig, err := config.LoadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	outputFormat := fileConfig.Output
	if outputFlag != "" {
		outputFormat = outputFlag
	}
	noColor := noColorFlag || fileConfig.GetNoColor()
	quiet := quietFlag || fileConfig.GetQuiet()

	var outWriter *os.File
	outputFile := outputFileFlag
	if outputFile == "" {
		outputFile = fileConfig.OutputFile
	}
	if outputFile != "" {
		outWriter, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("cannot create output file: %w", err)
		}
		defer outWriter.Close()
	}

	newFormatter := func() Formatter {
		switch strings.ToLower(outputFormat) {
		case "json":
			opts := []output.JSONOption{}
			if outWriter != nil {
				opts = append(opts, output.JSONWithWriter(outWriter))
			}
			return output.NewJSONFormatter(opts...)
		case "junit":
			opts := []output.JUnitOption{}
			if outWriter != nil {
				opts = append(opts, output.JUnitWithWriter(outWriter))
			}
			return output.NewJUnitFormatter(opts...)
		case "tap":
			opts := []output.TAPOption{}
			if outWriter != nil {
				opts = append(opts, output.TAPWithWriter(outWriter))
			}
			return output.NewTAPFormatter(opts...)
		default: // "console"
			consoleOpts := []output.ConsoleOption{
				output.WithQuiet(quiet),
				output.WithNoColor(noColor || quiet),
			}
			if outWriter != nil {
				consoleOpts = append(consoleOpts, output.WithWriter(outWriter))
			}
			return output.NewConsoleFormatter(consoleOpts...)
		}
	}

	formatter := newFormatter()
	formatter.FormatHeader(version)

	files, err := collectFiles(args)
	if err != nil {
		formatter.FormatError(err)
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no report files found (expected %s)", strings.Join(report.Extensions, ", "))
	}

	var store *history.Store
	if fileConfig.GetHistory() && !noHistoryFlag {
		store, err = history.Open(fileConfig.HistoryPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: history disabled: %v\n", err)
		} else {
			defer store.Close()
		}
	}

	runAll := func(f Formatter) (failed int, parseErrors int, duration time.Duration) {
		start := time.Now()
		for _, file := range files {
			run, err := renderFile(file, fileConfig)
			if err != nil {
				f.FormatError(err)
				parseErrors++
				continue
			}
			f.FormatRun(run)
			failed += run.Failed

			if store != nil {
				if _, err := store.Record(history.Entry{
					File:     run.File,
					Passed:   run.Passed,
					Failed:   run.Failed,
					Skipped:  run.Skipped,
					Duration: run.Duration,
				}); err != nil {
					fmt.Fprintf(os.Stderr, "warning: could not record run: %v\n", err)
				}
			}
		}
		return failed, parseErrors, time.Since(start)
	}

	totalFailed, parseErrors, totalDuration := runAll(formatter)

	if flushable, ok := formatter.(Flushable); ok {
		if err := flushable.Flush(totalDuration); err != nil {
			return fmt.Errorf("error writing output: %w", err)
		}
	}

	if !watchFlag {
		switch {
		case parseErrors > 0:
			os.Exit(ExitParseError)
		case totalFailed > 0:
			os.Exit(ExitExampleFailure)
		}
		return nil
	}

	return watchLoop(cmd, files, args, newFormatter, runAll)
}

// renderFile parses one report and runs the full pipeline: resolve phrases,
// consolidate the tree, render lines.
func renderFile(path string, cfg *config.Config) (*output.Run, error) {
	rep, err := report.ParseFile(path)
	if err != nil {
		return nil, err
	}

	resolver := resolve.NewResolver(
		resolve.WithFillerPhrases(cfg.FillerPhrases),
		resolve.WithFormatter(phrase.NewFormatter(cfg.CommonWords...)),
	)

	blocks, err := consolidate.New(resolver).Consolidate(rep.Roots)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	formatted := spec.ShouldFormat(rep.Flags.Enabled, rep.Flags.Verbose || verboseFlag)
	var lines []string
	if formatted {
		lines = render.Render(blocks)
	} else {
		lines = render.Plain(blocks)
	}

	passed, failed, skipped := render.Tally(blocks)
	return &output.Run{
		Name:      rep.Name,
		File:      path,
		Formatted: formatted,
		Lines:     lines,
		Blocks:    blocks,
		Passed:    passed,
		Failed:    failed,
		Skipped:   skipped,
		Duration:  rep.Duration,
	}, nil
}

func watchLoop(cmd *cobra.Command, files, args []string, newFormatter func() Formatter, runAll func(Formatter) (int, int, time.Duration)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watchedDirs := make(map[string]bool)
	for _, file := range files {
		dir := filepath.Dir(file)
		if !watchedDirs[dir] {
			if err := watcher.Add(dir); err != nil {
				fmt.Fprintf(cmd.OutOrStderr(), "failed to watch %s: %v\n", dir, err)
			}
			watchedDirs[dir] = true
		}
	}

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err == nil && info.IsDir() {
			_ = filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if info.IsDir() && !watchedDirs[path] {
					_ = watcher.Add(path)
					watchedDirs[path] = true
				}
				return nil
			})
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n\n")

	var debounceTimer *time.Timer

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if event.Has(fsnotify.Write) && report.IsReportFile(event.Name) {
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
					fmt.Fprintf(cmd.OutOrStdout(), "\n\nFile changed: %s\nRe-rendering...\n\n", event.Name)

					// Fresh formatter state per re-render for formats
					// that accumulate results
					formatter := newFormatter()
					_, _, duration := runAll(formatter)
					if flushable, ok := formatter.(Flushable); ok {
						_ = flushable.Flush(duration)
					}

					fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")
				})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.OutOrStderr(), "watcher error: %v\n", err)
		}
	}
}

func collectFiles(args []string) ([]string, error) {
	var files []string

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}

		if info.IsDir() {
			err := filepath.Walk(arg, func(path string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}
				if !info.IsDir() && report.IsReportFile(path) {
					files = append(files, path)
				}
				return nil
			})
			if err != nil {
				return nil, err
			}
			continue
		}

		files = append(files, arg)
	}

	return files, nil
}
