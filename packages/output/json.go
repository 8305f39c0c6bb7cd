package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID    string      `json:"runId"`
	Summary  JSONSummary `json:"summary"`
	Runs     []JSONRun   `json:"runs"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
}

// JSONSummary represents the example tally across all runs
type JSONSummary struct {
	Total   int `json:"total"`
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// JSONRun represents one rendered report
type JSONRun struct {
	Name     string        `json:"name,omitempty"`
	File     string        `json:"file"`
	Lines    []string      `json:"lines"`
	Examples []JSONExample `json:"examples"`
	Passed   int           `json:"passed"`
	Failed   int           `json:"failed"`
	Skipped  int           `json:"skipped"`
	Duration float64       `json:"duration"`
}

// JSONExample is one flattened example with its ancestor phrases
type JSONExample struct {
	Path    []string `json:"path,omitempty"`
	Phrase  string   `json:"phrase"`
	Outcome string   `json:"outcome"`
}

// JSONFormatter formats rendered runs as JSON
type JSONFormatter struct {
	writer io.Writer
	runs   []JSONRun
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
		runs:   make([]JSONRun, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatRun(run *Run) {
	jr := JSONRun{
		Name:     run.Name,
		File:     run.File,
		Lines:    run.Lines,
		Passed:   run.Passed,
		Failed:   run.Failed,
		Skipped:  run.Skipped,
		Duration: float64(run.Duration.Milliseconds()),
	}

	for _, ex := range flatten(run.Blocks) {
		jr.Examples = append(jr.Examples, JSONExample{
			Path:    ex.path,
			Phrase:  ex.phrase,
			Outcome: string(ex.outcome),
		})
	}

	f.runs = append(f.runs, jr)
}

func (f *JSONFormatter) FormatError(err error) {
	// Errors surface through the CLI exit code, not the JSON document
}

func (f *JSONFormatter) FormatHeader(version string) {
	// No header needed for JSON output
}

// Flush writes the accumulated JSON output
func (f *JSONFormatter) Flush(totalDuration time.Duration) error {
	var passed, failed, skipped int
	for _, r := range f.runs {
		passed += r.Passed
		failed += r.Failed
		skipped += r.Skipped
	}

	output := JSONOutput{
		RunID: uuid.NewString(),
		Summary: JSONSummary{
			Total:   passed + failed + skipped,
			Passed:  passed,
			Failed:  failed,
			Skipped: skipped,
		},
		Runs:     f.runs,
		Duration: float64(totalDuration.Milliseconds()),
		Time:     time.Now().Format(time.RFC3339),
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
