package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// TAPFormatter formats rendered runs in TAP (Test Anything Protocol) format
type TAPFormatter struct {
	writer    io.Writer
	testCount int
	results   []tapResult
}

type tapResult struct {
	number  int
	name    string
	outcome spec.Outcome
}

type TAPOption func(*TAPFormatter)

func NewTAPFormatter(opts ...TAPOption) *TAPFormatter {
	f := &TAPFormatter{
		writer:  os.Stdout,
		results: make([]tapResult, 0),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func TAPWithWriter(w io.Writer) TAPOption {
	return func(f *TAPFormatter) {
		f.writer = w
	}
}

func (f *TAPFormatter) FormatRun(run *Run) {
	for _, ex := range flatten(run.Blocks) {
		f.testCount++
		name := ex.phrase
		if len(ex.path) > 0 {
			name = strings.Join(ex.path, " ") + " " + ex.phrase
		}
		f.results = append(f.results, tapResult{
			number:  f.testCount,
			name:    name,
			outcome: ex.outcome,
		})
	}
}

func (f *TAPFormatter) FormatError(err error) {
	// Errors surface through the CLI exit code
}

func (f *TAPFormatter) FormatHeader(version string) {
	// Header is written in Flush
}

// Flush writes the accumulated TAP output
func (f *TAPFormatter) Flush(totalDuration time.Duration) error {
	fmt.Fprintf(f.writer, "TAP version 13\n")
	fmt.Fprintf(f.writer, "1..%d\n", f.testCount)

	for _, r := range f.results {
		switch r.outcome {
		case spec.OutcomeSkipped:
			fmt.Fprintf(f.writer, "ok %d - %s # SKIP\n", r.number, r.name)
		case spec.OutcomeFailed:
			fmt.Fprintf(f.writer, "not ok %d - %s\n", r.number, r.name)
		default:
			fmt.Fprintf(f.writer, "ok %d - %s\n", r.number, r.name)
		}
	}

	fmt.Fprintln(f.writer)
	return nil
}
