package output

import (
	"bytes"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/stretchr/testify/assert"
)

func carRun() *Run {
	return &Run{
		Name:      "car acceptance suite",
		File:      "car.json",
		Formatted: true,
		Lines: []string{
			"a Car",
			"  ✓ has engine",
			"",
			"  with Full Tank",
			"    ✗ drive long distance",
		},
		Blocks: []consolidate.Block{
			{
				Headers: []consolidate.Header{{Phrase: "a Car", Depth: 0}},
				Depth:   1,
				Example: consolidate.Example{Phrase: "has engine", Outcome: spec.OutcomePassed},
			},
			{
				Headers: []consolidate.Header{{Phrase: "with Full Tank", Depth: 1}},
				Depth:   2,
				Example: consolidate.Example{Phrase: "drive long distance", Outcome: spec.OutcomeFailed},
			},
		},
		Passed:   1,
		Failed:   1,
		Duration: 42 * time.Millisecond,
	}
}

func TestConsoleFormatterPrintsSpecLines(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatRun(carRun())

	out := buf.String()
	assert.Contains(t, out, "car acceptance suite")
	assert.Contains(t, out, "a Car\n")
	assert.Contains(t, out, "  ✓ has engine\n")
	assert.Contains(t, out, "  with Full Tank\n")
	assert.Contains(t, out, "    ✗ drive long distance\n")
	assert.Contains(t, out, "1 passed")
	assert.Contains(t, out, "1 failed")
	assert.Contains(t, out, "2 total")
	assert.Contains(t, out, "Time:     42ms")
}

func TestConsoleFormatterQuiet(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithQuiet(true))

	f.FormatHeader("1.0.0")
	f.FormatRun(carRun())

	out := buf.String()
	assert.NotContains(t, out, "respec 1.0.0")
	assert.NotContains(t, out, "has engine")
	assert.Contains(t, out, "2 total")
}

func TestConsoleFormatterHeaderAndError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatHeader("1.2.3")
	f.FormatError(assert.AnError)

	assert.Contains(t, buf.String(), "respec 1.2.3")
	assert.Contains(t, buf.String(), "Error:")
}
