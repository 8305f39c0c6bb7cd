package output

import (
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// Run is one rendered report handed to the formatters: the plain line
// sequence produced by the core, the consolidated blocks for structured
// exports, and the outcome tallies.
type Run struct {
	Name      string
	File      string
	Formatted bool // false when spec formatting was bypassed
	Lines     []string
	Blocks    []consolidate.Block
	Passed    int
	Failed    int
	Skipped   int
	Duration  time.Duration
}

// Total returns the number of examples in the run.
func (r *Run) Total() int {
	return r.Passed + r.Failed + r.Skipped
}

// flatExample is one example with its full ancestor phrase chain, used by
// the TAP and JUnit formatters which have no notion of nesting.
type flatExample struct {
	path    []string
	phrase  string
	outcome spec.Outcome
}

// flatten replays the consolidated blocks, reconstructing each example's
// full ancestor chain from the incremental header paths.
func flatten(blocks []consolidate.Block) []flatExample {
	var chain []string
	out := make([]flatExample, 0, len(blocks))
	for _, b := range blocks {
		for _, h := range b.Headers {
			if len(chain) > h.Depth {
				chain = chain[:h.Depth]
			}
			chain = append(chain, h.Phrase)
		}
		path := append([]string{}, chain[:b.Depth]...)
		out = append(out, flatExample{
			path:    path,
			phrase:  b.Example.Phrase,
			outcome: b.Example.Outcome,
		})
	}
	return out
}
