// Package render maps consolidated blocks to plain text lines.
//
// Lines carry no control codes; coloring is the console formatter's job.
package render

import (
	"strings"

	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// Status glyphs for example outcomes.
const (
	GlyphPassed  = "✓"
	GlyphFailed  = "✗"
	GlyphSkipped = "»"
)

const indentStep = "  "

// Glyph returns the status glyph for an outcome. Anything unrecognized is
// shown as skipped rather than dropped.
func Glyph(outcome spec.Outcome) string {
	switch outcome {
	case spec.OutcomePassed:
		return GlyphPassed
	case spec.OutcomeFailed:
		return GlyphFailed
	}
	return GlyphSkipped
}

// Render turns blocks into the ordered line sequence. Headers print at two
// spaces per depth level, examples one level below their deepest header. A
// blank line separates each new header group from earlier output; an example
// never gets a blank line between itself and its own header.
func Render(blocks []consolidate.Block) []string {
	var lines []string
	for _, b := range blocks {
		if len(b.Headers) > 0 && len(lines) > 0 {
			lines = append(lines, "")
		}
		for _, h := range b.Headers {
			lines = append(lines, strings.Repeat(indentStep, h.Depth)+h.Phrase)
		}
		lines = append(lines,
			strings.Repeat(indentStep, b.Depth)+Glyph(b.Example.Outcome)+" "+b.Example.Phrase)
	}
	return lines
}

// Plain is the default line-per-test output used when spec formatting is
// bypassed: one flat line per example, full ancestor chain inlined.
func Plain(blocks []consolidate.Block) []string {
	var chain []string
	lines := make([]string, 0, len(blocks))
	for _, b := range blocks {
		for _, h := range b.Headers {
			if len(chain) > h.Depth {
				chain = chain[:h.Depth]
			}
			chain = append(chain, h.Phrase)
		}
		parts := append(append([]string{Glyph(b.Example.Outcome)}, chain[:b.Depth]...), b.Example.Phrase)
		lines = append(lines, strings.Join(parts, " "))
	}
	return lines
}

// Tally counts example outcomes across blocks.
func Tally(blocks []consolidate.Block) (passed, failed, skipped int) {
	for _, b := range blocks {
		switch b.Example.Outcome {
		case spec.OutcomePassed:
			passed++
		case spec.OutcomeFailed:
			failed++
		default:
			skipped++
		}
	}
	return passed, failed, skipped
}
