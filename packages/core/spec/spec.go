package spec

// Kind distinguishes grouping suites from leaf examples.
type Kind string

const (
	KindSuite   Kind = "suite"
	KindExample Kind = "example"
)

// Outcome is the run result attached to an example node.
type Outcome string

const (
	OutcomePassed  Outcome = "passed"
	OutcomeFailed  Outcome = "failed"
	OutcomeSkipped Outcome = "skipped"
)

// Node is one unit in the collection tree handed over by the test runner.
// The tree is an immutable snapshot: nothing in this module mutates a Node
// after construction.
type Node struct {
	// Identifier is the raw name from the source test artifact,
	// e.g. "WhenTheUserIsLoggedIn" or "test_has_engine".
	Identifier string

	Kind Kind

	// Documentation is the free text block attached to the node.
	// Only its first line is ever used for display.
	Documentation string

	// Override is an explicit display text set by an external annotation
	// mechanism. When present it wins over everything else.
	Override string

	// Outcome is set on example nodes only.
	Outcome Outcome

	// Children is set on suite nodes only.
	Children []*Node
}

// ShouldFormat reports whether spec-style formatting applies for a run.
// Verbose mode defers to the runner's own line-per-test output.
func ShouldFormat(enabled, verbose bool) bool {
	return enabled && !verbose
}
