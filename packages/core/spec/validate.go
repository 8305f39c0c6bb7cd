package spec

import (
	"fmt"
	"strings"
)

// MalformedTreeError reports a contract violation by the upstream collector,
// such as a suite carrying an outcome or an example carrying children.
// It halts formatting for the run; the runner's default output remains the
// safety net.
type MalformedTreeError struct {
	Path   string
	Reason string
}

func (e *MalformedTreeError) Error() string {
	return fmt.Sprintf("malformed tree at %s: %s", e.Path, e.Reason)
}

// Validate checks the structural invariants of a node forest before it is
// consolidated. It returns the first violation found in traversal order.
func Validate(roots []*Node) error {
	for _, root := range roots {
		if err := validateNode(root, nil); err != nil {
			return err
		}
	}
	return nil
}

func validateNode(n *Node, ancestors []string) error {
	path := nodePath(ancestors, n)

	switch n.Kind {
	case KindSuite:
		if n.Outcome != "" {
			return &MalformedTreeError{Path: path, Reason: "suite node carries an outcome"}
		}
	case KindExample:
		if len(n.Children) > 0 {
			return &MalformedTreeError{Path: path, Reason: "example node carries children"}
		}
	default:
		return &MalformedTreeError{Path: path, Reason: fmt.Sprintf("unknown node kind %q", n.Kind)}
	}

	chain := append(ancestors, displayName(n))
	for _, child := range n.Children {
		if err := validateNode(child, chain); err != nil {
			return err
		}
	}
	return nil
}

func nodePath(ancestors []string, n *Node) string {
	parts := append(append([]string{}, ancestors...), displayName(n))
	return strings.Join(parts, "/")
}

func displayName(n *Node) string {
	if n.Identifier == "" {
		return "(unnamed)"
	}
	return n.Identifier
}
