// Package consolidate flattens a resolved suite/example tree into the
// ordered render blocks the renderer prints, suppressing ancestor headers
// that are already on screen.
package consolidate

import (
	"github.com/abdul-hamid-achik/respec/packages/core/resolve"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// Header is one suite line pending print, at its depth in the tree.
type Header struct {
	Phrase string
	Depth  int
}

// Example is a leaf line with its outcome.
type Example struct {
	Phrase  string
	Outcome spec.Outcome
}

// Block is one unit of render output: the ancestor headers not yet printed,
// the example's depth, and the example itself.
type Block struct {
	Headers []Header
	Depth   int
	Example Example
}

// Consolidator walks a tree in pre-order and produces blocks. The printed
// header stack lives on the Consolidator instance and is reset per call, so
// consolidation is idempotent and never mutates the input tree.
type Consolidator struct {
	resolver *resolve.Resolver
}

// New returns a Consolidator using the given resolver for display phrases.
func New(r *resolve.Resolver) *Consolidator {
	return &Consolidator{resolver: r}
}

// Consolidate validates the forest and flattens it into render blocks in
// strict traversal order.
func (c *Consolidator) Consolidate(roots []*spec.Node) ([]Block, error) {
	if err := spec.Validate(roots); err != nil {
		return nil, err
	}

	var blocks []Block
	var printed []string
	for _, root := range roots {
		blocks = c.walk(root, nil, blocks, &printed)
	}
	return blocks, nil
}

// walk descends through suites carrying the resolved ancestor chain, and
// emits one block per example with the minimal header path that
// disambiguates it from the previously emitted block. Consecutive siblings
// whose resolved ancestor chains are identical share one header.
func (c *Consolidator) walk(n *spec.Node, chain []Header, blocks []Block, printed *[]string) []Block {
	if n.Kind == spec.KindExample {
		pending := missingHeaders(chain, *printed)
		*printed = phrases(chain)
		return append(blocks, Block{
			Headers: pending,
			Depth:   len(chain),
			Example: Example{
				Phrase:  c.resolver.Resolve(n),
				Outcome: n.Outcome,
			},
		})
	}

	next := append(chain, Header{Phrase: c.resolver.Resolve(n), Depth: len(chain)})
	for _, child := range n.Children {
		blocks = c.walk(child, next, blocks, printed)
	}
	return blocks
}

// missingHeaders returns the suffix of the ancestor chain that is not
// already current on the printed stack. Comparison is by resolved phrase at
// each depth, which is what makes two sibling suites with the same resolved
// phrase consolidate under a single header.
func missingHeaders(chain []Header, printed []string) []Header {
	i := 0
	for i < len(chain) && i < len(printed) && chain[i].Phrase == printed[i] {
		i++
	}
	return append([]Header{}, chain[i:]...)
}

func phrases(chain []Header) []string {
	out := make([]string, len(chain))
	for i, h := range chain {
		out[i] = h.Phrase
	}
	return out
}
