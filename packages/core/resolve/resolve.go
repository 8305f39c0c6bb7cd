// Package resolve picks the display phrase for each node in a collection
// tree, honoring the override → documentation → derived-name precedence.
package resolve

import (
	"strings"

	"github.com/abdul-hamid-achik/respec/packages/core/classify"
	"github.com/abdul-hamid-achik/respec/packages/core/phrase"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// Placeholder is returned for nodes with no identifier, documentation or
// override, so the renderer always receives a non-empty string.
const Placeholder = "(unnamed)"

// DefaultFillerPhrases is the default blocklist of trailing documentation
// segments that add nothing to a spec line.
var DefaultFillerPhrases = []string{"with more details"}

// Resolver computes display phrases. Each run of a tree must use its own
// Resolver: resolved phrases are cached per node and caches must never be
// shared across unrelated trees.
type Resolver struct {
	formatter *phrase.Formatter
	fillers   []string
	cache     map[*spec.Node]string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFillerPhrases replaces the filler blocklist applied to documentation
// lines. Each entry is matched against the trailing segment that follows a
// literal " with " boundary.
func WithFillerPhrases(fillers []string) Option {
	return func(r *Resolver) {
		r.fillers = fillers
	}
}

// WithFormatter replaces the phrase formatter, letting configuration extend
// the common-word set.
func WithFormatter(f *phrase.Formatter) Option {
	return func(r *Resolver) {
		r.formatter = f
	}
}

// NewResolver returns a Resolver with the default filler blocklist.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{
		formatter: phrase.NewFormatter(),
		fillers:   DefaultFillerPhrases,
		cache:     make(map[*spec.Node]string),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the display phrase for a node. It is total: every node
// resolves to a non-empty string. Results are cached so repeated queries
// during consolidation and rendering stay stable.
func (r *Resolver) Resolve(n *spec.Node) string {
	if cached, ok := r.cache[n]; ok {
		return cached
	}
	resolved := r.resolve(n)
	r.cache[n] = resolved
	return resolved
}

func (r *Resolver) resolve(n *spec.Node) string {
	if strings.TrimSpace(n.Override) != "" {
		return n.Override
	}

	if line := firstLine(n.Documentation); line != "" {
		return r.stripFiller(line)
	}

	if derived := r.derive(n); derived != "" {
		return derived
	}

	return Placeholder
}

// derive runs the classifier and phrase formatter over the identifier,
// falling back to plain word splitting when no role-aware phrase exists.
func (r *Resolver) derive(n *spec.Node) string {
	role, stripped := classify.Classify(n.Identifier, n.Kind)
	if role == classify.RoleUnclassified {
		return phrase.Legible(n.Identifier)
	}

	p, err := r.formatter.Format(stripped, role)
	if err != nil {
		return phrase.Legible(n.Identifier)
	}
	return p
}

// firstLine returns the trimmed text up to the first newline, or "" when
// that line is empty.
func firstLine(doc string) string {
	if doc == "" {
		return ""
	}
	line := doc
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		line = doc[:i]
	}
	return strings.TrimSpace(line)
}

// stripFiller drops a trailing " with <filler>" segment when the segment
// matches the blocklist: "do something with more details" becomes
// "do something".
func (r *Resolver) stripFiller(line string) string {
	i := strings.Index(line, " with ")
	if i < 0 {
		return line
	}
	trailing := line[i+1:] // "with ..." including the keyword
	for _, filler := range r.fillers {
		if trailing == filler {
			return line[:i]
		}
	}
	return line
}
