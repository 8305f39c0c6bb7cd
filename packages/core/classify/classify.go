// Package classify assigns semantic roles to test identifiers by prefix.
package classify

import (
	"strings"

	"github.com/abdul-hamid-achik/respec/packages/core/spec"
)

// Role is the semantic category of a node derived from its identifier prefix.
type Role string

const (
	// RoleObject marks a root description of the thing under test
	// ("Describe..." or "Test..." suites).
	RoleObject Role = "object"

	// RoleWith marks a positive-context suite ("With...").
	RoleWith Role = "with"

	// RoleWithout marks a negative-context suite ("Without...").
	RoleWithout Role = "without"

	// RoleWhen marks a conditional or temporal context suite ("When...").
	RoleWhen Role = "when"

	// RoleExample marks a leaf test case ("test_..." or "it_...").
	RoleExample Role = "example"

	// RoleUnclassified means the identifier carried no recognized prefix.
	// The node still participates in the tree but gets no article or
	// context keyword.
	RoleUnclassified Role = "unclassified"
)

// suitePrefixes is checked in order; "With" must reject identifiers that
// actually start with "Without".
var suitePrefixes = []struct {
	prefix string
	role   Role
}{
	{"Describe", RoleObject},
	{"Test", RoleObject},
	{"With", RoleWith},
	{"Without", RoleWithout},
	{"When", RoleWhen},
}

// examplePrefixes is checked in order, "test_" first.
var examplePrefixes = []string{"test_", "it_"}

// Classify determines the role of an identifier and returns it with the
// recognized prefix stripped. An identifier that is exactly a bare prefix
// would strip to nothing and produce an empty header, so it is treated as
// unclassified and kept verbatim instead.
func Classify(identifier string, kind spec.Kind) (Role, string) {
	if kind == spec.KindExample {
		return classifyExample(identifier)
	}
	return classifySuite(identifier)
}

func classifySuite(identifier string) (Role, string) {
	for _, p := range suitePrefixes {
		if !strings.HasPrefix(identifier, p.prefix) {
			continue
		}
		rest := identifier[len(p.prefix):]
		if p.role == RoleWith && strings.HasPrefix(rest, "out") {
			// "Without..." must not be misread as With; the next table
			// entry handles it.
			continue
		}
		if rest == "" {
			return RoleUnclassified, identifier
		}
		return p.role, rest
	}
	return RoleUnclassified, identifier
}

func classifyExample(identifier string) (Role, string) {
	for _, prefix := range examplePrefixes {
		if strings.HasPrefix(identifier, prefix) {
			return RoleExample, identifier[len(prefix):]
		}
	}
	return RoleExample, identifier
}

// Keyword returns the fixed lowercase context keyword rendered before a
// suite's word sequence, or "" for roles without one.
func (r Role) Keyword() string {
	switch r {
	case RoleWith:
		return "with"
	case RoleWithout:
		return "without"
	case RoleWhen:
		return "when"
	}
	return ""
}
