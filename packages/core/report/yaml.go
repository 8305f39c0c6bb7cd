package report

import (
	"fmt"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"gopkg.in/yaml.v3"
)

type yamlReport struct {
	Name     string     `yaml:"name"`
	Duration float64    `yaml:"duration"`
	Flags    *yamlFlags `yaml:"flags"`
	Nodes    []yamlNode `yaml:"nodes"`
}

type yamlFlags struct {
	Enabled *bool `yaml:"enabled"`
	Verbose bool  `yaml:"verbose"`
}

type yamlNode struct {
	ID       string     `yaml:"id"`
	Kind     string     `yaml:"kind"`
	Doc      string     `yaml:"doc"`
	Override string     `yaml:"override"`
	Outcome  string     `yaml:"outcome"`
	Children []yamlNode `yaml:"children"`
}

// ParseYAML parses a YAML report into the same shape ParseJSON produces.
func ParseYAML(data []byte, path string) (*Report, error) {
	var doc yamlReport
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	r := &Report{
		Name:     doc.Name,
		Path:     path,
		Duration: time.Duration(doc.Duration * float64(time.Millisecond)),
		Flags:    Flags{Enabled: true},
	}
	if doc.Flags != nil {
		if doc.Flags.Enabled != nil {
			r.Flags.Enabled = *doc.Flags.Enabled
		}
		r.Flags.Verbose = doc.Flags.Verbose
	}

	for _, n := range doc.Nodes {
		r.Roots = append(r.Roots, yamlToNode(n))
	}
	return r, nil
}

func yamlToNode(y yamlNode) *spec.Node {
	n := &spec.Node{
		Identifier:    y.ID,
		Kind:          spec.Kind(y.Kind),
		Documentation: y.Doc,
		Override:      y.Override,
		Outcome:       spec.Outcome(y.Outcome),
	}
	for _, child := range y.Children {
		n.Children = append(n.Children, yamlToNode(child))
	}
	return n
}
