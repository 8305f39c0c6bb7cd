// Package report parses test-execution reports into collection trees.
//
// A report is the immutable snapshot a test runner hands over per run: a
// forest of suite/example nodes plus the formatting flags. JSON reports are
// validated against a schema before the tree is built; YAML reports are
// accepted for runners that emit YAML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
)

// Flags are the two booleans the runner passes alongside the tree.
type Flags struct {
	Enabled bool
	Verbose bool
}

// Report is one parsed test run.
type Report struct {
	Name     string
	Path     string
	Flags    Flags
	Duration time.Duration
	Roots    []*spec.Node
}

// ShouldFormat reports whether this run gets spec-style output.
func (r *Report) ShouldFormat() bool {
	return spec.ShouldFormat(r.Flags.Enabled, r.Flags.Verbose)
}

// Extensions accepted by ParseFile and the CLI's directory walker.
var Extensions = []string{".json", ".yaml", ".yml"}

// IsReportFile reports whether a path looks like a report file.
func IsReportFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ParseFile reads and parses a report file, choosing the format by
// extension.
func ParseFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading report: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data, path)
	default:
		return ParseJSON(data, path)
	}
}

// ParseJSON validates data against the report schema and builds the node
// forest.
func ParseJSON(data []byte, path string) (*Report, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("parsing %s: not valid JSON", path)
	}

	if err := validateSchema(data, path); err != nil {
		return nil, err
	}

	doc := gjson.ParseBytes(data)

	r := &Report{
		Name:     doc.Get("name").String(),
		Path:     path,
		Duration: time.Duration(doc.Get("duration").Float() * float64(time.Millisecond)),
		Flags:    parseFlags(doc.Get("flags")),
	}

	doc.Get("nodes").ForEach(func(_, value gjson.Result) bool {
		r.Roots = append(r.Roots, parseNode(value))
		return true
	})
	return r, nil
}

func validateSchema(data []byte, path string) error {
	schemaLoader := gojsonschema.NewStringLoader(reportSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("validating %s: %w", path, err)
	}
	if result.Valid() {
		return nil
	}

	var problems []string
	for _, desc := range result.Errors() {
		problems = append(problems, desc.String())
	}
	return fmt.Errorf("invalid report %s: %s", path, strings.Join(problems, "; "))
}

func parseFlags(value gjson.Result) Flags {
	f := Flags{Enabled: true}
	if v := value.Get("enabled"); v.Exists() {
		f.Enabled = v.Bool()
	}
	f.Verbose = value.Get("verbose").Bool()
	return f
}

func parseNode(value gjson.Result) *spec.Node {
	n := &spec.Node{
		Identifier:    value.Get("id").String(),
		Kind:          spec.Kind(value.Get("kind").String()),
		Documentation: value.Get("doc").String(),
		Override:      value.Get("override").String(),
		Outcome:       spec.Outcome(value.Get("outcome").String()),
	}
	value.Get("children").ForEach(func(_, child gjson.Result) bool {
		n.Children = append(n.Children, parseNode(child))
		return true
	})
	return n
}
