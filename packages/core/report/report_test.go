package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const carReportJSON = `{
  "name": "car acceptance suite",
  "duration": 42,
  "flags": { "enabled": true, "verbose": false },
  "nodes": [
    {
      "id": "DescribeCar",
      "kind": "suite",
      "doc": "a well-described car",
      "children": [
        { "id": "test_has_engine", "kind": "example", "outcome": "passed" },
        { "id": "it_pending", "kind": "example", "outcome": "skipped", "override": "still pending" }
      ]
    }
  ]
}`

func TestParseJSON(t *testing.T) {
	rep, err := ParseJSON([]byte(carReportJSON), "car.json")
	require.NoError(t, err)

	assert.Equal(t, "car acceptance suite", rep.Name)
	assert.Equal(t, "car.json", rep.Path)
	assert.Equal(t, 42*time.Millisecond, rep.Duration)
	assert.True(t, rep.Flags.Enabled)
	assert.False(t, rep.Flags.Verbose)
	assert.True(t, rep.ShouldFormat())

	require.Len(t, rep.Roots, 1)
	root := rep.Roots[0]
	assert.Equal(t, "DescribeCar", root.Identifier)
	assert.Equal(t, spec.KindSuite, root.Kind)
	assert.Equal(t, "a well-described car", root.Documentation)

	require.Len(t, root.Children, 2)
	assert.Equal(t, spec.OutcomePassed, root.Children[0].Outcome)
	assert.Equal(t, "still pending", root.Children[1].Override)
}

func TestParseJSONDefaults(t *testing.T) {
	rep, err := ParseJSON([]byte(`{"nodes": []}`), "empty.json")
	require.NoError(t, err)

	// Formatting is on unless the runner says otherwise.
	assert.True(t, rep.Flags.Enabled)
	assert.False(t, rep.Flags.Verbose)
	assert.Empty(t, rep.Roots)
}

func TestParseJSONVerboseBypassesFormatting(t *testing.T) {
	rep, err := ParseJSON([]byte(`{"flags": {"verbose": true}, "nodes": []}`), "v.json")
	require.NoError(t, err)
	assert.False(t, rep.ShouldFormat())
}

func TestParseJSONRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"missing nodes", `{"name": "x"}`},
		{"bad kind", `{"nodes": [{"id": "X", "kind": "module"}]}`},
		{"bad outcome", `{"nodes": [{"id": "t", "kind": "example", "outcome": "exploded"}]}`},
		{"unknown node field", `{"nodes": [{"id": "t", "kind": "example", "extra": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.data), "bad.json")
			assert.Error(t, err)
		})
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`
name: car acceptance suite
duration: 42
flags:
  enabled: true
nodes:
  - id: DescribeCar
    kind: suite
    children:
      - id: test_has_engine
        kind: example
        outcome: passed
`)

	rep, err := ParseYAML(data, "car.yaml")
	require.NoError(t, err)

	assert.Equal(t, "car acceptance suite", rep.Name)
	assert.Equal(t, 42*time.Millisecond, rep.Duration)
	require.Len(t, rep.Roots, 1)
	require.Len(t, rep.Roots[0].Children, 1)
	assert.Equal(t, spec.OutcomePassed, rep.Roots[0].Children[0].Outcome)
}

func TestParseYAMLFlagDefaults(t *testing.T) {
	rep, err := ParseYAML([]byte("nodes: []"), "x.yaml")
	require.NoError(t, err)
	assert.True(t, rep.Flags.Enabled)

	rep, err = ParseYAML([]byte("flags:\n  enabled: false\nnodes: []"), "x.yaml")
	require.NoError(t, err)
	assert.False(t, rep.Flags.Enabled)
}

func TestParseFileByExtension(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "report.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(carReportJSON), 0644))

	yamlPath := filepath.Join(dir, "report.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("name: yaml run\nnodes: []"), 0644))

	jsonRep, err := ParseFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "car acceptance suite", jsonRep.Name)

	yamlRep, err := ParseFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "yaml run", yamlRep.Name)

	_, err = ParseFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestIsReportFile(t *testing.T) {
	assert.True(t, IsReportFile("run.json"))
	assert.True(t, IsReportFile("run.yaml"))
	assert.True(t, IsReportFile("run.YML"))
	assert.False(t, IsReportFile("run.txt"))
	assert.False(t, IsReportFile("run"))
}
