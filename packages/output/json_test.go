package output

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFormatterFlush(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatHeader("1.0.0")
	f.FormatRun(carRun())
	require.NoError(t, f.Flush(100*time.Millisecond))

	var out JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))

	assert.NotEmpty(t, out.RunID)
	assert.Equal(t, 2, out.Summary.Total)
	assert.Equal(t, 1, out.Summary.Passed)
	assert.Equal(t, 1, out.Summary.Failed)
	assert.Equal(t, float64(100), out.Duration)

	require.Len(t, out.Runs, 1)
	run := out.Runs[0]
	assert.Equal(t, "car.json", run.File)
	assert.Contains(t, run.Lines, "a Car")

	require.Len(t, run.Examples, 2)
	assert.Equal(t, []string{"a Car"}, run.Examples[0].Path)
	assert.Equal(t, "has engine", run.Examples[0].Phrase)
	assert.Equal(t, "passed", run.Examples[0].Outcome)
	assert.Equal(t, []string{"a Car", "with Full Tank"}, run.Examples[1].Path)
	assert.Equal(t, "failed", run.Examples[1].Outcome)
}
