package output

import (
	"testing"

	"github.com/abdul-hamid-achik/respec/packages/core/consolidate"
	"github.com/abdul-hamid-achik/respec/packages/core/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenRebuildsAncestorChains(t *testing.T) {
	blocks := []consolidate.Block{
		{
			Headers: []consolidate.Header{{Phrase: "a Car", Depth: 0}},
			Depth:   1,
			Example: consolidate.Example{Phrase: "has engine", Outcome: spec.OutcomePassed},
		},
		{
			Headers: []consolidate.Header{{Phrase: "with Full Tank", Depth: 1}},
			Depth:   2,
			Example: consolidate.Example{Phrase: "drive", Outcome: spec.OutcomeFailed},
		},
		{
			// Back at suite level: no new headers, shorter depth.
			Depth:   1,
			Example: consolidate.Example{Phrase: "honks", Outcome: spec.OutcomePassed},
		},
	}

	flat := flatten(blocks)
	require.Len(t, flat, 3)

	assert.Equal(t, []string{"a Car"}, flat[0].path)
	assert.Equal(t, []string{"a Car", "with Full Tank"}, flat[1].path)
	assert.Equal(t, []string{"a Car"}, flat[2].path)
	assert.Equal(t, "honks", flat[2].phrase)
}

func TestFlattenHeaderReplacementAtDepth(t *testing.T) {
	blocks := []consolidate.Block{
		{
			Headers: []consolidate.Header{
				{Phrase: "a Car", Depth: 0},
				{Phrase: "with Full Tank", Depth: 1},
			},
			Depth:   2,
			Example: consolidate.Example{Phrase: "a", Outcome: spec.OutcomePassed},
		},
		{
			Headers: []consolidate.Header{{Phrase: "without Fuel", Depth: 1}},
			Depth:   2,
			Example: consolidate.Example{Phrase: "b", Outcome: spec.OutcomePassed},
		},
	}

	flat := flatten(blocks)
	require.Len(t, flat, 2)
	assert.Equal(t, []string{"a Car", "with Full Tank"}, flat[0].path)
	assert.Equal(t, []string{"a Car", "without Fuel"}, flat[1].path)
}
