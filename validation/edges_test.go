package validation

import (
	"testing"

	"github.com/gchq/gaffer-experimental-sub000/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validEdges = `{
	"BasicEdge": {
		"source": "vertex",
		"destination": "vertex",
		"directed": "true",
		"properties": {"count": "count"},
		"description": "A basic edge"
	},
	"groupBy": []
}`

func TestValidateEdges(t *testing.T) {
	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "empty input is skipped", raw: ``, expected: ``},
		{name: "valid edges", raw: validEdges, expected: ``},
		{name: "invalid JSON", raw: `{"BasicEdge"`, expected: `Edges is not valid JSON`},
		{name: "string", raw: `"edges"`, expected: `Edges is type string and not an object of Edges objects`},
		{name: "boolean", raw: `false`, expected: `Edges is type boolean and not an object of Edges objects`},
		{name: "groupBy is not an edge", raw: `{"groupBy": {"not": "an edge"}}`, expected: ``},
		{
			name:     "edge missing every field",
			raw:      `{"BasicEdge": {}}`,
			expected: `BasicEdge edge is missing ["description", "source", "destination", "directed"]`,
		},
		{
			name:     "properties and groupBy are optional",
			raw:      `{"E": {"description": "d", "source": "a", "destination": "b"}}`,
			expected: `E edge is missing ["directed"]`,
		},
		{
			name:     "several edges",
			raw:      `{"B": {"source": "a"}, "groupBy": [], "A": {"description": "d", "source": "a", "destination": "b", "directed": "false"}, "C": []}`,
			expected: `B edge is missing ["description", "destination", "directed"], C edge is missing ["description", "source", "destination", "directed"]`,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ValidateEdges(testCase.raw).ErrorMessage())
		})
	}
}

func TestParseEdges(t *testing.T) {
	notifications, edgeMap := ParseEdges(validEdges)
	require.True(t, notifications.IsEmpty())
	require.NotNil(t, edgeMap)

	assert.Equal(t, 1, edgeMap.Edges.Len())
	_, ok := edgeMap.Edges.Get(schema.GroupByKey)
	assert.False(t, ok)
	assert.Equal(t, schema.Array, edgeMap.GroupBy.Kind)

	edge, ok := edgeMap.Edges.Get("BasicEdge")
	require.True(t, ok)
	assert.True(t, edge.IsDirected())

	_, edgeMap = ParseEdges(`"edges"`)
	assert.Nil(t, edgeMap)
}
