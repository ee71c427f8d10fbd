package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const roadTraffic = `{
	"entities": {
		"Cardinality": {"description": "d", "vertex": "anyVertex", "properties": {}, "groupBy": []}
	},
	"edges": {
		"RoadUse": {"description": "d", "source": "junction", "destination": "junction", "directed": "true"},
		"RoadHasJunction": {"description": "d", "source": "road", "destination": "junction", "directed": "false"},
		"groupBy": []
	}
}`

func TestRun(t *testing.T) {
	t.Run("digraph", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(roadTraffic, false, &buf))

		expected := "digraph {\n" +
			"\t\"vertex:anyVertex\" [label=\"anyVertex\", shape=ellipse]\n" +
			"\t\"vertex:junction\" [label=\"junction\", shape=ellipse]\n" +
			"\t\"vertex:road\" [label=\"road\", shape=ellipse]\n" +
			"\t\"entity:Cardinality\" [label=\"Cardinality\", shape=box]\n" +
			"\n" +
			"\t\"entity:Cardinality\" -> \"vertex:anyVertex\" [style=dotted, arrowhead=none]\n" +
			"\t\"vertex:junction\" -> \"vertex:junction\" [label=\"RoadUse\"]\n" +
			"\t\"vertex:road\" -> \"vertex:junction\" [label=\"RoadHasJunction\", style=dashed, dir=none]\n" +
			"}\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("edges only", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(`{"edges": {"E": {"description": "d", "source": "a", "destination": "b", "directed": "true"}}}`, false, &buf))

		assert.Contains(t, buf.String(), "\"vertex:a\" -> \"vertex:b\" [label=\"E\"]\n")
		assert.NotContains(t, buf.String(), "entity:")
	})

	t.Run("visibility property", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(`{"edges": {"E": {"description": "d", "source": "a", "destination": "b", "directed": "true"}}, "visibilityProperty": "visibility"}`, false, &buf))

		assert.Contains(t, buf.String(), "digraph {\n\tlabel=\"visibility: visibility\"\n")
	})

	t.Run("invalid schema", func(t *testing.T) {
		var buf bytes.Buffer
		err := run(`{"entities": {"Cardinality": {}}}`, false, &buf)

		assert.EqualError(t, err, `invalid elements schema: Cardinality entity is missing ["description", "vertex", "properties", "groupBy"]`)
		assert.Empty(t, buf.String())
	})
}
