package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/gchq/gaffer-experimental-sub000/schema"
	"github.com/gchq/gaffer-experimental-sub000/validation"
)

// Graph is the shape of an elements schema: the vertex types it mentions, the
// entity groups attached to them and the edge groups connecting them.
type Graph struct {
	visibility string
	vertices   []string
	entities   []entityNode
	edges      []edgeArrow
}

type entityNode struct {
	name   string
	vertex string
}

type edgeArrow struct {
	name        string
	source      string
	destination string
	directed    bool
}

func buildGraph(result *validation.ElementsResult) Graph {
	var g Graph
	seen := map[string]struct{}{}

	addVertex := func(v schema.Value) string {
		vertex := vertexName(v)
		if _, ok := seen[vertex]; !ok {
			seen[vertex] = struct{}{}
			g.vertices = append(g.vertices, vertex)
		}

		return vertex
	}

	if result.VisibilityProperty.Present() {
		g.visibility = vertexName(result.VisibilityProperty)
	}

	if result.Entities != nil {
		for pair := result.Entities.Oldest(); pair != nil; pair = pair.Next() {
			g.entities = append(g.entities, entityNode{
				name:   pair.Key,
				vertex: addVertex(pair.Value.Vertex),
			})
		}
	}

	if result.Edges != nil {
		for pair := result.Edges.Edges.Oldest(); pair != nil; pair = pair.Next() {
			g.edges = append(g.edges, edgeArrow{
				name:        pair.Key,
				source:      addVertex(pair.Value.Source),
				destination: addVertex(pair.Value.Destination),
				directed:    pair.Value.IsDirected(),
			})
		}
	}

	return g
}

func vertexName(v schema.Value) string {
	if text, ok := v.Text(); ok {
		return text
	}

	return v.String()
}

func display(w io.Writer, g Graph) {
	fmt.Fprintf(w, "digraph {\n")

	if g.visibility != "" {
		fmt.Fprintf(w, "\tlabel=%s\n", strconv.Quote("visibility: "+g.visibility))
	}

	for _, vertex := range g.vertices {
		fmt.Fprintf(w, "\t%s [label=%s, shape=ellipse]\n", nodeID("vertex", vertex), strconv.Quote(vertex))
	}

	for _, entity := range g.entities {
		fmt.Fprintf(w, "\t%s [label=%s, shape=box]\n", nodeID("entity", entity.name), strconv.Quote(entity.name))
	}

	fmt.Fprintf(w, "\n")

	for _, entity := range g.entities {
		fmt.Fprintf(w, "\t%s -> %s [style=dotted, arrowhead=none]\n", nodeID("entity", entity.name), nodeID("vertex", entity.vertex))
	}

	for _, edge := range g.edges {
		attributes := fmt.Sprintf("label=%s", strconv.Quote(edge.name))
		if !edge.directed {
			attributes += ", style=dashed, dir=none"
		}

		fmt.Fprintf(w, "\t%s -> %s [%s]\n", nodeID("vertex", edge.source), nodeID("vertex", edge.destination), attributes)
	}

	fmt.Fprintf(w, "}\n")
}

func nodeID(kind, name string) string {
	return strconv.Quote(kind + ":" + name)
}
