package schema

import orderedmap "github.com/wk8/go-ordered-map/v2"

// GroupByKey is the key of an edge map that holds the map-level groupBy hint
// rather than an edge.
const GroupByKey = "groupBy"

// Edge is a group of elements connecting a source and a destination vertex.
type Edge struct {
	Description Value
	Source      Value
	Destination Value
	Directed    Value
	Properties  Value
	GroupBy     Value
}

// edgeFields are the fields every edge must declare, in the order they are
// reported.
var edgeFields = []string{"description", "source", "destination", "directed"}

func NewEdge(v Value) *Edge {
	fields := Members(v)

	return &Edge{
		Description: Lookup(fields, "description"),
		Source:      Lookup(fields, "source"),
		Destination: Lookup(fields, "destination"),
		Directed:    Lookup(fields, "directed"),
		Properties:  Lookup(fields, "properties"),
		GroupBy:     Lookup(fields, "groupBy"),
	}
}

// Missing lists the required fields absent from the edge. Properties are
// optional on edges.
func (e *Edge) Missing() []string {
	return missing(edgeFields, e.Description, e.Source, e.Destination, e.Directed)
}

// IsDirected reports whether the edge declares directed as "true".
func (e *Edge) IsDirected() bool {
	text, ok := e.Directed.Text()
	return ok && text == "true"
}

// EdgeMap is the edges section of an elements schema.
type EdgeMap struct {
	Edges   *orderedmap.OrderedMap[string, *Edge]
	GroupBy Value
}
