package validation

import (
	"github.com/gchq/gaffer-experimental-sub000/schema"
)

var edgeMap = namedMap{
	title:    "Edges",
	contents: "Edges objects",
	element:  "edge",
	skip:     []string{schema.GroupByKey},
}

// ValidateEdges checks the edges section of an elements schema. An empty
// string has nothing to validate.
func ValidateEdges(raw string) *Notifications {
	notifications, _ := ParseEdges(raw)
	return notifications
}

// ParseEdges validates raw and returns its edge definitions along with the
// map-level groupBy value.
func ParseEdges(raw string) (*Notifications, *schema.EdgeMap) {
	notifications, edges, fields := validateNamedMap(raw, edgeMap, schema.NewEdge)
	if edges == nil {
		return notifications, nil
	}

	return notifications, &schema.EdgeMap{
		Edges:   edges,
		GroupBy: schema.Lookup(fields, schema.GroupByKey),
	}
}
