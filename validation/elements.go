package validation

import (
	"github.com/gchq/gaffer-experimental-sub000/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var elementsRootProperties = []string{"entities", "edges", "visibilityProperty"}

// ElementsResult is the outcome of validating an elements schema. Entities
// and Edges are only set when their section was present and raised no
// notifications.
type ElementsResult struct {
	Notifications      *Notifications
	Entities           *orderedmap.OrderedMap[string, *schema.Entity]
	Edges              *schema.EdgeMap
	VisibilityProperty schema.Value
}

func ValidateElements(raw string) *ElementsResult {
	result := &ElementsResult{Notifications: NewNotifications()}

	if len(raw) == 0 {
		result.Notifications.Append("Elements Schema is empty")
		return result
	}

	value, err := schema.ParseValue([]byte(raw))
	if err != nil {
		result.Notifications.Append("Elements Schema is not valid JSON")
		return result
	}

	root := schema.Members(value)

	edges := schema.Lookup(root, "edges")
	if edges.Present() {
		notifications, edgeMap := ParseEdges(string(edges.Raw))
		if notifications.IsEmpty() {
			result.Edges = edgeMap
		}

		result.Notifications.Concat(notifications)
	}

	entities := schema.Lookup(root, "entities")
	if entities.Present() {
		notifications, entityMap := ParseEntities(string(entities.Raw))
		if notifications.IsEmpty() {
			result.Entities = entityMap
		}

		result.Notifications.Concat(notifications)
	}

	if !entities.Present() && !edges.Present() {
		result.Notifications.Append("Elements Schema must contain entities or edges")
	}

	if invalid := invalidRootProperties(root, elementsRootProperties); len(invalid) > 0 {
		result.Notifications.Appendf("[%s] are invalid Elements schema root properties", quoteJoin(invalid))
	}

	result.VisibilityProperty = schema.Lookup(root, "visibilityProperty")
	return result
}
