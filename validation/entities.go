package validation

import (
	"github.com/gchq/gaffer-experimental-sub000/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var entityMap = namedMap{
	title:    "Entities",
	contents: "Entity objects",
	element:  "entity",
}

// ValidateEntities checks the entities section of an elements schema. An empty
// string has nothing to validate.
func ValidateEntities(raw string) *Notifications {
	notifications, _ := ParseEntities(raw)
	return notifications
}

// ParseEntities validates raw and returns the entity definitions in document
// order. The map is nil when raw is empty, not JSON or not an object.
func ParseEntities(raw string) (*Notifications, *orderedmap.OrderedMap[string, *schema.Entity]) {
	notifications, entities, _ := validateNamedMap(raw, entityMap, schema.NewEntity)
	return notifications, entities
}
