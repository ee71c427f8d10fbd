package schema

// Entity is a group of elements attached to a single vertex.
type Entity struct {
	Description Value
	Vertex      Value
	Properties  Value
	GroupBy     Value
}

// entityFields are the fields every entity must declare, in the order they are
// reported.
var entityFields = []string{"description", "vertex", "properties", "groupBy"}

func NewEntity(v Value) *Entity {
	fields := Members(v)

	return &Entity{
		Description: Lookup(fields, "description"),
		Vertex:      Lookup(fields, "vertex"),
		Properties:  Lookup(fields, "properties"),
		GroupBy:     Lookup(fields, "groupBy"),
	}
}

// Missing lists the required fields absent from the entity.
func (e *Entity) Missing() []string {
	return missing(entityFields, e.Description, e.Vertex, e.Properties, e.GroupBy)
}
