package validation

import (
	"github.com/gchq/gaffer-experimental-sub000/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

type record interface {
	Missing() []string
}

// namedMap describes a JSON object mapping element names to element
// definitions, such as the entities or edges of an elements schema.
type namedMap struct {
	title    string
	contents string
	element  string
	skip     []string
}

func (m namedMap) skips(key string) bool {
	for _, s := range m.skip {
		if s == key {
			return true
		}
	}

	return false
}

// validateNamedMap reports every definition of raw that lacks a required field.
// The decoded definitions and the raw members are returned whenever raw is an
// object, even if some definitions are incomplete.
func validateNamedMap[T record](raw string, m namedMap, decode func(schema.Value) T) (*Notifications, *orderedmap.OrderedMap[string, T], *schema.Fields) {
	notifications := NewNotifications()
	if len(raw) == 0 {
		return notifications, nil, nil
	}

	value, err := schema.ParseValue([]byte(raw))
	if err != nil {
		notifications.Appendf("%s is not valid JSON", m.title)
		return notifications, nil, nil
	}

	if !value.IsObject() {
		notifications.Appendf("%s is type %s and not an object of %s", m.title, value.TypeName(), m.contents)
		return notifications, nil, nil
	}

	fields := schema.Members(value)
	records := orderedmap.New[string, T]()

	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		if m.skips(pair.Key) {
			continue
		}

		definition := decode(pair.Value)
		if missing := definition.Missing(); len(missing) > 0 {
			notifications.Appendf("%s %s is missing [%s]", pair.Key, m.element, quoteJoin(missing))
		}

		records.Set(pair.Key, definition)
	}

	return notifications, records, fields
}

// invalidRootProperties lists, in document order, the keys of root that are
// not in allowed.
func invalidRootProperties(root *schema.Fields, allowed []string) []string {
	var invalid []string

outer:
	for _, key := range schema.Keys(root) {
		for _, name := range allowed {
			if key == name {
				continue outer
			}
		}

		invalid = append(invalid, key)
	}

	return invalid
}
