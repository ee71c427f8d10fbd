package validation

import (
	"github.com/gchq/gaffer-experimental-sub000/schema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var typesRootProperties = []string{"types"}

// TypesResult is the outcome of validating a types schema. Types is only set
// when validation raised no notifications.
type TypesResult struct {
	Notifications *Notifications
	Types         *orderedmap.OrderedMap[string, *schema.Type]
}

func ValidateTypes(raw string) *TypesResult {
	result := &TypesResult{Notifications: NewNotifications()}
	notifications := result.Notifications

	if len(raw) == 0 {
		notifications.Append("Types Schema is empty")
		return result
	}

	value, err := schema.ParseValue([]byte(raw))
	if err != nil {
		notifications.Append("Types Schema is not valid JSON")
		return result
	}

	root := schema.Members(value)
	if invalid := invalidRootProperties(root, typesRootProperties); len(invalid) > 0 {
		notifications.Appendf("[%s] are invalid Types schema root properties", quoteJoin(invalid))
	}

	types := schema.Lookup(root, "types")
	if !types.Present() {
		notifications.Append("Types Schema does not contain property types")
		return result
	}

	if !types.IsObject() {
		notifications.Appendf("Types is a %s and not an object of types objects", types.TypeName())
		return result
	}

	parsed := orderedmap.New[string, *schema.Type]()
	for pair := schema.Members(types).Oldest(); pair != nil; pair = pair.Next() {
		t := schema.NewType(pair.Value)
		validateType(pair.Key, t, notifications)
		parsed.Set(pair.Key, t)
	}

	if notifications.IsEmpty() {
		result.Types = parsed
	}

	return result
}

//
// Type Validators

func validateType(name string, t *schema.Type, notifications *Notifications) {
	if t.Description.Present() && !t.Description.IsString() {
		notifications.Appendf("description in %s type is a %s, it needs to be a string", name, t.Description.TypeName())
	}

	if t.Class.Present() && !t.Class.IsString() {
		notifications.Appendf("class in %s type is a %s, it needs to be a string", name, t.Class.TypeName())
	}

	validateValidateFunctions(name, t.ValidateFunctions, notifications)
	validateFunctionRef(name, t.AggregateFunction, aggregateFunctionMessages, notifications)
	validateFunctionRef(name, t.Serialiser, serialiserMessages, notifications)
}

func validateValidateFunctions(name string, value schema.Value, notifications *Notifications) {
	if !value.Present() {
		return
	}

	if !value.IsArray() {
		notifications.Appendf("validateFunctions in %s type is a %s, it needs to be an Array of objects", name, value.TypeName())
		return
	}

	functions, err := value.Elements()
	if err != nil {
		// value is an array of a successfully parsed document
		panic("Unreachable!")
	}

	for _, function := range functions {
		if !function.IsObject() {
			notifications.Appendf("%s in validateFunctions in %s type is a %s. validateFunctions is an array of objects", function, name, function.TypeName())
			return
		}

		class := schema.NewFunctionRef(function).Class
		if !class.Present() {
			notifications.Appendf("validateFunctions in %s type doesnt have class", name)
			return
		}

		if !class.IsString() {
			notifications.Appendf("class in validateFunctions in %s is %s. Should be string", name, class.TypeName())
			return
		}
	}
}

// functionRefMessages are the templates reported for a field holding a single
// {"class": ...} object. The wording differs between fields and is relied on
// verbatim by consumers.
type functionRefMessages struct {
	notObject      string
	noClass        string
	classNotString string
}

var aggregateFunctionMessages = functionRefMessages{
	notObject:      "aggregateFunction in %s type is a %s, it needs to be an object",
	noClass:        "aggregateFunction in %s type doesnt have class",
	classNotString: "class in aggregateFunction in %s type is %s should be string",
}

var serialiserMessages = functionRefMessages{
	notObject:      "serialiser in %s type is a %s, it needs to be an object",
	noClass:        "serialiser in %s type doesnt have class",
	classNotString: "class in serialiser in %s type is a %s, should be a string",
}

func validateFunctionRef(name string, value schema.Value, messages functionRefMessages, notifications *Notifications) {
	if !value.Present() {
		return
	}

	if !value.IsObject() {
		notifications.Appendf(messages.notObject, name, value.TypeName())
		return
	}

	class := schema.NewFunctionRef(value).Class
	if !class.Present() {
		notifications.Appendf(messages.noClass, name)
		return
	}

	if !class.IsString() {
		notifications.Appendf(messages.classNotString, name, class.TypeName())
	}
}
