package schema

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Fields holds the members of a JSON object in document order. A key that
// occurs twice keeps its first position and its last value.
type Fields = orderedmap.OrderedMap[string, Value]

// ParseValue decodes raw JSON text. The error is non-nil exactly when the text
// is not valid JSON.
func ParseValue(raw []byte) (Value, error) {
	var value Value
	if err := json.Unmarshal(raw, &value); err != nil {
		return Value{}, err
	}

	return value, nil
}

// Fields decodes the members of an object value. Keys are decoded by the same
// decoder that accepted the document, so keys holding invalid UTF-8 or lone
// surrogate escapes become U+FFFD instead of failing the decode.
func (v Value) Fields() (*Fields, error) {
	if v.Kind != Object {
		return nil, errors.Errorf("value is a %s, not an object", v.TypeName())
	}

	decoder := json.NewDecoder(bytes.NewReader(v.Raw))
	if _, err := decoder.Token(); err != nil {
		return nil, errors.Wrap(err, "decode object")
	}

	fields := orderedmap.New[string, Value]()
	for decoder.More() {
		token, err := decoder.Token()
		if err != nil {
			return nil, errors.Wrap(err, "decode key")
		}

		key, ok := token.(string)
		if !ok {
			return nil, errors.Errorf("unexpected object key %v", token)
		}

		var value Value
		if err := decoder.Decode(&value); err != nil {
			return nil, errors.Wrapf(err, "decode value of %q", key)
		}

		fields.Set(key, value)
	}

	return fields, nil
}

// Keys lists the keys of fields in document order.
func Keys(fields *Fields) []string {
	keys := make([]string, 0, fields.Len())
	for pair := fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}

	return keys
}

// Lookup returns the value held under key, or an undefined value.
func Lookup(fields *Fields, key string) Value {
	if fields == nil {
		return Value{}
	}

	value, _ := fields.Get(key)
	return value
}

// Members is Fields for values that may not be objects. Anything other than
// an object has no members.
func Members(v Value) *Fields {
	if v.Kind != Object {
		return orderedmap.New[string, Value]()
	}

	fields, err := v.Fields()
	if err != nil {
		// objects only come from a successful decode of the same bytes
		panic("Unreachable!")
	}

	return fields
}

func missing(names []string, values ...Value) []string {
	var absent []string
	for i, value := range values {
		if !value.Present() {
			absent = append(absent, names[i])
		}
	}

	return absent
}
