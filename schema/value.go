package schema

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
)

// Kind is the JSON kind of a value in a schema document.
type Kind int

const (
	Undefined Kind = iota
	String
	Number
	Boolean
	Null
	Array
	Object
)

var kindNames = map[Kind]string{
	Undefined: "undefined",
	String:    "string",
	Number:    "number",
	Boolean:   "boolean",
	Null:      "null",
	Array:     "array",
	Object:    "object",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Value is a single JSON value exactly as it appeared in a schema document. The
// zero value is an absent (undefined) value.
type Value struct {
	Raw  []byte
	Kind Kind
}

func (v *Value) UnmarshalJSON(b []byte) error {
	_, dataType, _, err := jsonparser.Get(b)
	if err != nil {
		return errors.Wrap(err, "jsonparser")
	}

	kind, ok := kindOf(dataType)
	if !ok {
		return errors.Errorf("unrecognized JSON value %q", b)
	}

	v.Raw = append([]byte(nil), b...)
	v.Kind = kind
	return nil
}

func kindOf(dataType jsonparser.ValueType) (Kind, bool) {
	switch dataType {
	case jsonparser.String:
		return String, true
	case jsonparser.Number:
		return Number, true
	case jsonparser.Boolean:
		return Boolean, true
	case jsonparser.Null:
		return Null, true
	case jsonparser.Array:
		return Array, true
	case jsonparser.Object:
		return Object, true
	}

	return Undefined, false
}

// Present reports whether the key holding this value existed in the document.
// An explicit null is present.
func (v Value) Present() bool {
	return v.Kind != Undefined
}

// TypeName is the runtime type name used in validation messages.
func (v Value) TypeName() string {
	return v.Kind.String()
}

func (v Value) IsString() bool { return v.Kind == String }
func (v Value) IsArray() bool  { return v.Kind == Array }
func (v Value) IsObject() bool { return v.Kind == Object }

// Text returns the decoded contents of a string value.
func (v Value) Text() (string, bool) {
	if v.Kind != String {
		return "", false
	}

	content, _, _, err := jsonparser.Get(v.Raw)
	if err != nil {
		return "", false
	}

	text, err := jsonparser.ParseString(content)
	if err != nil {
		// lone surrogate escapes, which jsonparser rejects
		if err := json.Unmarshal(v.Raw, &text); err != nil {
			return "", false
		}
	}

	return text, true
}

// Elements decodes the items of an array value.
func (v Value) Elements() ([]Value, error) {
	if v.Kind != Array {
		return nil, errors.Errorf("value is a %s, not an array", v.TypeName())
	}

	var values []Value
	if err := json.Unmarshal(v.Raw, &values); err != nil {
		return nil, errors.Wrap(err, "decode array")
	}

	return values, nil
}

// String renders the value the way it is interpolated into a message: strings
// without quotes, numbers in their shortest form, arrays as their comma
// separated items, objects as "[object Object]".
func (v Value) String() string {
	switch v.Kind {
	case Undefined:
		return "undefined"
	case Number:
		return formatNumber(string(v.Raw))
	case String:
		text, _ := v.Text()
		return text
	case Object:
		return "[object Object]"
	case Array:
		values, err := v.Elements()
		if err != nil {
			return string(v.Raw)
		}

		parts := make([]string, 0, len(values))
		for _, value := range values {
			if value.Kind == Null {
				parts = append(parts, "")
				continue
			}

			parts = append(parts, value.String())
		}

		return strings.Join(parts, ",")
	}

	return string(v.Raw)
}

// formatNumber renders a JSON number as 1e2 -> "100", 1.0 -> "1", -0 -> "0".
// Magnitudes of 1e21 and above or below 1e-6 use exponent notation without a
// padded exponent, e.g. "1e+21" and "1.5e-7".
func formatNumber(raw string) string {
	f, err := strconv.ParseFloat(raw, 64)
	if math.IsInf(f, 1) {
		return "Infinity"
	}
	if math.IsInf(f, -1) {
		return "-Infinity"
	}
	if err != nil {
		return raw
	}

	if f == 0 {
		return "0"
	}

	if abs := math.Abs(f); abs < 1e21 && abs >= 1e-6 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(f, 'e', -1, 64), "e")
	sign, digits := exponent[:1], strings.TrimLeft(exponent[1:], "0")
	return mantissa + "e" + sign + digits
}
