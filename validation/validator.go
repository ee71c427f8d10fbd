package validation

import (
	"sort"

	"github.com/gchq/gaffer-experimental-sub000/assets"
	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// DocumentValidator validates the raw text of one kind of schema document.
type DocumentValidator func(raw string) *Notifications

// Validator runs the schema validators and, when constructed with JSON Schema
// support, checks documents that pass them against the bundled JSON Schemas.
type Validator struct {
	elementsSchema     *gojsonschema.Schema
	typesSchema        *gojsonschema.Schema
	documentValidators map[string]DocumentValidator
}

func NewValidator(useJSONSchema bool) (*Validator, error) {
	validator := &Validator{}

	if useJSONSchema {
		elementsSchema, err := loadSchema("elements.schema.json")
		if err != nil {
			return nil, err
		}

		typesSchema, err := loadSchema("types.schema.json")
		if err != nil {
			return nil, err
		}

		validator.elementsSchema = elementsSchema
		validator.typesSchema = typesSchema
	}

	validator.documentValidators = validator.setupDocumentValidators()
	return validator, nil
}

func (v *Validator) setupDocumentValidators() map[string]DocumentValidator {
	return map[string]DocumentValidator{
		"elements": func(raw string) *Notifications { return v.ValidateElements(raw).Notifications },
		"types":    func(raw string) *Notifications { return v.ValidateTypes(raw).Notifications },
		"entities": ValidateEntities,
		"edges":    ValidateEdges,
	}
}

// Kinds lists the document kinds understood by Validate.
func (v *Validator) Kinds() []string {
	kinds := make([]string, 0, len(v.documentValidators))
	for kind := range v.documentValidators {
		kinds = append(kinds, kind)
	}

	sort.Strings(kinds)
	return kinds
}

// Validate validates raw as a document of the given kind.
func (v *Validator) Validate(kind, raw string) (*Notifications, error) {
	f, ok := v.documentValidators[kind]
	if !ok {
		return nil, errors.Errorf("unknown document kind %q", kind)
	}

	return f(raw), nil
}

func (v *Validator) ValidateElements(raw string) *ElementsResult {
	result := ValidateElements(raw)
	if result.Notifications.IsEmpty() && !v.validateSchema(v.elementsSchema, raw, result.Notifications) {
		result.Entities = nil
		result.Edges = nil
	}

	return result
}

func (v *Validator) ValidateTypes(raw string) *TypesResult {
	result := ValidateTypes(raw)
	if result.Notifications.IsEmpty() && !v.validateSchema(v.typesSchema, raw, result.Notifications) {
		result.Types = nil
	}

	return result
}

//
// Helpers

func (v *Validator) validateSchema(schema *gojsonschema.Schema, raw string, notifications *Notifications) bool {
	if schema == nil {
		return true
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		notifications.Appendf("failed schema validation: %s", err)
		return false
	}

	for _, desc := range result.Errors() {
		notifications.Appendf("%s: %s", desc.Field(), desc.Description())
	}

	return result.Valid()
}

func loadSchema(name string) (*gojsonschema.Schema, error) {
	content, err := assets.Asset(name)
	if err != nil {
		return nil, err
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(content))
	if err != nil {
		return nil, errors.Wrapf(err, "compile %s", name)
	}

	return schema, nil
}
