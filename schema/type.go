package schema

// Type is a reusable value type declared in a types schema. Every field is
// optional.
type Type struct {
	Class             Value
	Description       Value
	ValidateFunctions Value
	AggregateFunction Value
	Serialiser        Value
}

func NewType(v Value) *Type {
	fields := Members(v)

	return &Type{
		Class:             Lookup(fields, "class"),
		Description:       Lookup(fields, "description"),
		ValidateFunctions: Lookup(fields, "validateFunctions"),
		AggregateFunction: Lookup(fields, "aggregateFunction"),
		Serialiser:        Lookup(fields, "serialiser"),
	}
}

// FunctionRef names a function implementation by class, as used by
// validateFunctions, aggregateFunction and serialiser.
type FunctionRef struct {
	Class Value
}

func NewFunctionRef(v Value) *FunctionRef {
	return &FunctionRef{Class: Lookup(Members(v), "class")}
}
