package oas

// PropertyName identifies one field of an object schema. The wrapper keeps
// property names from mixing with plain strings and carries the lexicographic
// ordering used for deterministic set representations.
type PropertyName string

// String returns the underlying name.
func (p PropertyName) String() string {
	return string(p)
}

// Less orders property names lexicographically by their underlying value.
func (p PropertyName) Less(other PropertyName) bool {
	return p < other
}

// SchemaType enumerates the closed set of type-tagged schema variants.
type SchemaType int

const (
	TypeNumber SchemaType = iota
	TypeString
	TypeObject
	TypeArray
)

// AllSchemaTypes lists every SchemaType. Tests assert the wire tables below
// are total and bijective over this slice.
var AllSchemaTypes = []SchemaType{TypeNumber, TypeString, TypeObject, TypeArray}

// schemaTypeWire is the explicit variant-to-wire-text table. The wire text is
// the lowercase variant name; spelling it out avoids a runtime string
// transform that is easy to get subtly wrong.
var schemaTypeWire = map[SchemaType]string{
	TypeNumber: "number",
	TypeString: "string",
	TypeObject: "object",
	TypeArray:  "array",
}

var schemaTypeByWire = map[string]SchemaType{
	"number": TypeNumber,
	"string": TypeString,
	"object": TypeObject,
	"array":  TypeArray,
}

// String returns the wire representation of the type.
func (t SchemaType) String() string {
	if text, ok := schemaTypeWire[t]; ok {
		return text
	}
	return "unknown"
}

// ParseSchemaType resolves the wire text of a type tag.
func ParseSchemaType(text string) (SchemaType, bool) {
	t, ok := schemaTypeByWire[text]
	return t, ok
}

// CompositeSchemaKind enumerates the composite keywords a schema may use.
type CompositeSchemaKind int

const (
	OneOf CompositeSchemaKind = iota
	AnyOf
	AllOf
)

// AllCompositeSchemaKinds lists every CompositeSchemaKind for table tests.
var AllCompositeSchemaKinds = []CompositeSchemaKind{OneOf, AnyOf, AllOf}

var compositeKindWire = map[CompositeSchemaKind]string{
	OneOf: "oneOf",
	AnyOf: "anyOf",
	AllOf: "allOf",
}

var compositeKindByWire = map[string]CompositeSchemaKind{
	"oneOf": OneOf,
	"anyOf": AnyOf,
	"allOf": AllOf,
}

// String returns the camelCase keyword used in source documents.
func (k CompositeSchemaKind) String() string {
	if text, ok := compositeKindWire[k]; ok {
		return text
	}
	return "unknown"
}

// ParseCompositeSchemaKind resolves a top-level field name to a composite
// kind. Non-composite field names return false.
func ParseCompositeSchemaKind(text string) (CompositeSchemaKind, bool) {
	k, ok := compositeKindByWire[text]
	return k, ok
}
