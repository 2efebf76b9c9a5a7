package oas

import (
	"fmt"
	"strings"
)

// Schema is the closed set of schema variants an OpenAPI schema node decodes
// into. Exactly one concrete variant sits behind the interface; consumers
// switch over the dynamic type.
type Schema interface {
	isSchema()

	// DebugString renders a compact single-line summary for logging without
	// dumping the whole tree.
	DebugString() string
}

// Property is one (name, value) pair of an object schema, in declaration
// order.
type Property struct {
	Name  PropertyName
	Value RefOrSchema
}

// ObjectSchema describes a JSON object shape.
//
// Names in Required are not cross-checked against Properties; a required name
// that never appears among the properties passes the decode. Known limitation.
type ObjectSchema struct {
	// Required holds the declared-required property names as a canonical set:
	// sorted lexicographically and deduplicated. Nil when absent; never empty
	// when present.
	Required []PropertyName

	// Properties preserves the declaration order of the source document and is
	// never empty. Duplicate names are kept as-is.
	Properties []Property
}

// ArraySchema describes a homogeneous array shape.
type ArraySchema struct {
	Items RefOrSchema
}

// NumberSchema describes a numeric leaf, optionally constrained to an enum.
type NumberSchema struct {
	// Enum is a canonical set: sorted ascending, deduplicated. Nil when
	// absent; never empty when present.
	Enum []float64
}

// StringSchema describes a string leaf, optionally constrained to an enum.
type StringSchema struct {
	// Enum is a canonical set: sorted lexicographically, deduplicated. Nil
	// when absent; never empty when present.
	Enum []string
}

// CompositeSchema describes a oneOf/anyOf/allOf combination of member
// schemas. Member order follows the source document; it governs downstream
// numbering of the alternatives.
type CompositeSchema struct {
	Schemas       []RefOrSchema
	Kind          CompositeSchemaKind
	Discriminator *Discriminator
}

func (ObjectSchema) isSchema()    {}
func (ArraySchema) isSchema()     {}
func (NumberSchema) isSchema()    {}
func (StringSchema) isSchema()    {}
func (CompositeSchema) isSchema() {}

// RefOrSchema is either a pointer to a schema defined elsewhere or an inline
// schema. Exactly one side is set.
type RefOrSchema struct {
	Ref    string
	Schema Schema
}

// IsRef reports whether the value is a reference rather than an inline schema.
func (r RefOrSchema) IsRef() bool {
	return r.Ref != ""
}

// DebugString summarises the reference or delegates to the inline schema.
func (r RefOrSchema) DebugString() string {
	if r.IsRef() {
		return fmt.Sprintf("ref=%s", r.Ref)
	}
	if r.Schema == nil {
		return "empty"
	}
	return r.Schema.DebugString()
}

// Discriminator carries the metadata guiding which composite member applies to
// a concrete value. Both fields are independently optional; an empty
// discriminator object is legal.
type Discriminator struct {
	PropertyName *PropertyName

	// Mapping, when present, is non-empty and preserves declaration order.
	Mapping []MappingEntry
}

// MappingEntry is one discriminator mapping pair.
type MappingEntry struct {
	Key   string
	Value PropertyName
}

// DebugString implementations keep log lines short; they intentionally avoid
// recursing into nested schemas.

func (s ObjectSchema) DebugString() string {
	summary := fmt.Sprintf("object,properties=%d", len(s.Properties))
	if len(s.Required) > 0 {
		summary += fmt.Sprintf(",required=%d", len(s.Required))
	}
	return summary
}

func (s ArraySchema) DebugString() string {
	return "array,items=" + s.Items.DebugString()
}

func (s NumberSchema) DebugString() string {
	if len(s.Enum) == 0 {
		return "number"
	}
	return fmt.Sprintf("number,enum=%d", len(s.Enum))
}

func (s StringSchema) DebugString() string {
	if len(s.Enum) == 0 {
		return "string"
	}
	return fmt.Sprintf("string,enum=[%s]", strings.Join(s.Enum, ","))
}

func (s CompositeSchema) DebugString() string {
	summary := fmt.Sprintf("%s,members=%d", s.Kind, len(s.Schemas))
	if s.Discriminator != nil {
		summary += ",discriminator=true"
	}
	return summary
}
