package decode

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// decodeComposite resolves which of oneOf/anyOf/allOf the node declares and
// decodes the member list plus the optional discriminator. Exactly one of the
// three keywords may be present.
func decodeComposite(node *jsontree.Node, path string) (oas.CompositeSchema, error) {
	var found []oas.CompositeSchemaKind
	for _, member := range node.Members {
		if kind, ok := oas.ParseCompositeSchemaKind(member.Name); ok {
			found = append(found, kind)
		}
	}

	switch len(found) {
	case 1:
		// resolved
	case 0:
		return oas.CompositeSchema{}, &oas.DecodeError{
			Code:    oas.CodeNoCompositeKind,
			Path:    path,
			Message: "none of the composite keywords oneOf, anyOf, allOf is present",
		}
	default:
		return oas.CompositeSchema{}, &oas.DecodeError{
			Code:    oas.CodeAmbiguousCompositeKind,
			Path:    path,
			Message: fmt.Sprintf("expected exactly one of oneOf, anyOf, allOf but found %s", kindList(found)),
		}
	}

	kind := found[0]
	membersNode, _ := node.Field(kind.String())
	membersPath := joinPath(path, kind.String())
	if membersNode.Kind != jsontree.KindArray {
		return oas.CompositeSchema{}, malformed(membersPath, kind.String()+" must be an array")
	}
	if len(membersNode.Items) == 0 {
		return oas.CompositeSchema{}, malformed(membersPath, kind.String()+" must include at least one schema")
	}

	schemas := make([]oas.RefOrSchema, 0, len(membersNode.Items))
	for idx, item := range membersNode.Items {
		member, err := decodeRefOrSchema(item, joinPath(membersPath, itoa(idx)))
		if err != nil {
			return oas.CompositeSchema{}, err
		}
		schemas = append(schemas, member)
	}

	discriminator, err := decodeOptionalDiscriminator(node, path)
	if err != nil {
		return oas.CompositeSchema{}, err
	}

	return oas.CompositeSchema{Schemas: schemas, Kind: kind, Discriminator: discriminator}, nil
}

func decodeOptionalDiscriminator(node *jsontree.Node, path string) (*oas.Discriminator, error) {
	discNode, ok := node.Field("discriminator")
	if !ok {
		return nil, nil
	}

	discPath := joinPath(path, "discriminator")
	if discNode.Kind != jsontree.KindObject {
		return nil, malformed(discPath, "discriminator must be an object")
	}

	// Both fields are independently optional; an empty object is legal.
	disc := &oas.Discriminator{}

	if nameNode, ok := discNode.Field("propertyName"); ok {
		namePath := joinPath(discPath, "propertyName")
		if nameNode.Kind != jsontree.KindString {
			return nil, malformed(namePath, "propertyName must be a string")
		}
		name, err := decodePropertyName(nameNode.Str)
		if err != nil {
			return nil, &oas.DecodeError{
				Code:    oas.CodeInvalidKey,
				Path:    namePath,
				Message: "invalid property name",
				Cause:   err,
			}
		}
		disc.PropertyName = &name
	}

	if mappingNode, ok := discNode.Field("mapping"); ok {
		entries, err := decodeOrderedFields(
			mappingNode,
			joinPath(discPath, "mapping"),
			decodeMappingKey,
			decodeMappingValue,
		)
		if err != nil {
			return nil, err
		}
		mapping := make([]oas.MappingEntry, 0, len(entries))
		for _, entry := range entries {
			mapping = append(mapping, oas.MappingEntry{Key: entry.name, Value: entry.value})
		}
		disc.Mapping = mapping
	}

	return disc, nil
}

func decodeMappingKey(raw string) (string, error) {
	if raw == "" {
		return "", fmt.Errorf("mapping key must not be empty")
	}
	return raw, nil
}

func decodeMappingValue(node *jsontree.Node, path string) (oas.PropertyName, error) {
	if node == nil || node.Kind != jsontree.KindString {
		return "", malformed(path, "mapping value must be a string")
	}
	name, err := decodePropertyName(node.Str)
	if err != nil {
		return "", &oas.DecodeError{
			Code:    oas.CodeInvalidKey,
			Path:    path,
			Message: "invalid property name",
			Cause:   err,
		}
	}
	return name, nil
}

func kindList(kinds []oas.CompositeSchemaKind) string {
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, kind.String())
	}
	return strings.Join(names, ", ")
}
