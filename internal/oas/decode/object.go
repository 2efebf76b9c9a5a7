package decode

import (
	"errors"
	"sort"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

func decodeObjectSchema(node *jsontree.Node, path string) (oas.ObjectSchema, error) {
	propsNode, ok := node.Field("properties")
	if !ok {
		return oas.ObjectSchema{}, &oas.DecodeError{
			Code:    oas.CodeMissingField,
			Path:    path,
			Message: "object schema must define properties",
		}
	}

	fields, err := decodeOrderedFields(propsNode, joinPath(path, "properties"), decodePropertyName, decodeRefOrSchema)
	if err != nil {
		return oas.ObjectSchema{}, err
	}
	properties := make([]oas.Property, 0, len(fields))
	for _, f := range fields {
		properties = append(properties, oas.Property{Name: f.name, Value: f.value})
	}

	required, err := decodeRequired(node, path)
	if err != nil {
		return oas.ObjectSchema{}, err
	}

	return oas.ObjectSchema{Required: required, Properties: properties}, nil
}

// decodeRequired reads the optional required list into a canonical set:
// sorted, deduplicated. The names are deliberately not checked against the
// declared properties.
func decodeRequired(node *jsontree.Node, path string) ([]oas.PropertyName, error) {
	requiredNode, ok := node.Field("required")
	if !ok {
		return nil, nil
	}

	requiredPath := joinPath(path, "required")
	if requiredNode.Kind != jsontree.KindArray {
		return nil, malformed(requiredPath, "required must be an array")
	}
	if len(requiredNode.Items) == 0 {
		return nil, malformed(requiredPath, "required must not be empty")
	}

	names := make([]oas.PropertyName, 0, len(requiredNode.Items))
	for idx, item := range requiredNode.Items {
		if item.Kind != jsontree.KindString {
			return nil, malformed(joinPath(requiredPath, itoa(idx)), "required entry must be a string")
		}
		name, err := decodePropertyName(item.Str)
		if err != nil {
			return nil, &oas.DecodeError{
				Code:    oas.CodeInvalidKey,
				Path:    joinPath(requiredPath, itoa(idx)),
				Message: "invalid property name",
				Cause:   err,
			}
		}
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool { return names[i].Less(names[j]) })
	out := names[:0]
	for idx, name := range names {
		if idx == 0 || name != names[idx-1] {
			out = append(out, name)
		}
	}
	return out, nil
}

func decodePropertyName(raw string) (oas.PropertyName, error) {
	if raw == "" {
		return "", errors.New("property name must not be empty")
	}
	return oas.PropertyName(raw), nil
}
