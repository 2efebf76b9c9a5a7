package decode

import (
	"sort"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

func decodeStringSchema(node *jsontree.Node, path string) (oas.StringSchema, error) {
	enumNode, ok := node.Field("enum")
	if !ok {
		return oas.StringSchema{}, nil
	}

	enumPath := joinPath(path, "enum")
	if enumNode.Kind != jsontree.KindArray {
		return oas.StringSchema{}, malformed(enumPath, "enum must be an array")
	}
	if len(enumNode.Items) == 0 {
		return oas.StringSchema{}, malformed(enumPath, "enum must not be empty")
	}

	values := make([]string, 0, len(enumNode.Items))
	for idx, item := range enumNode.Items {
		if item.Kind != jsontree.KindString {
			return oas.StringSchema{}, malformed(joinPath(enumPath, itoa(idx)), "enum value must be a string")
		}
		values = append(values, item.Str)
	}
	sort.Strings(values)
	return oas.StringSchema{Enum: compactStrings(values)}, nil
}

func decodeNumberSchema(node *jsontree.Node, path string) (oas.NumberSchema, error) {
	enumNode, ok := node.Field("enum")
	if !ok {
		return oas.NumberSchema{}, nil
	}

	enumPath := joinPath(path, "enum")
	if enumNode.Kind != jsontree.KindArray {
		return oas.NumberSchema{}, malformed(enumPath, "enum must be an array")
	}
	if len(enumNode.Items) == 0 {
		return oas.NumberSchema{}, malformed(enumPath, "enum must not be empty")
	}

	values := make([]float64, 0, len(enumNode.Items))
	for idx, item := range enumNode.Items {
		value, err := item.Float64()
		if err != nil {
			return oas.NumberSchema{}, &oas.DecodeError{
				Code:    oas.CodeMalformedField,
				Path:    joinPath(enumPath, itoa(idx)),
				Message: "enum value must be a number",
				Cause:   err,
			}
		}
		values = append(values, value)
	}
	sort.Float64s(values)
	return oas.NumberSchema{Enum: compactFloats(values)}, nil
}

func decodeArraySchema(node *jsontree.Node, path string) (oas.ArraySchema, error) {
	itemsNode, ok := node.Field("items")
	if !ok {
		return oas.ArraySchema{}, &oas.DecodeError{
			Code:    oas.CodeMissingField,
			Path:    path,
			Message: "array schema must define items",
		}
	}
	items, err := decodeRefOrSchema(itemsNode, joinPath(path, "items"))
	if err != nil {
		return oas.ArraySchema{}, err
	}
	return oas.ArraySchema{Items: items}, nil
}

// compactStrings removes adjacent duplicates from a sorted slice.
func compactStrings(sorted []string) []string {
	out := sorted[:0]
	for idx, value := range sorted {
		if idx == 0 || value != sorted[idx-1] {
			out = append(out, value)
		}
	}
	return out
}

func compactFloats(sorted []float64) []float64 {
	out := sorted[:0]
	for idx, value := range sorted {
		if idx == 0 || value != sorted[idx-1] {
			out = append(out, value)
		}
	}
	return out
}
