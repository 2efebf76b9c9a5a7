package decode

import (
	"fmt"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// field pairs a validated key with its decoded value, in declaration order.
type field[K, V any] struct {
	name  K
	value V
}

// decodeOrderedFields decodes every member of an object node through the
// supplied key and value decoders. The result keeps the input field order; no
// reordering, deduplication, or sorting happens here. An empty object fails
// with empty_object, an invalid field name with invalid_key.
func decodeOrderedFields[K, V any](
	node *jsontree.Node,
	path string,
	decodeKey func(string) (K, error),
	decodeValue func(*jsontree.Node, string) (V, error),
) ([]field[K, V], error) {
	if node == nil || node.Kind != jsontree.KindObject {
		return nil, &oas.DecodeError{
			Code:    oas.CodeMalformedField,
			Path:    path,
			Message: "expected an object",
		}
	}
	if len(node.Members) == 0 {
		return nil, &oas.DecodeError{
			Code:    oas.CodeEmptyObject,
			Path:    path,
			Message: "object must declare at least one field",
		}
	}

	out := make([]field[K, V], 0, len(node.Members))
	for _, member := range node.Members {
		key, err := decodeKey(member.Name)
		if err != nil {
			return nil, &oas.DecodeError{
				Code:    oas.CodeInvalidKey,
				Path:    joinPath(path, member.Name),
				Message: fmt.Sprintf("invalid field name %q", member.Name),
				Cause:   err,
			}
		}
		value, err := decodeValue(member.Value, joinPath(path, member.Name))
		if err != nil {
			return nil, err
		}
		out = append(out, field[K, V]{name: key, value: value})
	}
	return out, nil
}
