package decode

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// errNoTypeTag signals that a node carries no type field at all. The façade
// treats it as the cue to try the composite path; every other failure of the
// type-tagged path is final.
var errNoTypeTag = errors.New("schema does not declare a type")

// decodeTyped routes a schema node by its type tag to the matching variant
// decoder.
func decodeTyped(node *jsontree.Node, path string) (oas.Schema, error) {
	typeNode, ok := node.Field("type")
	if !ok {
		return nil, errNoTypeTag
	}
	if typeNode.Kind != jsontree.KindString {
		return nil, malformed(joinPath(path, "type"), "type must be a string")
	}

	schemaType, ok := oas.ParseSchemaType(typeNode.Str)
	if !ok {
		return nil, &oas.DecodeError{
			Code:    oas.CodeUnknownType,
			Path:    joinPath(path, "type"),
			Message: fmt.Sprintf("unrecognized schema type %q, expected one of number, string, object, array", typeNode.Str),
		}
	}

	var (
		schema oas.Schema
		err    error
	)
	switch schemaType {
	case oas.TypeObject:
		schema, err = decodeObjectSchema(node, path)
	case oas.TypeArray:
		schema, err = decodeArraySchema(node, path)
	case oas.TypeNumber:
		schema, err = decodeNumberSchema(node, path)
	case oas.TypeString:
		schema, err = decodeStringSchema(node, path)
	default:
		// Unreachable while the wire table stays closed.
		err = malformed(joinPath(path, "type"), "unhandled schema type")
	}
	if err != nil {
		return nil, err
	}
	return schema, nil
}
