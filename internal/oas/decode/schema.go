package decode

import (
	"errors"
	"fmt"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// DecodeSchema is the entry point for one schema node. The dispatch policy:
//
//  1. When the node declares a type field, the type-tagged path is committed;
//     its failures are final, composite keywords on the same node are ignored.
//  2. When no type field is present, the composite path is tried. Once a
//     composite keyword is found, that path's failures are final too.
//  3. When neither path applies (no type field, no composite keyword), the
//     combined failure carries both causes.
//
// Decoding is pure: the same node always yields the same result.
func DecodeSchema(node *jsontree.Node, path string) (oas.Schema, error) {
	if node == nil || node.Kind != jsontree.KindObject {
		return nil, malformed(path, "schema must be an object")
	}

	schema, typeErr := decodeTyped(node, path)
	if typeErr == nil {
		return schema, nil
	}
	if !errors.Is(typeErr, errNoTypeTag) {
		// A present type commits the decoder to the type-tagged path.
		return nil, typeErr
	}

	composite, compositeErr := decodeComposite(node, path)
	if compositeErr == nil {
		return composite, nil
	}
	if decodeErr, ok := oas.AsDecodeError(compositeErr); !ok || decodeErr.Code != oas.CodeNoCompositeKind {
		return nil, compositeErr
	}

	return nil, &oas.DecodeError{
		Code:    oas.CodeSchemaUndecodable,
		Path:    path,
		Message: fmt.Sprintf("not a type-tagged schema (%v) and not a composite schema (%v)", typeErr, compositeErr),
		Cause:   errors.Join(typeErr, compositeErr),
	}
}

// decodeRefOrSchema decodes a node that is either a $ref pointer or an inline
// schema. A $ref field wins over any sibling keys.
func decodeRefOrSchema(node *jsontree.Node, path string) (oas.RefOrSchema, error) {
	if node != nil && node.Kind == jsontree.KindObject {
		if refNode, ok := node.Field("$ref"); ok {
			refPath := joinPath(path, "$ref")
			if refNode.Kind != jsontree.KindString {
				return oas.RefOrSchema{}, malformed(refPath, "$ref must be a string")
			}
			if refNode.Str == "" {
				return oas.RefOrSchema{}, malformed(refPath, "$ref must not be empty")
			}
			return oas.RefOrSchema{Ref: refNode.Str}, nil
		}
	}

	schema, err := DecodeSchema(node, path)
	if err != nil {
		return oas.RefOrSchema{}, err
	}
	return oas.RefOrSchema{Schema: schema}, nil
}

// DecodeRefOrSchema exposes the reference-or-inline decode for the document
// layer.
func DecodeRefOrSchema(node *jsontree.Node, path string) (oas.RefOrSchema, error) {
	return decodeRefOrSchema(node, path)
}
