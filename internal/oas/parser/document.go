package parser

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/goliatone/go-oasmodel/internal/oas/decode"
	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// requestMediaTypes orders the request body media types by preference.
var requestMediaTypes = []string{
	"application/json",
	"application/x-www-form-urlencoded",
	"multipart/form-data",
}

func decodeDocument(ctx context.Context, root *jsontree.Node, parallel bool) (oas.OpenAPI, error) {
	if root == nil || root.Kind != jsontree.KindObject {
		return oas.OpenAPI{}, fmt.Errorf("oas parser: document root must be an object")
	}

	model := oas.OpenAPI{}

	if versionNode, ok := root.Field("openapi"); ok && versionNode.Kind == jsontree.KindString {
		model.OpenAPI = versionNode.Str
	}
	if infoNode, ok := root.Field("info"); ok {
		info, err := decodeInfo(infoNode)
		if err != nil {
			return oas.OpenAPI{}, err
		}
		model.Info = info
	}

	if pathsNode, ok := root.Field("paths"); ok {
		paths, err := decodePaths(pathsNode)
		if err != nil {
			return oas.OpenAPI{}, err
		}
		model.Paths = paths
	}

	if componentsNode, ok := root.Field("components"); ok {
		components, err := decodeComponents(ctx, componentsNode, parallel)
		if err != nil {
			return oas.OpenAPI{}, err
		}
		model.Components = components
	}

	return model, nil
}

func decodeInfo(node *jsontree.Node) (oas.Info, error) {
	if node.Kind != jsontree.KindObject {
		return oas.Info{}, fmt.Errorf("oas parser: info must be an object")
	}
	info := oas.Info{}
	if title, ok := node.Field("title"); ok && title.Kind == jsontree.KindString {
		info.Title = title.Str
	}
	if version, ok := node.Field("version"); ok && version.Kind == jsontree.KindString {
		info.Version = version.Str
	}
	if description, ok := node.Field("description"); ok && description.Kind == jsontree.KindString {
		info.Description = description.Str
	}
	return info, nil
}

func decodePaths(node *jsontree.Node) (oas.Paths, error) {
	if node.Kind != jsontree.KindObject {
		return nil, fmt.Errorf("oas parser: paths must be an object")
	}

	paths := make(oas.Paths, 0, len(node.Members))
	for _, member := range node.Members {
		item, err := decodePathItem(member.Value, member.Name)
		if err != nil {
			return nil, err
		}
		paths = append(paths, item)
	}
	return paths, nil
}

func decodePathItem(node *jsontree.Node, path string) (oas.PathItem, error) {
	if node == nil || node.Kind != jsontree.KindObject {
		return oas.PathItem{}, fmt.Errorf("oas parser: path item %q must be an object", path)
	}

	item := oas.PathItem{Path: oas.Path(path)}
	for _, member := range node.Members {
		method, ok := oas.ParseHTTPMethod(member.Name)
		if !ok {
			// parameters, summary, vendor extensions and the like.
			continue
		}
		op, err := decodeOperation(member.Value, method, path)
		if err != nil {
			return oas.PathItem{}, err
		}
		item.Operations = append(item.Operations, op)
	}
	return item, nil
}

func decodeOperation(node *jsontree.Node, method oas.HTTPMethod, path string) (oas.Operation, error) {
	if node == nil || node.Kind != jsontree.KindObject {
		return oas.Operation{}, fmt.Errorf("oas parser: operation %s %s must be an object", method, path)
	}

	op := oas.Operation{Method: method}
	if id, ok := node.Field("operationId"); ok && id.Kind == jsontree.KindString {
		op.ID = id.Str
	}
	if summary, ok := node.Field("summary"); ok && summary.Kind == jsontree.KindString {
		op.Summary = summary.Str
	}
	if description, ok := node.Field("description"); ok && description.Kind == jsontree.KindString {
		op.Description = description.Str
	}

	basePath := "#/paths/" + escapeJSONPointer(path) + "/" + method.String()

	if bodyNode, ok := node.Field("requestBody"); ok {
		schema, ok, err := extractContentSchema(bodyNode, basePath+"/requestBody")
		if err != nil {
			return oas.Operation{}, err
		}
		if ok {
			op.RequestBody = &schema
		}
	}

	if responsesNode, ok := node.Field("responses"); ok {
		if responsesNode.Kind != jsontree.KindObject {
			return oas.Operation{}, fmt.Errorf("oas parser: responses of %s %s must be an object", method, path)
		}
		for _, response := range responsesNode.Members {
			schema, ok, err := extractContentSchema(response.Value, basePath+"/responses/"+response.Name)
			if err != nil {
				return oas.Operation{}, err
			}
			if !ok {
				continue
			}
			op.Responses = append(op.Responses, oas.ResponseEntry{Status: response.Name, Schema: schema})
		}
	}

	return op, nil
}

// extractContentSchema digs through a requestBody/response node into its
// content map and decodes the schema of the preferred media type. Nodes
// without a schema (description-only responses) report ok=false.
func extractContentSchema(node *jsontree.Node, path string) (oas.RefOrSchema, bool, error) {
	if node == nil || node.Kind != jsontree.KindObject {
		return oas.RefOrSchema{}, false, nil
	}
	contentNode, ok := node.Field("content")
	if !ok || contentNode.Kind != jsontree.KindObject {
		return oas.RefOrSchema{}, false, nil
	}

	mediaNode := pickMediaType(contentNode)
	if mediaNode == nil {
		return oas.RefOrSchema{}, false, nil
	}
	schemaNode, ok := mediaNode.Field("schema")
	if !ok {
		return oas.RefOrSchema{}, false, nil
	}

	schema, err := decode.DecodeRefOrSchema(schemaNode, path+"/schema")
	if err != nil {
		return oas.RefOrSchema{}, false, err
	}
	return schema, true, nil
}

func escapeJSONPointer(value string) string {
	replacer := strings.NewReplacer("~", "~0", "/", "~1")
	return replacer.Replace(value)
}

func pickMediaType(contentNode *jsontree.Node) *jsontree.Node {
	for _, preferred := range requestMediaTypes {
		if media, ok := contentNode.Field(preferred); ok && media.Kind == jsontree.KindObject {
			return media
		}
	}
	for _, member := range contentNode.Members {
		if member.Value != nil && member.Value.Kind == jsontree.KindObject {
			return member.Value
		}
	}
	return nil
}

func decodeComponents(ctx context.Context, node *jsontree.Node, parallel bool) (*oas.Components, error) {
	if node.Kind != jsontree.KindObject {
		return nil, fmt.Errorf("oas parser: components must be an object")
	}

	schemasNode, ok := node.Field("schemas")
	if !ok {
		return &oas.Components{}, nil
	}
	if schemasNode.Kind != jsontree.KindObject {
		return nil, fmt.Errorf("oas parser: components.schemas must be an object")
	}

	members := schemasNode.Members
	schemas := make([]oas.NamedSchema, len(members))

	decodeOne := func(idx int) error {
		member := members[idx]
		schema, err := decode.DecodeRefOrSchema(member.Value, "#/components/schemas/"+member.Name)
		if err != nil {
			return err
		}
		schemas[idx] = oas.NamedSchema{Name: member.Name, Schema: schema}
		return nil
	}

	// Schema nodes decode independently of their siblings, so the fan-out is
	// observably identical to the sequential walk.
	if parallel && len(members) > 1 {
		eg, _ := errgroup.WithContext(ctx)
		for idx := range members {
			eg.Go(func() error { return decodeOne(idx) })
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	} else {
		for idx := range members {
			if err := decodeOne(idx); err != nil {
				return nil, err
			}
		}
	}

	return &oas.Components{Schemas: schemas}, nil
}
