package parser

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// Parser implements oas.Parser on top of the order-preserving value tree and
// the schema decoder.
type Parser struct {
	options oas.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ oas.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options oas.ParserOptions) oas.Parser {
	return &Parser{options: options}
}

// Parse normalises the payload (JSON or YAML) into a value tree and decodes
// the document model from it.
func (p *Parser) Parse(ctx context.Context, doc oas.Document) (oas.OpenAPI, error) {
	if err := ctx.Err(); err != nil {
		return oas.OpenAPI{}, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return oas.OpenAPI{}, errors.New("oas parser: document payload is empty")
	}

	if p.options.Preflight {
		if err := preflight(ctx, raw); err != nil {
			return oas.OpenAPI{}, err
		}
	}

	root, err := jsontree.Parse(raw)
	if err != nil {
		return oas.OpenAPI{}, fmt.Errorf("oas parser: load document: %w", err)
	}

	model, err := decodeDocument(ctx, root, p.options.ParallelDecode)
	if err != nil {
		return oas.OpenAPI{}, err
	}

	if len(model.Paths) == 0 && !p.options.AllowPartialDocuments {
		return oas.OpenAPI{}, errors.New("oas parser: document does not contain any paths")
	}

	return model, nil
}
