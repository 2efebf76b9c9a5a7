package parser

import (
	"context"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// preflight runs the raw document through kin-openapi's full-document
// validation. The structural decode that follows only checks shape and
// schema-level rules; preflight catches spec-level problems outside that
// scope (broken references, invalid info blocks, and so on).
func preflight(ctx context.Context, raw []byte) error {
	loader := &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}

	spec, err := loader.LoadFromData(raw)
	if err != nil {
		return fmt.Errorf("oas parser: preflight load: %w", err)
	}
	if err := spec.Validate(ctx, openapi3.DisableExamplesValidation()); err != nil {
		return fmt.Errorf("oas parser: preflight validate: %w", err)
	}
	return nil
}
