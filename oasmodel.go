// Package oasmodel parses OpenAPI documents (YAML or JSON) into a
// strongly-typed, validated in-memory model. The heart of the module is the
// polymorphic schema decoder in internal/oas/decode; this package wires the
// loader, parser, and decoder together behind small constructors.
package oasmodel

import (
	"github.com/goliatone/go-oasmodel/internal/oas/decode"
	internalLoader "github.com/goliatone/go-oasmodel/internal/oas/loader"
	internalParser "github.com/goliatone/go-oasmodel/internal/oas/parser"
	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...oas.LoaderOption) oas.Loader {
	cfg := oas.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...oas.ParserOption) oas.Parser {
	cfg := oas.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// DecodeSchema decodes a single raw schema node into its concrete variant.
func DecodeSchema(node *jsontree.Node) (oas.Schema, error) {
	return decode.DecodeSchema(node, "#")
}

// DecodeSchemaBytes parses a standalone JSON or YAML schema payload and
// decodes it. Convenience wrapper for tools and tests.
func DecodeSchemaBytes(data []byte) (oas.Schema, error) {
	node, err := jsontree.Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeSchema(node)
}
