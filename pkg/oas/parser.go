package oas

import "context"

// Parser turns a loaded Document into the typed model. Implementations live
// under internal/oas.
type Parser interface {
	Parse(ctx context.Context, doc Document) (OpenAPI, error)
}

// ParserOptions exposes the parsing toggles.
type ParserOptions struct {
	// Preflight runs the raw document through kin-openapi's full-document
	// validation before the structural decode. The structural decode only
	// checks shape and schema-level rules; preflight catches spec-level
	// problems outside that scope. Off by default.
	Preflight bool

	// ParallelDecode fans the decode of components.schemas out across
	// goroutines. Schema nodes decode independently of their siblings, so the
	// result is identical to the sequential walk.
	ParallelDecode bool

	// AllowPartialDocuments gates loading component-only inputs that declare
	// no paths.
	AllowPartialDocuments bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithPreflight toggles kin-openapi document validation ahead of the decode.
func WithPreflight(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.Preflight = enabled
	}
}

// WithParallelDecode toggles concurrent decoding of component schemas.
func WithParallelDecode(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.ParallelDecode = enabled
	}
}

// WithPartialDocuments toggles support for component-only documents.
func WithPartialDocuments(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.AllowPartialDocuments = enabled
	}
}

// NewParserOptions applies ParserOption functions and returns the resulting
// configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	cfg := ParserOptions{
		Preflight:             false,
		ParallelDecode:        true,
		AllowPartialDocuments: false,
	}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}

// Construction helpers live in the top-level oasmodel package to avoid import
// cycles.
