package oas

import "errors"

// Decode error codes. Exported consts keep matching logic out of error
// message strings.
const (
	// CodeEmptyObject flags an object that had to declare at least one field
	// but declared none (schema properties, discriminator mapping).
	CodeEmptyObject = "empty_object"

	// CodeInvalidKey flags a field name that failed key-level validation.
	CodeInvalidKey = "invalid_key"

	// CodeUnknownType flags a type field outside number, string, object, array.
	CodeUnknownType = "unknown_type"

	// CodeNoCompositeKind flags a composite decode attempt that found none of
	// oneOf, anyOf, allOf.
	CodeNoCompositeKind = "no_composite_kind"

	// CodeAmbiguousCompositeKind flags two or more composite keywords present
	// on the same node.
	CodeAmbiguousCompositeKind = "ambiguous_composite_kind"

	// CodeMissingField flags a required sub-field that was absent.
	CodeMissingField = "missing_field"

	// CodeMalformedField flags a sub-field whose shape could not be decoded.
	CodeMalformedField = "malformed_field"

	// CodeSchemaUndecodable is the combined failure raised after both the
	// type-tagged and the composite decode attempts failed.
	CodeSchemaUndecodable = "schema_undecodable"
)

// DecodeError is the value-level failure produced by every decode stage. Path
// is a JSON-Pointer-style locator into the source document so callers can find
// the offending node.
type DecodeError struct {
	Code    string
	Path    string
	Message string
	Cause   error
}

// Error renders "code at path: message".
func (e *DecodeError) Error() string {
	out := e.Code
	if e.Path != "" {
		out += " at " + e.Path
	}
	if e.Message != "" {
		out += ": " + e.Message
	}
	return out
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *DecodeError) Unwrap() error {
	return e.Cause
}

// AsDecodeError extracts the outermost DecodeError from an error chain.
func AsDecodeError(err error) (*DecodeError, bool) {
	if err == nil {
		return nil, false
	}
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return decodeErr, true
	}
	return nil, false
}
