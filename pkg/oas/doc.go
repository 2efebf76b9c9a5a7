// Package oas exposes the public surface of the OpenAPI model: the polymorphic
// schema variants, the document/loader/parser contracts, and the structured
// decode errors. Implementations live under internal/oas so parsing machinery
// and the kin-openapi preflight dependency stay hidden from consumers.
package oas
