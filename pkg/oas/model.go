package oas

// The top-level document model is a plain structural decode with no ambiguity;
// the interesting work lives in the schema variants.

// OpenAPI is the parsed root of a document.
type OpenAPI struct {
	// OpenAPI holds the declared spec version, e.g. "3.0.3".
	OpenAPI string

	Info Info

	// Paths preserves the declaration order of the source document.
	Paths Paths

	Components *Components
}

// Info carries the document metadata subset the model needs.
type Info struct {
	Title       string
	Version     string
	Description string
}

// Path is a route template key such as "/articles/{id}".
type Path string

// String returns the underlying route template.
func (p Path) String() string {
	return string(p)
}

// Paths is the ordered list of path items.
type Paths []PathItem

// Item returns the path item registered for the given route template.
func (p Paths) Item(path Path) (PathItem, bool) {
	for _, item := range p {
		if item.Path == path {
			return item, true
		}
	}
	return PathItem{}, false
}

// PathItem groups the operations declared under one path.
type PathItem struct {
	Path Path

	// Operations preserves declaration order.
	Operations []Operation
}

// Operation returns the operation for the given method.
func (p PathItem) Operation(method HTTPMethod) (Operation, bool) {
	for _, op := range p.Operations {
		if op.Method == method {
			return op, true
		}
	}
	return Operation{}, false
}

// Operation models one HTTP operation.
type Operation struct {
	Method      HTTPMethod
	ID          string
	Summary     string
	Description string

	// RequestBody is the schema of the preferred request media type, nil when
	// the operation declares no body.
	RequestBody *RefOrSchema

	// Responses preserves the declaration order of the status codes.
	Responses []ResponseEntry
}

// ResponseEntry pairs a status code with its body schema.
type ResponseEntry struct {
	Status string
	Schema RefOrSchema
}

// Components holds the reusable objects of a document. Only schemas are
// modelled.
type Components struct {
	// Schemas preserves declaration order.
	Schemas []NamedSchema
}

// Schema returns the named component schema.
func (c *Components) Schema(name string) (RefOrSchema, bool) {
	if c == nil {
		return RefOrSchema{}, false
	}
	for _, entry := range c.Schemas {
		if entry.Name == name {
			return entry.Schema, true
		}
	}
	return RefOrSchema{}, false
}

// NamedSchema is one entry of components.schemas.
type NamedSchema struct {
	Name   string
	Schema RefOrSchema
}

// HTTPMethod enumerates the operations a path item may declare.
type HTTPMethod int

const (
	MethodGet HTTPMethod = iota
	MethodPut
	MethodPost
	MethodDelete
	MethodPatch
	MethodHead
	MethodOptions
	MethodTrace
)

// AllHTTPMethods lists every HTTPMethod for table tests.
var AllHTTPMethods = []HTTPMethod{
	MethodGet, MethodPut, MethodPost, MethodDelete,
	MethodPatch, MethodHead, MethodOptions, MethodTrace,
}

var httpMethodWire = map[HTTPMethod]string{
	MethodGet:     "get",
	MethodPut:     "put",
	MethodPost:    "post",
	MethodDelete:  "delete",
	MethodPatch:   "patch",
	MethodHead:    "head",
	MethodOptions: "options",
	MethodTrace:   "trace",
}

var httpMethodByWire = map[string]HTTPMethod{
	"get":     MethodGet,
	"put":     MethodPut,
	"post":    MethodPost,
	"delete":  MethodDelete,
	"patch":   MethodPatch,
	"head":    MethodHead,
	"options": MethodOptions,
	"trace":   MethodTrace,
}

// String returns the lowercase wire form used as a path item key.
func (m HTTPMethod) String() string {
	if text, ok := httpMethodWire[m]; ok {
		return text
	}
	return "unknown"
}

// ParseHTTPMethod resolves a path item key to a method. Non-method keys such
// as "parameters" or vendor extensions return false.
func ParseHTTPMethod(text string) (HTTPMethod, bool) {
	m, ok := httpMethodByWire[text]
	return m, ok
}
