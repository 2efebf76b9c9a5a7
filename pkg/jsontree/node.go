package jsontree

import (
	"fmt"
	"strconv"
)

// Kind identifies the shape of a Node.
type Kind int

const (
	KindInvalid Kind = iota
	KindObject
	KindArray
	KindString
	KindNumber
	KindBool
	KindNull
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	default:
		return "invalid"
	}
}

// Member is a single field of an object node. Members appear in the order they
// were declared in the source document.
type Member struct {
	Name  string
	Value *Node
}

// Node is one value in the parsed tree. Only the fields matching Kind carry
// meaning; the rest stay at their zero value.
type Node struct {
	Kind Kind

	// Str holds the value for KindString nodes.
	Str string

	// Num holds the raw number lexeme for KindNumber nodes so no precision is
	// lost before the caller decides how to interpret it.
	Num string

	// Bool holds the value for KindBool nodes.
	Bool bool

	// Members holds object fields in declaration order. Duplicate names are
	// preserved as-is.
	Members []Member

	// Items holds array elements in declaration order.
	Items []*Node
}

// Field returns the value of the first member with the given name.
func (n *Node) Field(name string) (*Node, bool) {
	if n == nil || n.Kind != KindObject {
		return nil, false
	}
	for _, m := range n.Members {
		if m.Name == name {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether the object declares a member with the given name.
func (n *Node) Has(name string) bool {
	_, ok := n.Field(name)
	return ok
}

// Float64 interprets a number node as a float64.
func (n *Node) Float64() (float64, error) {
	if n == nil {
		return 0, fmt.Errorf("jsontree: node is nil, not a number")
	}
	if n.Kind != KindNumber {
		return 0, fmt.Errorf("jsontree: node is %s, not a number", n.Kind)
	}
	value, err := strconv.ParseFloat(n.Num, 64)
	if err != nil {
		return 0, fmt.Errorf("jsontree: parse number %q: %w", n.Num, err)
	}
	return value, nil
}
