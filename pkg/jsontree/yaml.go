package jsontree

import (
	"errors"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// FromYAML parses a YAML payload into a Node tree. yaml.Node keeps mapping
// keys in declaration order, so the conversion preserves it for free.
func FromYAML(data []byte) (*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsontree: parse yaml: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, errors.New("jsontree: document is empty")
	}
	return fromYAMLNode(doc.Content[0])
}

func fromYAMLNode(n *yaml.Node) (*Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, errors.New("jsontree: document is empty")
		}
		return fromYAMLNode(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("jsontree: unresolved alias at line %d", n.Line)
		}
		return fromYAMLNode(n.Alias)
	case yaml.MappingNode:
		node := &Node{Kind: KindObject}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode := n.Content[i]
			if keyNode.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("jsontree: mapping key at line %d is not a scalar", keyNode.Line)
			}
			value, err := fromYAMLNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			node.Members = append(node.Members, Member{Name: keyNode.Value, Value: value})
		}
		return node, nil
	case yaml.SequenceNode:
		node := &Node{Kind: KindArray}
		for _, item := range n.Content {
			converted, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			node.Items = append(node.Items, converted)
		}
		return node, nil
	case yaml.ScalarNode:
		return fromYAMLScalar(n)
	default:
		return nil, fmt.Errorf("jsontree: unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*Node, error) {
	switch n.Tag {
	case "!!str":
		return &Node{Kind: KindString, Str: n.Value}, nil
	case "!!int", "!!float":
		return &Node{Kind: KindNumber, Num: n.Value}, nil
	case "!!bool":
		value, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("jsontree: parse bool %q at line %d: %w", n.Value, n.Line, err)
		}
		return &Node{Kind: KindBool, Bool: value}, nil
	case "!!null":
		return &Node{Kind: KindNull}, nil
	default:
		// Timestamps and custom tags degrade to their string form.
		return &Node{Kind: KindString, Str: n.Value}, nil
	}
}
