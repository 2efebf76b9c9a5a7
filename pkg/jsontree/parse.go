package jsontree

import (
	"errors"
	"strings"
)

// Parse accepts either JSON or YAML and returns the Node tree. JSON is tried
// first so JSON documents keep their precise error messages; anything else
// falls back to the YAML parser, which also accepts JSON but with laxer
// diagnostics.
func Parse(data []byte) (*Node, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, errors.New("jsontree: document is empty")
	}

	if node, err := FromJSON(data); err == nil {
		return node, nil
	}

	node, err := FromYAML(data)
	if err != nil {
		return nil, errors.New("jsontree: document is neither valid JSON nor valid YAML")
	}
	return node, nil
}
