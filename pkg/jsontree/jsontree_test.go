package jsontree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFromJSON_PreservesMemberOrder(t *testing.T) {
	node, err := FromJSON([]byte(`{"b":1,"a":2,"c":3,"a":4}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if node.Kind != KindObject {
		t.Fatalf("expected object, got %s", node.Kind)
	}

	var names []string
	for _, member := range node.Members {
		names = append(names, member.Name)
	}
	want := []string{"b", "a", "c", "a"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("member order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON_Scalars(t *testing.T) {
	node, err := FromJSON([]byte(`{"s":"x","n":1.25,"b":true,"z":null,"items":[1,2]}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	s, _ := node.Field("s")
	if s.Kind != KindString || s.Str != "x" {
		t.Fatalf("unexpected string node: %+v", s)
	}

	n, _ := node.Field("n")
	value, err := n.Float64()
	if err != nil || value != 1.25 {
		t.Fatalf("unexpected number node: %v %v", value, err)
	}

	b, _ := node.Field("b")
	if b.Kind != KindBool || !b.Bool {
		t.Fatalf("unexpected bool node: %+v", b)
	}

	z, _ := node.Field("z")
	if z.Kind != KindNull {
		t.Fatalf("unexpected null node: %+v", z)
	}

	items, _ := node.Field("items")
	if items.Kind != KindArray || len(items.Items) != 2 {
		t.Fatalf("unexpected array node: %+v", items)
	}
}

func TestFromJSON_NumberLexemePreserved(t *testing.T) {
	node, err := FromJSON([]byte(`{"n":0.1000}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	n, _ := node.Field("n")
	if n.Num != "0.1000" {
		t.Fatalf("expected raw lexeme 0.1000, got %q", n.Num)
	}
}

func TestFromJSON_TrailingData(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a":1} {"b":2}`)); err == nil {
		t.Fatalf("expected error for trailing data")
	}
}

func TestFromJSON_Truncated(t *testing.T) {
	if _, err := FromJSON([]byte(`{"a":`)); err == nil {
		t.Fatalf("expected error for truncated input")
	}
}

func TestFromYAML_PreservesMemberOrder(t *testing.T) {
	payload := []byte("b: 1\na: two\nc:\n  - 1\n  - true\n")
	node, err := FromYAML(payload)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var names []string
	for _, member := range node.Members {
		names = append(names, member.Name)
	}
	want := []string{"b", "a", "c"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("member order mismatch (-want +got):\n%s", diff)
	}

	a, _ := node.Field("a")
	if a.Kind != KindString || a.Str != "two" {
		t.Fatalf("unexpected node for a: %+v", a)
	}
	c, _ := node.Field("c")
	if c.Kind != KindArray || len(c.Items) != 2 {
		t.Fatalf("unexpected node for c: %+v", c)
	}
	if c.Items[1].Kind != KindBool || !c.Items[1].Bool {
		t.Fatalf("unexpected bool item: %+v", c.Items[1])
	}
}

func TestFromYAML_Empty(t *testing.T) {
	if _, err := FromYAML(nil); err == nil {
		t.Fatalf("expected error for empty document")
	}
}

func TestParse_AcceptsBothFormats(t *testing.T) {
	fromJSON, err := Parse([]byte(`{"type":"string"}`))
	if err != nil {
		t.Fatalf("parse json: %v", err)
	}
	fromYAML, err := Parse([]byte("type: string\n"))
	if err != nil {
		t.Fatalf("parse yaml: %v", err)
	}
	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json and yaml trees differ (-json +yaml):\n%s", diff)
	}
}

func TestParse_RejectsEmptyInput(t *testing.T) {
	if _, err := Parse([]byte("   \n")); err == nil {
		t.Fatalf("expected error for blank input")
	}
}
