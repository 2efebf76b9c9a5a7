package decode

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-oasmodel/pkg/jsontree"
	"github.com/goliatone/go-oasmodel/pkg/oas"
)

func mustNode(t *testing.T, payload string) *jsontree.Node {
	t.Helper()
	node, err := jsontree.FromJSON([]byte(payload))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return node
}

func decodeOK(t *testing.T, payload string) oas.Schema {
	t.Helper()
	schema, err := DecodeSchema(mustNode(t, payload), "#")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return schema
}

func decodeFail(t *testing.T, payload string) *oas.DecodeError {
	t.Helper()
	_, err := DecodeSchema(mustNode(t, payload), "#")
	if err == nil {
		t.Fatalf("expected decode of %s to fail", payload)
	}
	decodeErr, ok := oas.AsDecodeError(err)
	if !ok {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	return decodeErr
}

func TestDecodeSchema_TypeDispatchObject(t *testing.T) {
	schema := decodeOK(t, `{"type":"object","properties":{"x":{"type":"string"}}}`)

	want := oas.ObjectSchema{
		Properties: []oas.Property{
			{Name: "x", Value: oas.RefOrSchema{Schema: oas.StringSchema{}}},
		},
	}
	if diff := cmp.Diff(oas.Schema(want), schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_Deterministic(t *testing.T) {
	payload := `{
		"type":"object",
		"required":["b","a"],
		"properties":{
			"b":{"type":"number","enum":[2,1]},
			"a":{"oneOf":[{"type":"string"},{"$ref":"#/components/schemas/Other"}]}
		}
	}`
	first := decodeOK(t, payload)
	second := decodeOK(t, payload)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("two decodes of the same node differ (-first +second):\n%s", diff)
	}
}

func TestDecodeSchema_PropertyOrderPreserved(t *testing.T) {
	schema := decodeOK(t, `{"type":"object","properties":{"a":{"type":"string"},"b":{"type":"number"},"c":{"type":"string"}}}`)

	object, ok := schema.(oas.ObjectSchema)
	if !ok {
		t.Fatalf("expected ObjectSchema, got %T", schema)
	}
	var names []oas.PropertyName
	for _, property := range object.Properties {
		names = append(names, property.Name)
	}
	want := []oas.PropertyName{"a", "b", "c"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Fatalf("property order mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_DuplicatePropertyNamesKept(t *testing.T) {
	schema := decodeOK(t, `{"type":"object","properties":{"a":{"type":"string"},"a":{"type":"number"}}}`)
	object := schema.(oas.ObjectSchema)
	if len(object.Properties) != 2 {
		t.Fatalf("expected both duplicate properties, got %d", len(object.Properties))
	}
}

func TestDecodeSchema_EmptyPropertiesRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"object","properties":{}}`)
	if decodeErr.Code != oas.CodeEmptyObject {
		t.Fatalf("expected %s, got %s", oas.CodeEmptyObject, decodeErr.Code)
	}
	if decodeErr.Path != "#/properties" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_MissingPropertiesRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"object"}`)
	if decodeErr.Code != oas.CodeMissingField {
		t.Fatalf("expected %s, got %s", oas.CodeMissingField, decodeErr.Code)
	}
}

func TestDecodeSchema_RequiredCanonicalSet(t *testing.T) {
	schema := decodeOK(t, `{"type":"object","required":["b","a","b"],"properties":{"a":{"type":"string"}}}`)
	object := schema.(oas.ObjectSchema)

	want := []oas.PropertyName{"a", "b"}
	if diff := cmp.Diff(want, object.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_RequiredNotCrossValidated(t *testing.T) {
	// Names in required need not appear among the properties.
	schema := decodeOK(t, `{"type":"object","required":["ghost"],"properties":{"a":{"type":"string"}}}`)
	object := schema.(oas.ObjectSchema)
	if len(object.Required) != 1 || object.Required[0] != "ghost" {
		t.Fatalf("unexpected required set: %v", object.Required)
	}
}

func TestDecodeSchema_RequiredEmptyArrayRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"object","required":[],"properties":{"a":{"type":"string"}}}`)
	if decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected %s, got %s", oas.CodeMalformedField, decodeErr.Code)
	}
}

func TestDecodeSchema_UnknownTypeDoesNotFallBack(t *testing.T) {
	// Even with a valid composite keyword next to it, a present type commits
	// the decoder to the type-tagged path.
	decodeErr := decodeFail(t, `{"type":"bool","oneOf":[{"type":"string"}]}`)
	if decodeErr.Code != oas.CodeUnknownType {
		t.Fatalf("expected %s, got %s", oas.CodeUnknownType, decodeErr.Code)
	}
	if !strings.Contains(decodeErr.Message, `"bool"`) {
		t.Fatalf("expected offending text in message, got %q", decodeErr.Message)
	}
}

func TestDecodeSchema_TypeWinsOverCompositeKeywords(t *testing.T) {
	schema := decodeOK(t, `{"type":"string","oneOf":[{"type":"number"}]}`)
	if _, ok := schema.(oas.StringSchema); !ok {
		t.Fatalf("expected StringSchema, got %T", schema)
	}
}

func TestDecodeSchema_CompositeOneOf(t *testing.T) {
	schema := decodeOK(t, `{"oneOf":[{"type":"string"},{"type":"number"}]}`)

	want := oas.CompositeSchema{
		Schemas: []oas.RefOrSchema{
			{Schema: oas.StringSchema{}},
			{Schema: oas.NumberSchema{}},
		},
		Kind: oas.OneOf,
	}
	if diff := cmp.Diff(oas.Schema(want), schema); diff != "" {
		t.Fatalf("schema mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_CompositeMemberOrderPreserved(t *testing.T) {
	schema := decodeOK(t, `{"anyOf":[{"$ref":"#/a"},{"$ref":"#/b"},{"$ref":"#/c"}]}`)
	composite := schema.(oas.CompositeSchema)

	var refs []string
	for _, member := range composite.Schemas {
		refs = append(refs, member.Ref)
	}
	want := []string{"#/a", "#/b", "#/c"}
	if diff := cmp.Diff(want, refs); diff != "" {
		t.Fatalf("member order mismatch (-want +got):\n%s", diff)
	}
	if composite.Kind != oas.AnyOf {
		t.Fatalf("expected anyOf, got %s", composite.Kind)
	}
}

func TestDecodeSchema_AmbiguousCompositeKind(t *testing.T) {
	decodeErr := decodeFail(t, `{"oneOf":[{"type":"string"}],"anyOf":[{"type":"number"}]}`)
	if decodeErr.Code != oas.CodeAmbiguousCompositeKind {
		t.Fatalf("expected %s, got %s", oas.CodeAmbiguousCompositeKind, decodeErr.Code)
	}
	// The message enumerates what was found, in declaration order.
	if !strings.Contains(decodeErr.Message, "oneOf, anyOf") {
		t.Fatalf("expected found kinds in message, got %q", decodeErr.Message)
	}
}

func TestDecodeSchema_EmptyNodeCombinedFailure(t *testing.T) {
	decodeErr := decodeFail(t, `{"description":"no type, no composite"}`)
	if decodeErr.Code != oas.CodeSchemaUndecodable {
		t.Fatalf("expected %s, got %s", oas.CodeSchemaUndecodable, decodeErr.Code)
	}
	if !strings.Contains(decodeErr.Error(), oas.CodeNoCompositeKind) {
		t.Fatalf("expected combined failure to mention %s, got %q", oas.CodeNoCompositeKind, decodeErr.Error())
	}
	if !strings.Contains(decodeErr.Message, "type") {
		t.Fatalf("expected combined failure to mention the type attempt, got %q", decodeErr.Message)
	}
}

func TestDecodeSchema_CompositeEmptyMemberListRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"allOf":[]}`)
	if decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected %s, got %s", oas.CodeMalformedField, decodeErr.Code)
	}
	if decodeErr.Path != "#/allOf" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_DiscriminatorDecoded(t *testing.T) {
	schema := decodeOK(t, `{
		"oneOf":[{"$ref":"#/a"},{"$ref":"#/b"}],
		"discriminator":{"propertyName":"petType","mapping":{"dog":"Dog","cat":"Cat"}}
	}`)
	composite := schema.(oas.CompositeSchema)

	if composite.Discriminator == nil {
		t.Fatalf("expected discriminator")
	}
	if composite.Discriminator.PropertyName == nil || *composite.Discriminator.PropertyName != "petType" {
		t.Fatalf("unexpected propertyName: %v", composite.Discriminator.PropertyName)
	}
	want := []oas.MappingEntry{
		{Key: "dog", Value: "Dog"},
		{Key: "cat", Value: "Cat"},
	}
	if diff := cmp.Diff(want, composite.Discriminator.Mapping); diff != "" {
		t.Fatalf("mapping mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_EmptyDiscriminatorObjectLegal(t *testing.T) {
	schema := decodeOK(t, `{"oneOf":[{"type":"string"}],"discriminator":{}}`)
	composite := schema.(oas.CompositeSchema)
	if composite.Discriminator == nil {
		t.Fatalf("expected empty discriminator to be kept")
	}
	if composite.Discriminator.PropertyName != nil || composite.Discriminator.Mapping != nil {
		t.Fatalf("expected both fields absent: %+v", composite.Discriminator)
	}
}

func TestDecodeSchema_EmptyDiscriminatorMappingRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"oneOf":[{"type":"string"}],"discriminator":{"mapping":{}}}`)
	if decodeErr.Code != oas.CodeEmptyObject {
		t.Fatalf("expected %s, got %s", oas.CodeEmptyObject, decodeErr.Code)
	}
	if decodeErr.Path != "#/discriminator/mapping" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_StringEnumCanonicalSet(t *testing.T) {
	schema := decodeOK(t, `{"type":"string","enum":["b","a","b"]}`)
	stringSchema := schema.(oas.StringSchema)

	want := []string{"a", "b"}
	if diff := cmp.Diff(want, stringSchema.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_NumberEnumCanonicalSet(t *testing.T) {
	schema := decodeOK(t, `{"type":"number","enum":[3,1,2,1]}`)
	numberSchema := schema.(oas.NumberSchema)

	want := []float64{1, 2, 3}
	if diff := cmp.Diff(want, numberSchema.Enum); diff != "" {
		t.Fatalf("enum mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeSchema_EnumAbsentMeansNil(t *testing.T) {
	if schema := decodeOK(t, `{"type":"string"}`); schema.(oas.StringSchema).Enum != nil {
		t.Fatalf("expected nil enum")
	}
	if schema := decodeOK(t, `{"type":"number"}`); schema.(oas.NumberSchema).Enum != nil {
		t.Fatalf("expected nil enum")
	}
}

func TestDecodeSchema_EmptyEnumRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"string","enum":[]}`)
	if decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected %s, got %s", oas.CodeMalformedField, decodeErr.Code)
	}
}

func TestDecodeSchema_MixedEnumRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"string","enum":["a",1]}`)
	if decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected %s, got %s", oas.CodeMalformedField, decodeErr.Code)
	}
	if decodeErr.Path != "#/enum/1" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_ArrayRequiresItems(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"array"}`)
	if decodeErr.Code != oas.CodeMissingField {
		t.Fatalf("expected %s, got %s", oas.CodeMissingField, decodeErr.Code)
	}
}

func TestDecodeSchema_ArrayItemsRef(t *testing.T) {
	schema := decodeOK(t, `{"type":"array","items":{"$ref":"#/components/schemas/Article"}}`)
	arraySchema := schema.(oas.ArraySchema)
	if !arraySchema.Items.IsRef() || arraySchema.Items.Ref != "#/components/schemas/Article" {
		t.Fatalf("unexpected items: %+v", arraySchema.Items)
	}
}

func TestDecodeSchema_NestedFailureCarriesPath(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"object","properties":{"x":{"type":"array"}}}`)
	if decodeErr.Code != oas.CodeMissingField {
		t.Fatalf("expected %s, got %s", oas.CodeMissingField, decodeErr.Code)
	}
	if decodeErr.Path != "#/properties/x" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_InvalidTypeKindRejected(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":1}`)
	if decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected %s, got %s", oas.CodeMalformedField, decodeErr.Code)
	}
	if decodeErr.Path != "#/type" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}

func TestDecodeSchema_NonObjectNodeRejected(t *testing.T) {
	node := &jsontree.Node{Kind: jsontree.KindString, Str: "not a schema"}
	if _, err := DecodeSchema(node, "#"); err == nil {
		t.Fatalf("expected error for non-object node")
	}
}

func TestDecodeRefOrSchema_RefWins(t *testing.T) {
	ref, err := DecodeRefOrSchema(mustNode(t, `{"$ref":"#/components/schemas/A","type":"string"}`), "#")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !ref.IsRef() || ref.Ref != "#/components/schemas/A" {
		t.Fatalf("unexpected result: %+v", ref)
	}
	if ref.Schema != nil {
		t.Fatalf("expected no inline schema alongside a ref")
	}
}

func TestDecodeRefOrSchema_EmptyRefRejected(t *testing.T) {
	_, err := DecodeRefOrSchema(mustNode(t, `{"$ref":""}`), "#")
	decodeErr, ok := oas.AsDecodeError(err)
	if !ok || decodeErr.Code != oas.CodeMalformedField {
		t.Fatalf("expected malformed_field, got %v", err)
	}
}

func TestDecodeSchema_EscapedPointerSegments(t *testing.T) {
	decodeErr := decodeFail(t, `{"type":"object","properties":{"a/b":{"type":"array"}}}`)
	if decodeErr.Path != "#/properties/a~1b" {
		t.Fatalf("unexpected path %q", decodeErr.Path)
	}
}
