package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
)

const contactSchema = `{
  "type": "object",
  "properties": {
    "name": {"type": "string"},
    "address": {
      "type": "object",
      "properties": {"city": {"type": "string"}}
    }
  }
}`

func TestValidateUISchema_NestedLayoutsResolve(t *testing.T) {
	ui := `{
  "type": "VerticalLayout",
  "elements": [
    {"type": "Control", "scope": "#/properties/name"},
    {"type": "Group", "label": "Address", "elements": [
      {"type": "Control", "scope": "#/properties/address/properties/city"}
    ]}
  ]
}`
	if got := ValidateUISchema(contactSchema, ui); !got.Valid {
		t.Fatalf("expected valid ui schema, issues: %#v", got.Issues)
	}
}

func TestValidateUISchema_YAML(t *testing.T) {
	ui := `type: HorizontalLayout
elements:
  - type: Control
    scope: "#/properties/name"
`
	if got := ValidateUISchema(contactSchema, ui); !got.Valid {
		t.Fatalf("expected valid ui schema, issues: %#v", got.Issues)
	}
}

func TestValidateUISchema_UnresolvedScopes(t *testing.T) {
	ui := `{
  "type": "VerticalLayout",
  "elements": [
    {"type": "Control", "scope": "#/properties/phone"},
    {"type": "Control", "scope": "properties/name"}
  ]
}`
	got := ValidateUISchema(contactSchema, ui)
	want := SchemaValidationResult{Issues: []SchemaIssue{
		{Path: "#/properties/phone", Field: "phone", Message: `scope "#/properties/phone" does not resolve to a schema property`},
		{Path: "properties/name", Field: "name", Message: `scope "properties/name" must start with #/`},
	}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateUISchema_AcceptsGeneratedScopesWithSlashes(t *testing.T) {
	for _, data := range []string{`{"a/b":1}`, `{"a~1b":1}`, `{"plain":1,"x/y/z":"v"}`} {
		generated := orchestrator.GenerateFromData(data)
		if generated.Error != "" {
			t.Fatalf("generate %s: %s", data, generated.Error)
		}
		if got := ValidateUISchema(generated.JSONSchema, generated.UISchema); !got.Valid {
			t.Fatalf("generated pair for %s rejected: %+v", data, got.Issues)
		}
	}

	got := ValidateUISchema(`{"properties":{"a/b":{}}}`, `{"type":"Control","scope":"#/properties/a/c"}`)
	if got.Valid {
		t.Fatal("expected unknown key to be rejected")
	}
}

func TestValidateUISchema_BadDocuments(t *testing.T) {
	if got := ValidateUISchema(`{`, `{"type":"VerticalLayout"}`); got.Valid || !strings.HasPrefix(got.Issues[0].Message, "schema: JSON Syntax Error") {
		t.Fatalf("unexpected result for bad schema: %#v", got)
	}
	if got := ValidateUISchema(contactSchema, `{"elements": []}`); got.Valid || !strings.Contains(got.Issues[0].Message, "has no type") {
		t.Fatalf("unexpected result for bad ui schema: %#v", got)
	}
}
