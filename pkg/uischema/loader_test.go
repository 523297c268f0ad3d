package uischema_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

func TestParse_JSONNestedLayouts(t *testing.T) {
	el, err := uischema.Parse([]byte(`{
  "type": "VerticalLayout",
  "elements": [
    {"type": "Control", "scope": "#/properties/firstName", "label": "<b>First</b> name"},
    {"type": "HorizontalLayout", "elements": [
      {"type": "Control", "scope": "#/properties/age"},
      {"type": "Control", "scope": "#/properties/birthdate", "label": false}
    ]},
    {"type": "Group", "label": "Tom & Jerry"}
  ]
}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []string{"#/properties/firstName", "#/properties/age", "#/properties/birthdate"}
	if diff := cmp.Diff(want, uischema.Scopes(el)); diff != "" {
		t.Fatalf("scopes mismatch (-want +got):\n%s", diff)
	}
	if got := el.Elements[0].Label; got != "First name" {
		t.Fatalf("label not sanitised: %q", got)
	}
	if got := el.Elements[1].Elements[1].Label; got != "" {
		t.Fatalf("non-string label should be dropped, got %q", got)
	}
	group := el.Elements[2]
	if group.Label != "Tom & Jerry" {
		t.Fatalf("label entities mangled: %q", group.Label)
	}
	if group.Elements == nil {
		t.Fatalf("layout without children should carry an empty element list")
	}
}

func TestParse_YAML(t *testing.T) {
	el, err := uischema.Parse([]byte(`
type: VerticalLayout
elements:
  - type: Control
    scope: "#/properties/email"
    options:
      multi: true
`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if diff := cmp.Diff([]string{"#/properties/email"}, uischema.Scopes(el)); diff != "" {
		t.Fatalf("scopes mismatch (-want +got):\n%s", diff)
	}
	if el.Elements[0].Options["multi"] != true {
		t.Fatalf("options not parsed: %#v", el.Elements[0].Options)
	}
}

func TestParse_Errors(t *testing.T) {
	inputs := map[string]string{
		"empty":          "   ",
		"missing type":   `{"elements":[]}`,
		"control scope":  `{"type":"VerticalLayout","elements":[{"type":"Control"}]}`,
		"not a document": `{{{`,
	}
	for name, input := range inputs {
		if _, err := uischema.Parse([]byte(input)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"ui/uischema.json": {Data: []byte(`{"type":"VerticalLayout","elements":[{"type":"Control","scope":"#/properties/a"}]}`)},
	}
	el, err := uischema.LoadFS(fsys, "ui/uischema.json")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(el.Elements) != 1 {
		t.Fatalf("expected one element, got %d", len(el.Elements))
	}

	if _, err := uischema.LoadFS(fsys, "missing.json"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := uischema.LoadFS(nil, "ui/uischema.json"); err == nil {
		t.Fatalf("expected error for nil fs")
	}
}
