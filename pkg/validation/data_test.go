package validation

import (
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formbuilder/pkg/infer"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

func TestValidateData_InferredSchemaAcceptsSample(t *testing.T) {
	sample := `{
  "name": "Jane",
  "email": "jane@example.com",
  "born": "03/15/1990",
  "createdAt": "2024-01-01T10:00:00Z",
  "age": 30,
  "active": true,
  "nickname": null,
  "tags": ["a", "b"],
  "address": {"city": "Lisbon"}
}`
	value, err := jsonvalue.ParseString(sample)
	if err != nil {
		t.Fatalf("parse sample: %v", err)
	}
	schemaText, err := schema.Pretty(infer.Infer(value))
	if err != nil {
		t.Fatalf("render schema: %v", err)
	}

	got := ValidateData(schemaText, sample)
	if !got.Valid {
		t.Fatalf("expected sample to validate, issues: %#v", got.Issues)
	}
}

func TestValidateData_ReportsEveryFailure(t *testing.T) {
	schemaText := `{
  "type": "object",
  "properties": {
    "age": {"type": "number"},
    "email": {"type": "string", "format": "email"},
    "address": {
      "type": "object",
      "properties": {"city": {"type": "number"}}
    }
  }
}`
	dataText := `{"age": "old", "email": "nope", "address": {"city": "Lisbon"}}`

	got := ValidateData(schemaText, dataText)
	if got.Valid {
		t.Fatal("expected validation failure")
	}

	var fields, paths []string
	for _, issue := range got.Issues {
		fields = append(fields, issue.Field)
		paths = append(paths, issue.Path)
		if issue.Field == "email" && !strings.Contains(issue.Message, "email") {
			t.Fatalf("email issue message = %q", issue.Message)
		}
	}
	sort.Strings(fields)
	sort.Strings(paths)

	if diff := cmp.Diff([]string{"address.city", "age", "email"}, fields); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/address/city", "/age", "/email"}, paths); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateData_DateFormatsFollowInference(t *testing.T) {
	schemaText := `{"type": "object", "properties": {"d": {"type": "string", "format": "date"}}}`

	for _, value := range []string{"2024-02-30", "02/30/2024", "30-02-2024"} {
		if got := ValidateData(schemaText, `{"d": "`+value+`"}`); !got.Valid {
			t.Fatalf("%s rejected: %#v", value, got.Issues)
		}
	}
	if got := ValidateData(schemaText, `{"d": "2024-13-01"}`); got.Valid {
		t.Fatal("expected month 13 to be rejected")
	}
}

func TestValidateData_InputErrors(t *testing.T) {
	cases := []struct {
		name       string
		schemaText string
		dataText   string
		wantPrefix string
	}{
		{"schema syntax", `{"type":`, `{}`, "schema: JSON Syntax Error: "},
		{"schema empty", ` `, `{}`, "schema: Input is empty"},
		{"schema not object", `[]`, `{}`, "schema: document must be a JSON object"},
		{"data syntax", `{"type": "object"}`, `{`, "data: JSON Syntax Error: "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateData(tc.schemaText, tc.dataText)
			if got.Valid || len(got.Issues) != 1 {
				t.Fatalf("expected one issue, got %#v", got)
			}
			if !strings.HasPrefix(got.Issues[0].Message, tc.wantPrefix) {
				t.Fatalf("message = %q, want prefix %q", got.Issues[0].Message, tc.wantPrefix)
			}
		})
	}
}

func TestValidateData_RejectsRefs(t *testing.T) {
	schemaText := `{"type": "object", "properties": {"a": {"$ref": "#/definitions/a"}}}`

	got := ValidateData(schemaText, `{"a": 1}`)
	want := SchemaValidationResult{Issues: []SchemaIssue{{
		Path:    "#/properties/a",
		Field:   "a",
		Message: "schema: $ref is not supported",
	}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldPathFromPointer(t *testing.T) {
	cases := map[string]string{
		"":                                         "",
		"#/properties/name":                        "name",
		"#/properties/address/properties/city":     "address.city",
		"#/properties/tags/items":                  "tags.items",
		"#/properties/a~1b":                        "a/b",
		"#/definitions/thing/properties/x":         "x",
		"#/properties/choice/oneOf/0/properties/y": "choice.y",
	}
	for pointer, want := range cases {
		if got := fieldPathFromPointer(pointer); got != want {
			t.Fatalf("fieldPathFromPointer(%q) = %q, want %q", pointer, got, want)
		}
	}
}
