package validation

import (
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/goccy/go-json"

	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
)

// ValidateData checks dataText against the JSON Schema in schemaText. Every
// failing keyword is reported; Path is a JSON pointer into the data and Field
// the same location in dotted form. Schema references ($ref) are not
// resolved and are reported as an issue.
func ValidateData(schemaText, dataText string) SchemaValidationResult {
	ensureFormats()

	doc, issue, ok := parseDocument("schema", schemaText)
	if !ok {
		return invalid(issue)
	}
	if !jsonvalue.IsObject(doc) {
		return invalid(SchemaIssue{Message: "schema: document must be a JSON object"})
	}
	if pointer, found := findRef(doc, nil); found {
		return invalid(SchemaIssue{Path: pointer, Field: fieldPathFromPointer(pointer), Message: "schema: $ref is not supported"})
	}

	if _, issue, ok := parseDocument("data", dataText); !ok {
		return invalid(issue)
	}

	var s openapi3.Schema
	if err := json.Unmarshal([]byte(schemaText), &s); err != nil {
		return invalid(SchemaIssue{Message: "schema: " + err.Error()})
	}
	var data any
	if err := json.Unmarshal([]byte(dataText), &data); err != nil {
		return invalid(SchemaIssue{Message: "data: " + err.Error()})
	}

	issues := collectIssues(s.VisitJSON(data, openapi3.MultiErrors()), nil)
	if len(issues) > 0 {
		return invalid(issues...)
	}
	return SchemaValidationResult{Valid: true}
}

func parseDocument(label, text string) (jsonvalue.Value, SchemaIssue, bool) {
	result := ValidateJSON(text)
	if !result.Valid {
		return nil, SchemaIssue{Message: label + ": " + result.Error}, false
	}
	return result.Parsed, SchemaIssue{}, true
}

func findRef(v jsonvalue.Value, path []string) (string, bool) {
	switch v := v.(type) {
	case *jsonvalue.Object:
		if v == nil {
			return "", false
		}
		if _, ok := v.Get("$ref"); ok {
			return "#" + pointerFromSegments(path), true
		}
		var (
			pointer string
			found   bool
		)
		v.Range(func(key string, child jsonvalue.Value) bool {
			pointer, found = findRef(child, append(path[:len(path):len(path)], key))
			return !found
		})
		return pointer, found
	case jsonvalue.Array:
		for idx, child := range v {
			if pointer, found := findRef(child, append(path[:len(path):len(path)], strconv.Itoa(idx))); found {
				return pointer, true
			}
		}
	}
	return "", false
}

func collectIssues(err error, out []SchemaIssue) []SchemaIssue {
	switch e := err.(type) {
	case nil:
		return out
	case openapi3.MultiError:
		for _, inner := range e {
			out = collectIssues(inner, out)
		}
		return out
	case *openapi3.SchemaError:
		segments := e.JSONPointer()
		message := strings.TrimSpace(e.Reason)
		if message == "" {
			message = e.Error()
		}
		return append(out, SchemaIssue{
			Path:    pointerFromSegments(segments),
			Field:   strings.Join(segments, "."),
			Message: message,
		})
	default:
		return append(out, SchemaIssue{Message: err.Error()})
	}
}
