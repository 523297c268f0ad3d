package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// ValidateUISchema checks that every Control scope in uiText (JSON or YAML)
// points at a property declared in the JSON Schema in schemaText.
func ValidateUISchema(schemaText, uiText string) SchemaValidationResult {
	doc, issue, ok := parseDocument("schema", schemaText)
	if !ok {
		return invalid(issue)
	}

	layout, err := uischema.Parse([]byte(uiText))
	if err != nil {
		return invalid(SchemaIssue{Message: err.Error()})
	}

	var issues []SchemaIssue
	for _, scope := range uischema.Scopes(layout) {
		if msg := checkScope(doc, scope); msg != "" {
			issues = append(issues, SchemaIssue{
				Path:    scope,
				Field:   fieldPathFromPointer(scope),
				Message: msg,
			})
		}
	}
	if len(issues) > 0 {
		return invalid(issues...)
	}
	return SchemaValidationResult{Valid: true}
}

func checkScope(doc jsonvalue.Value, scope string) string {
	if !strings.HasPrefix(scope, "#/") {
		return fmt.Sprintf("scope %q must start with #/", scope)
	}
	if _, ok := resolvePointer(doc, splitPointer(scope)); ok {
		return ""
	}
	// Generated scopes carry top-level keys verbatim, so "a/b" or "a~1b"
	// is one property name rather than a pointer path.
	if key, ok := strings.CutPrefix(scope, uischema.ScopePrefix); ok && hasTopLevelProperty(doc, key) {
		return ""
	}
	return fmt.Sprintf("scope %q does not resolve to a schema property", scope)
}

func hasTopLevelProperty(doc jsonvalue.Value, key string) bool {
	root, ok := doc.(*jsonvalue.Object)
	if !ok || root == nil {
		return false
	}
	props, ok := root.Get("properties")
	if !ok {
		return false
	}
	obj, ok := props.(*jsonvalue.Object)
	if !ok || obj == nil {
		return false
	}
	_, ok = obj.Get(key)
	return ok
}

func resolvePointer(doc jsonvalue.Value, segments []string) (jsonvalue.Value, bool) {
	current := doc
	for _, segment := range segments {
		switch node := current.(type) {
		case *jsonvalue.Object:
			if node == nil {
				return nil, false
			}
			next, ok := node.Get(segment)
			if !ok {
				return nil, false
			}
			current = next
		case jsonvalue.Array:
			if !isNumeric(segment) {
				return nil, false
			}
			idx, err := strconv.Atoi(segment)
			if err != nil || idx >= len(node) {
				return nil, false
			}
			current = node[idx]
		default:
			return nil, false
		}
	}
	return current, true
}
