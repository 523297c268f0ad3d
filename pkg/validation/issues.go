package validation

import "strings"

// SchemaIssue represents a validation error with optional location metadata.
type SchemaIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// SchemaValidationResult captures validation outcomes for builder previews.
type SchemaValidationResult struct {
	Valid  bool          `json:"valid"`
	Issues []SchemaIssue `json:"issues,omitempty"`
}

func invalid(issues ...SchemaIssue) SchemaValidationResult {
	return SchemaValidationResult{Valid: false, Issues: issues}
}

// pointerFromSegments builds an RFC 6901 pointer from unescaped segments.
func pointerFromSegments(segments []string) string {
	if len(segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range segments {
		b.WriteByte('/')
		segment = strings.ReplaceAll(segment, "~", "~0")
		b.WriteString(strings.ReplaceAll(segment, "/", "~1"))
	}
	return b.String()
}

func splitPointer(pointer string) []string {
	trimmed := strings.TrimPrefix(strings.TrimSpace(pointer), "#")
	trimmed = strings.TrimPrefix(trimmed, "/")
	if trimmed == "" {
		return nil
	}
	parts := strings.Split(trimmed, "/")
	for idx, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		parts[idx] = strings.ReplaceAll(part, "~0", "~")
	}
	return parts
}

// fieldPathFromPointer turns a schema pointer such as
// #/properties/address/properties/city into address.city.
func fieldPathFromPointer(pointer string) string {
	parts := splitPointer(pointer)
	out := make([]string, 0, len(parts))
	for idx := 0; idx < len(parts); idx++ {
		segment := parts[idx]
		switch segment {
		case "properties":
			if idx+1 < len(parts) {
				out = append(out, parts[idx+1])
				idx++
			}
		case "items":
			out = append(out, "items")
		case "oneOf", "anyOf", "allOf":
			if idx+1 < len(parts) && isNumeric(parts[idx+1]) {
				idx++
			}
		case "definitions", "$defs":
			if idx+1 < len(parts) {
				idx++
			}
		default:
			if segment == "" {
				continue
			}
			out = append(out, segment)
		}
	}
	return strings.Join(out, ".")
}

func isNumeric(value string) bool {
	if value == "" {
		return false
	}
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
