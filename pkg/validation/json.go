package validation

import (
	"github.com/goliatone/go-formbuilder/pkg/infer"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
)

const (
	msgEmptyInput   = "Input is empty or contains only whitespace"
	msgSyntaxPrefix = "JSON Syntax Error: "
)

// JSONResult reports whether a text buffer holds a single JSON document.
type JSONResult struct {
	Valid  bool            `json:"valid"`
	Error  string          `json:"error,omitempty"`
	Parsed jsonvalue.Value `json:"parsed,omitempty"`
}

// ValidateJSON checks text for JSON syntax. Parsed is set only when the
// document is valid.
func ValidateJSON(text string, options ...jsonvalue.ParseOption) JSONResult {
	if infer.IsBlank(text) {
		return JSONResult{Error: msgEmptyInput}
	}
	value, err := jsonvalue.ParseString(text, options...)
	if err != nil {
		return JSONResult{Error: msgSyntaxPrefix + err.Error()}
	}
	return JSONResult{Valid: true, Parsed: value}
}
