// Package formbuilder generates a JSON Schema and a JSON Forms UI schema from
// a sample JSON document. The root package re-exports the common entry
// points; the pieces live under pkg/.
package formbuilder

import (
	"github.com/goliatone/go-formbuilder/pkg/infer"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// Result aliases orchestrator.Result: both schema texts or an error message.
type Result = orchestrator.Result

// Option configures an orchestrator.
type Option = orchestrator.Option

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// GenerateFromData parses text, infers its schema and lays out a UI schema.
// Both documents are returned as two-space indented JSON. Input problems are
// reported in Result.Error.
func GenerateFromData(text string, options ...Option) Result {
	if len(options) == 0 {
		return orchestrator.GenerateFromData(text)
	}
	return orchestrator.New(options...).GenerateFromData(text)
}

// InferSchema infers a draft-07 root schema for a parsed value.
func InferSchema(value jsonvalue.Value) schema.Root {
	return infer.Infer(value)
}

// GenerateUISchema lays out one Control per top-level property of s.
func GenerateUISchema(s *schema.Schema) uischema.Element {
	return uischema.Generate(s)
}
