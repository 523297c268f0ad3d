// Package orchestrator turns a sample JSON document into a JSON Schema and a
// matching UI schema. It owns input checking (empty input, syntax errors,
// non-object roots) and serialisation; inference and layout live in
// pkg/infer and pkg/uischema.
package orchestrator
