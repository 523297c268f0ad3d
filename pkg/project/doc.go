// Package project stores form-builder projects (a JSON Schema, a UI schema
// and sample data, each kept as text) behind a pluggable key/value Store,
// and prepares them for export.
package project
