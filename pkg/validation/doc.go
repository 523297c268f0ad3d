// Package validation checks the documents a form builder works with: raw JSON
// input, sample data against a JSON Schema, and UI schema scopes against the
// schema they reference. Results are plain structs so HTTP handlers and the
// CLI can surface them without translating errors.
package validation
