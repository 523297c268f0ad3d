package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

// File is one exported document.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Files returns the project's documents as schema.json, uischema.json and
// data.json, each re-indented with two spaces. Text that does not parse is
// exported unchanged.
func Files(p Project) []File {
	return []File{
		{Name: defaults.SchemaFile, Content: FormatJSON(p.JSONSchema)},
		{Name: defaults.UISchemaFile, Content: FormatJSON(p.UISchema)},
		{Name: defaults.DataFile, Content: FormatJSON(p.Data)},
	}
}

// FormatJSON re-indents text with two spaces, keeping key order. Duplicate
// keys collapse to their last value. Invalid JSON is returned as is.
func FormatJSON(text string) string {
	value, err := jsonvalue.ParseString(text)
	if err != nil {
		return text
	}
	raw, err := value.MarshalJSON()
	if err != nil {
		return text
	}
	out, err := schema.Indent(raw)
	if err != nil {
		return text
	}
	return out
}

// WriteDir writes Files(p) into dir, creating it when needed.
func WriteDir(dir string, p Project) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("project: create %s: %w", dir, err)
	}
	for _, f := range Files(p) {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, []byte(f.Content+"\n"), 0o644); err != nil {
			return fmt.Errorf("project: write %s: %w", path, err)
		}
	}
	return nil
}
