// Package defaults embeds the starter documents offered to new projects.
package defaults

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed templates
var embedded embed.FS

// File names used for every template and for exported projects.
const (
	SchemaFile   = "schema.json"
	UISchemaFile = "uischema.json"
	DataFile     = "data.json"
)

// DefaultName names the template used when none is requested.
const DefaultName = "contact"

// Template is a set of starter documents.
type Template struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	JSONSchema string `json:"jsonSchema"`
	UISchema   string `json:"uiSchema"`
	Data       string `json:"data"`
}

var titles = map[string]string{
	"contact": "Contact Form",
	"blank":   "Blank Form",
}

// FS exposes the embedded templates rooted at their directory names.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return embedded
	}
	return sub
}

// Names lists the embedded templates, default first.
func Names() []string {
	entries, err := fs.ReadDir(FS(), ".")
	if err != nil {
		return []string{DefaultName}
	}
	names := []string{DefaultName}
	for _, entry := range entries {
		if entry.IsDir() && entry.Name() != DefaultName {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Lookup loads the named template.
func Lookup(name string) (Template, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		name = DefaultName
	}
	fsys := FS()
	read := func(file string) (string, error) {
		data, err := fs.ReadFile(fsys, path.Join(name, file))
		if err != nil {
			return "", fmt.Errorf("defaults: template %q: %w", name, err)
		}
		return strings.TrimRight(string(data), "\n"), nil
	}

	tpl := Template{Name: name, Title: titles[name]}
	var err error
	if tpl.JSONSchema, err = read(SchemaFile); err != nil {
		return Template{}, err
	}
	if tpl.UISchema, err = read(UISchemaFile); err != nil {
		return Template{}, err
	}
	if tpl.Data, err = read(DataFile); err != nil {
		return Template{}, err
	}
	if tpl.Title == "" {
		tpl.Title = name
	}
	return tpl, nil
}

// Default returns the Contact Form template. It panics only if the embedded
// files are missing, which is a build error.
func Default() Template {
	tpl, err := Lookup(DefaultName)
	if err != nil {
		panic(err)
	}
	return tpl
}
