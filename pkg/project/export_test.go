package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"My Contact Form", "my-contact-form"},
		{"  Spaces   Everywhere  ", "spaces-everywhere"},
		{"Form!@#$%^&*()", "form"},
		{"a -- b", "a-b"},
		{"---edge---", "edge"},
		{"tab\tand\nnewline", "tab-and-newline"},
		{"Ünïcödé", "ncd"},
		{"", "untitled"},
		{"!!!", "untitled"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestFiles_FormatsOrKeepsVerbatim(t *testing.T) {
	p := Project{
		Name:       "Form",
		JSONSchema: `{"type":"object","properties":{"b":{},"a":{}}}`,
		UISchema:   `{"type": "VerticalLayout", "elements": [`,
		Data:       `{"a":1,"a":2}`,
	}

	files := Files(p)
	require.Len(t, files, 3)
	assert.Equal(t, "schema.json", files[0].Name)
	assert.Equal(t, "{\n  \"type\": \"object\",\n  \"properties\": {\n    \"b\": {},\n    \"a\": {}\n  }\n}", files[0].Content)
	assert.Equal(t, "uischema.json", files[1].Name)
	assert.Equal(t, p.UISchema, files[1].Content)
	assert.Equal(t, "data.json", files[2].Name)
	assert.Equal(t, "{\n  \"a\": 2\n}", files[2].Content)
}

func TestWriteDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteDir(dir, Project{JSONSchema: "{}", UISchema: "{}", Data: "[1]"}))

	data, err := os.ReadFile(filepath.Join(dir, "data.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  1\n]\n", string(data))
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "Tom & Jerry", SanitizeName(" Tom &amp; <i>Jerry</i> "))
}
