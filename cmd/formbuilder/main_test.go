package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/project"
)

const sample = `{"name":"John","email":"john@example.com","age":30}`

func run(t *testing.T, a *app, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := a.command()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestGenerate_FromFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sample.json", sample)

	out, err := run(t, newApp(), "", "generate", path)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for _, want := range []string{
		`"jsonSchema": {`,
		`"$schema": "https://json-schema.org/draft-07/schema#"`,
		`"format": "email"`,
		`"uiSchema": {`,
		`"scope": "#/properties/age"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestGenerate_FromStdinAsYAML(t *testing.T) {
	out, err := run(t, newApp(), sample, "generate", "-", "--format", "yaml")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out, "jsonSchema:") || !strings.Contains(out, "#/properties/name") {
		t.Fatalf("unexpected yaml output:\n%s", out)
	}
}

func TestGenerate_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "sample.json", sample)
	outDir := filepath.Join(dir, "out")

	if _, err := run(t, newApp(), "", "generate", path, "--out", outDir); err != nil {
		t.Fatalf("generate: %v", err)
	}

	want, err := orchestrator.New().Generate(sample)
	if err != nil {
		t.Fatalf("orchestrator: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(outDir, defaults.SchemaFile))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if string(got) != want.SchemaJSON+"\n" {
		t.Fatalf("schema file mismatch:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(outDir, defaults.UISchemaFile)); err != nil {
		t.Fatalf("uischema not written: %v", err)
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{name: "not an object", stdin: "[1]", args: []string{"generate"}, want: "Data must be an object"},
		{name: "empty", stdin: "  ", args: []string{"generate", "-"}, want: "Invalid JSON: empty input"},
		{name: "bad format", stdin: sample, args: []string{"generate", "--format", "xml"}, want: `unsupported format "xml"`},
		{name: "remote disabled", args: []string{"generate", "https://example.com/data.json"}, want: "http support disabled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, newApp(), tt.stdin, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", `{"type":"object","properties":{"email":{"type":"string","format":"email"},"age":{"type":"number"}}}`)
	good := writeFile(t, dir, "good.json", `{"email":"a@b.co","age":3}`)
	bad := writeFile(t, dir, "bad.json", `{"email":"nope","age":"old"}`)
	ui := writeFile(t, dir, "ui.json", `{"type":"VerticalLayout","elements":[{"type":"Control","scope":"#/properties/missing"}]}`)

	out, err := run(t, newApp(), "", "validate", "--schema", schemaPath, "--data", good)
	if err != nil {
		t.Fatalf("validate good: %v", err)
	}
	if strings.TrimSpace(out) != "ok" {
		t.Fatalf("unexpected output %q", out)
	}

	out, err = run(t, newApp(), "", "validate", "--schema", schemaPath, "--data", bad, "--ui", ui)
	if err == nil || !strings.Contains(err.Error(), "3 issue(s)") {
		t.Fatalf("expected 3 issues, got %v\n%s", err, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", out)
	}
	if !strings.HasPrefix(lines[0], bad+": /age -> ") {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if !strings.Contains(out, ui+": #/properties/missing -> ") {
		t.Errorf("ui issue missing:\n%s", out)
	}
}

func TestValidate_RequiresSomethingToCheck(t *testing.T) {
	path := writeFile(t, t.TempDir(), "schema.json", `{}`)
	if _, err := run(t, newApp(), "", "validate", "--schema", path); err == nil {
		t.Fatal("expected error")
	}
}

func TestTemplate(t *testing.T) {
	out, err := run(t, newApp(), "", "template", "--list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.HasPrefix(out, "contact\tContact Form\n") {
		t.Fatalf("unexpected list %q", out)
	}

	out, err = run(t, newApp(), "", "template", "contact", "--part", "data")
	if err != nil {
		t.Fatalf("template: %v", err)
	}
	if strings.TrimSpace(out) != defaults.Default().Data {
		t.Fatalf("unexpected data:\n%s", out)
	}

	if _, err := run(t, newApp(), "", "template", "--part", "html"); err == nil {
		t.Fatal("expected unknown part error")
	}
	if _, err := run(t, newApp(), "", "template", "missing"); err == nil {
		t.Fatal("expected unknown template error")
	}
}

type scripted struct {
	name     string
	template string
	asked    []string
}

func (s *scripted) Input(message, _ string, validate func(string) error) (string, error) {
	s.asked = append(s.asked, message)
	if validate != nil {
		if err := validate(s.name); err != nil {
			return "", err
		}
	}
	return s.name, nil
}

func (s *scripted) Select(message string, options []string, def string) (string, error) {
	s.asked = append(s.asked, message)
	if def != defaults.DefaultName || len(options) == 0 {
		return "", errors.New("unexpected select options")
	}
	return s.template, nil
}

func TestInit_Prompts(t *testing.T) {
	a := newApp()
	prompts := &scripted{name: "My <b>Signup</b> Form", template: "contact"}
	a.prompt = prompts
	dir := filepath.Join(t.TempDir(), "signup")

	out, err := run(t, a, "", "init", dir)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(prompts.asked) != 2 {
		t.Fatalf("expected two prompts, got %v", prompts.asked)
	}
	if !strings.Contains(out, `"My Signup Form"`) {
		t.Fatalf("unexpected output %q", out)
	}
	got, err := os.ReadFile(filepath.Join(dir, defaults.SchemaFile))
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}
	if string(got) != project.FormatJSON(defaults.Default().JSONSchema)+"\n" {
		t.Fatalf("unexpected schema:\n%s", got)
	}
}

func TestInit_FlagsSkipPrompts(t *testing.T) {
	a := newApp()
	prompts := &scripted{}
	a.prompt = prompts
	dir := filepath.Join(t.TempDir(), "blank")

	if _, err := run(t, a, "", "init", dir, "--name", "Blank", "--template", "blank"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if len(prompts.asked) != 0 {
		t.Fatalf("expected no prompts, got %v", prompts.asked)
	}
	for _, name := range []string{defaults.SchemaFile, defaults.UISchemaFile, defaults.DataFile} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s not written: %v", name, err)
		}
	}
}

func TestInit_RejectsBlankName(t *testing.T) {
	a := newApp()
	a.prompt = &scripted{name: "<i></i>"}
	_, err := run(t, a, "", "init", t.TempDir())
	if !errors.Is(err, project.ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}
