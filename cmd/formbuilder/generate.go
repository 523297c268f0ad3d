package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/orchestrator"
	"github.com/goliatone/go-formbuilder/pkg/schema"
	"github.com/goliatone/go-formbuilder/pkg/uischema"
)

// bundle is the combined stdout form of a generation.
type bundle struct {
	JSONSchema schema.Root      `json:"jsonSchema" yaml:"jsonSchema"`
	UISchema   uischema.Element `json:"uiSchema" yaml:"uiSchema"`
}

func (a *app) generateCommand() *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "generate [path|url|-]",
		Short: "Infer a JSON Schema and UI schema from a sample JSON object",
		Long: `Reads a sample JSON object from a file, an http(s) URL (when
FORMBUILDER_ALLOW_REMOTE=true) or stdin, and prints the inferred JSON Schema
and UI schema. With --out both documents are written to that directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "json" && format != "yaml" {
				return fmt.Errorf("unsupported format %q (json or yaml)", format)
			}
			p, err := a.profile()
			if err != nil {
				return err
			}
			var arg string
			if len(args) > 0 {
				arg = args[0]
			}
			raw, err := load(cmd.Context(), p, arg, cmd.InOrStdin())
			if err != nil {
				return err
			}

			gen := orchestrator.New(
				orchestrator.WithLogger(p.Logger(cmd.ErrOrStderr())),
				orchestrator.WithMaxDepth(p.MaxDepth),
			)
			out, err := gen.Generate(string(raw))
			if err != nil {
				return err
			}

			if outDir != "" {
				return writeGenerated(outDir, format, out)
			}
			text, err := renderBundle(format, bundle{JSONSchema: out.Schema, UISchema: out.UISchema})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().StringVar(&outDir, "out", "", "write schema and uischema files into this directory")
	return cmd
}

func renderBundle(format string, b bundle) (string, error) {
	if format == "yaml" {
		return schema.PrettyYAML(b)
	}
	raw, err := json.MarshalWithOption(b, json.DisableHTMLEscape())
	if err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return schema.Indent(raw)
}

func writeGenerated(dir, format string, out orchestrator.Output) error {
	schemaText, uiText := out.SchemaJSON, out.UISchemaJSON
	schemaName, uiName := defaults.SchemaFile, defaults.UISchemaFile
	if format == "yaml" {
		var err error
		if schemaText, err = schema.PrettyYAML(out.Schema); err != nil {
			return err
		}
		if uiText, err = schema.PrettyYAML(out.UISchema); err != nil {
			return err
		}
		schemaName, uiName = "schema.yaml", "uischema.yaml"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	files := map[string]string{schemaName: schemaText, uiName: uiText}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if content != "" && content[len(content)-1] != '\n' {
			content += "\n"
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}
