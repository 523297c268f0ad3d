package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/validation"
)

type violation struct {
	file     string
	location string
	message  string
}

func (a *app) validateCommand() *cobra.Command {
	var schemaPath, dataPath, uiPath string
	cmd := &cobra.Command{
		Use:   "validate --schema schema.json [--data data.json] [--ui uischema.json]",
		Short: "Check data and a UI schema against a JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dataPath == "" && uiPath == "" {
				return fmt.Errorf("nothing to validate: pass --data and/or --ui")
			}
			p, err := a.profile()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			read := func(path string) (string, error) {
				raw, err := load(ctx, p, path, cmd.InOrStdin())
				if err != nil {
					return "", err
				}
				return string(raw), nil
			}

			schemaText, err := read(schemaPath)
			if err != nil {
				return err
			}

			var violations []violation
			collect := func(file string, result validation.SchemaValidationResult) {
				for _, issue := range result.Issues {
					location := issue.Path
					if location == "" {
						location = "#"
					}
					violations = append(violations, violation{file: file, location: location, message: issue.Message})
				}
			}
			if dataPath != "" {
				dataText, err := read(dataPath)
				if err != nil {
					return err
				}
				collect(dataPath, validation.ValidateData(schemaText, dataText))
			}
			if uiPath != "" {
				uiText, err := read(uiPath)
				if err != nil {
					return err
				}
				collect(uiPath, validation.ValidateUISchema(schemaText, uiText))
			}

			if len(violations) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "ok")
				return err
			}
			sort.SliceStable(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					return violations[i].location < violations[j].location
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n", v.file, v.location, v.message)
			}
			return fmt.Errorf("validation failed with %d issue(s)", len(violations))
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "JSON Schema document")
	cmd.Flags().StringVar(&dataPath, "data", "", "data document to validate")
	cmd.Flags().StringVar(&uiPath, "ui", "", "UI schema document (JSON or YAML) to check")
	if err := cmd.MarkFlagRequired("schema"); err != nil {
		panic(err)
	}
	return cmd
}
