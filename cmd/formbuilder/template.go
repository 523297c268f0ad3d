package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/project"
)

func (a *app) templateCommand() *cobra.Command {
	var (
		list   bool
		part   string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "template [name]",
		Short: "Print or write a starter template",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if list {
				for _, name := range defaults.Names() {
					tpl, err := defaults.Lookup(name)
					if err != nil {
						return err
					}
					fmt.Fprintf(w, "%s\t%s\n", tpl.Name, tpl.Title)
				}
				return nil
			}

			var name string
			if len(args) > 0 {
				name = args[0]
			}
			tpl, err := defaults.Lookup(name)
			if err != nil {
				return err
			}
			if outDir != "" {
				return project.WriteDir(outDir, templateProject(tpl))
			}

			var text string
			switch part {
			case "schema":
				text = tpl.JSONSchema
			case "uischema":
				text = tpl.UISchema
			case "data":
				text = tpl.Data
			default:
				return fmt.Errorf("unknown part %q (schema, uischema or data)", part)
			}
			_, err = fmt.Fprintln(w, text)
			return err
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "list available templates")
	cmd.Flags().StringVar(&part, "part", "schema", "document to print: schema, uischema or data")
	cmd.Flags().StringVar(&outDir, "out", "", "write all three documents into this directory")
	return cmd
}

func templateProject(tpl defaults.Template) project.Project {
	return project.Project{
		Name:       tpl.Title,
		JSONSchema: tpl.JSONSchema,
		UISchema:   tpl.UISchema,
		Data:       tpl.Data,
	}
}
