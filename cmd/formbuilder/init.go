package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formbuilder/pkg/defaults"
	"github.com/goliatone/go-formbuilder/pkg/project"
)

func (a *app) initCommand() *cobra.Command {
	var name, template string
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Scaffold a new form project from a template",
		Long: `Asks for a project name and a starter template, then writes
schema.json, uischema.json and data.json. The directory defaults to a slug of
the project name. --name and --template skip the matching prompts.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if name == "" {
				name, err = a.prompt.Input("Project name:", "", func(answer string) error {
					if project.SanitizeName(answer) == "" {
						return project.ErrNameRequired
					}
					return nil
				})
				if err != nil {
					return err
				}
			}
			name = project.SanitizeName(name)
			if name == "" {
				return project.ErrNameRequired
			}

			if template == "" {
				template, err = a.prompt.Select("Template:", defaults.Names(), defaults.DefaultName)
				if err != nil {
					return err
				}
			}
			tpl, err := defaults.Lookup(template)
			if err != nil {
				return err
			}

			dir := project.SanitizeFilename(name)
			if len(args) > 0 {
				dir = args[0]
			}
			p := templateProject(tpl)
			p.Name = name
			if err := project.WriteDir(dir, p); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Created %q from the %s template in %s\n", name, tpl.Name, filepath.Clean(dir))
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "project name")
	cmd.Flags().StringVar(&template, "template", "", "starter template name")
	return cmd
}
