package main

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/internal/profile"
	"github.com/goliatone/go-formbuilder/pkg/jsonvalue"
	"github.com/goliatone/go-formbuilder/pkg/project"
	"github.com/goliatone/go-formbuilder/pkg/source"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

type app struct {
	v      *viper.Viper
	prompt prompter
}

func newApp() *app {
	return &app{v: viper.New(), prompt: surveyPrompter{}}
}

func (a *app) command() *cobra.Command {
	root := &cobra.Command{
		Use:          "formbuilder",
		Short:        "Generate JSON Schema and UI schema documents from sample JSON data",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			// A missing .env is not an error.
			_ = godotenv.Load()
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("mode", "dev", `mode of the server, "dev" or "prod"`)
	flags.String("addr", "", "address of server")
	flags.Int("port", 8080, "port of server")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Int("max-depth", jsonvalue.DefaultMaxDepth, "maximum nesting depth accepted in JSON input")
	flags.String("namespace", project.DefaultNamespace, "storage namespace for projects")

	for _, name := range []string{"mode", "addr", "port", "log-level", "max-depth", "namespace"} {
		if err := a.v.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
	a.v.SetEnvPrefix("formbuilder")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()

	root.AddCommand(
		a.generateCommand(),
		a.validateCommand(),
		a.templateCommand(),
		a.initCommand(),
		a.serveCommand(),
	)
	return root
}

// profile resolves the flags, environment and defaults into a validated
// Profile.
func (a *app) profile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:      a.v.GetString("mode"),
		Addr:      a.v.GetString("addr"),
		Port:      a.v.GetInt("port"),
		LogLevel:  a.v.GetString("log-level"),
		MaxDepth:  a.v.GetInt("max-depth"),
		Namespace: a.v.GetString("namespace"),
		Version:   version,
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// load reads the document named by arg: a path, an http(s) URL when remote
// sources are allowed, or stdin for "-".
func load(ctx context.Context, p *profile.Profile, arg string, stdin io.Reader) ([]byte, error) {
	src, err := source.Detect(arg, stdin)
	if err != nil {
		return nil, err
	}
	options := []source.LoaderOption{source.WithMaxBytes(p.MaxBodyBytes)}
	if p.AllowRemote {
		options = append(options, source.WithHTTPFallback(time.Duration(p.RequestTimeoutSeconds)*time.Second))
	}
	return formbuilder.NewLoader(options...).Load(ctx, src)
}
