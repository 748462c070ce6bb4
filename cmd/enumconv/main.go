// Command enumconv generates conversion functions for Go enums declared in
// YAML descriptor files or marked with //enumconv:generate in Go sources.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/spf13/afero"

	"enumconv/internal/config"
	"enumconv/internal/logger"
	"enumconv/internal/runner"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config   string `help:"Config file (default ${config_file} when present)." type:"path" short:"c"`
	LogLevel string `help:"Log level: debug, info, warn or error."`
	LogJSON  bool   `help:"Log as JSON." name:"log-json"`

	stdout io.Writer `kong:"-"`
	fs     afero.Fs  `kong:"-"`
}

type CLI struct {
	Globals

	Gen     GenCmd     `cmd:"" help:"Generate conversion functions."`
	Check   CheckCmd   `cmd:"" help:"Fail with a diff when generated files are stale."`
	Dump    DumpCmd    `cmd:"" help:"Print collected descriptors and unique signatures."`
	Schema  SchemaCmd  `cmd:"" help:"Print the JSON schema of descriptor files."`
	Version VersionCmd `cmd:"" help:"Print version information."`
}

type GenCmd struct {
	Inputs []string `arg:"" help:"Descriptor globs (**/*.enumconv.yaml) or Go package patterns (./...)."`
	Out    string   `help:"Write every output to this directory." type:"path" short:"o"`
	Watch  bool     `help:"Watch inputs and regenerate on change." short:"w"`
}

func (c *GenCmd) Run(ctx context.Context, g *Globals) error {
	r, err := g.runner(c.Out)
	if err != nil {
		return err
	}

	if c.Watch {
		return r.Watch(ctx, c.Inputs)
	}

	return r.Gen(ctx, c.Inputs)
}

type CheckCmd struct {
	Inputs []string `arg:"" help:"Descriptor globs or Go package patterns."`
}

func (c *CheckCmd) Run(ctx context.Context, g *Globals) error {
	r, err := g.runner("")
	if err != nil {
		return err
	}

	return r.Check(ctx, c.Inputs)
}

type DumpCmd struct {
	Inputs []string `arg:"" help:"Descriptor globs or Go package patterns."`
	Format string   `help:"Output format." enum:"yaml,spew" default:"yaml" short:"f"`
}

func (c *DumpCmd) Run(ctx context.Context, g *Globals) error {
	r, err := g.runner("")
	if err != nil {
		return err
	}

	return r.Dump(ctx, c.Inputs, c.Format)
}

type SchemaCmd struct{}

func (c *SchemaCmd) Run(g *Globals) error {
	r, err := g.runner("")
	if err != nil {
		return err
	}

	return r.Schema()
}

type VersionCmd struct{}

func (c *VersionCmd) Run(g *Globals) error {
	_, err := fmt.Fprintln(g.stdout, Version())
	return err
}

// runner loads the configuration, applies flag overrides and builds the
// runner with its logger.
func (g *Globals) runner(outDir string) (*runner.Runner, error) {
	cfg, err := config.Load(g.fs, g.Config)
	if err != nil {
		return nil, err
	}

	if g.LogLevel != "" {
		cfg.Log.Level = g.LogLevel
	}

	if g.LogJSON {
		cfg.Log.JSON = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	log := logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.Log.Level),
		Output:     os.Stderr,
		JSON:       cfg.Log.JSON,
		TimeFormat: "15:04:05",
	})
	log.Debug("configuration loaded", "config", cfg.String())

	return runner.New(runner.Options{
		Fs:     g.fs,
		Config: cfg,
		Logger: log,
		Stdout: g.stdout,
		OutDir: outDir,
	}), nil
}

func newParser(cli *CLI, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("enumconv"),
		kong.Description("Declarative enum conversion generator."),
		kong.UsageOnError(),
		kong.Vars{"config_file": config.DefaultFile},
		kong.Bind(&cli.Globals),
	}, options...)

	return kong.New(cli, options...)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli := &CLI{Globals: Globals{stdout: os.Stdout, fs: afero.NewOsFs()}}

	parser, err := newParser(cli, kong.BindTo(ctx, (*context.Context)(nil)))
	if err != nil {
		panic(err)
	}

	kctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	err = kctx.Run()
	stop()
	kctx.FatalIfErrorf(err)
}
