// Package runner drives enumconv end to end: it finds inputs, plans them,
// generates code in parallel and writes, checks or dumps the result.
package runner

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/afero"

	"enumconv/internal/analyze"
	"enumconv/internal/config"
	"enumconv/internal/diagnostic"
	"enumconv/internal/logger"
	"enumconv/internal/plan"
)

var (
	// ErrDiagnostics is returned when any input reported an error diagnostic.
	ErrDiagnostics = errors.New("enumconv reported errors")
	// ErrStale is returned by Check when generated files are out of date.
	ErrStale = errors.New("generated files are stale")
)

// PackageLoader loads Go packages and extracts their enums.
type PackageLoader func(ctx context.Context, dir string, patterns ...string) ([]analyze.Result, error)

// Options configures a Runner.
type Options struct {
	// Fs is where descriptors are read and outputs written. Defaults to the OS.
	Fs afero.Fs
	// Config defaults to config.Default().
	Config *config.Config
	// Logger defaults to a logger on stderr.
	Logger logger.Logger
	// Stdout receives diffs and dumps. Defaults to os.Stdout.
	Stdout io.Writer
	// Dir is the working directory for Go package patterns.
	Dir string
	// OutDir overrides the output directory of every input.
	OutDir string
	// LoadPackages defaults to analyze.Load.
	LoadPackages PackageLoader
}

// Runner executes enumconv commands.
type Runner struct {
	fs     afero.Fs
	cfg    *config.Config
	log    logger.Logger
	stdout io.Writer
	dir    string
	outDir string
	load   PackageLoader
}

// Unit is one planned input: a descriptor file or a Go package.
type Unit struct {
	// Source is the descriptor path or the package import path.
	Source string
	// SourceDir holds the descriptor or the package sources.
	SourceDir string
	// Dir is where the unit's files are written.
	Dir  string
	Plan *plan.Plan
}

// New creates a Runner, filling unset options with defaults.
func New(opts Options) *Runner {
	r := &Runner{
		fs:     opts.Fs,
		cfg:    opts.Config,
		log:    opts.Logger,
		stdout: opts.Stdout,
		dir:    opts.Dir,
		outDir: opts.OutDir,
		load:   opts.LoadPackages,
	}

	if r.fs == nil {
		r.fs = afero.NewOsFs()
	}

	if r.cfg == nil {
		r.cfg = config.Default()
	}

	if r.log == nil {
		r.log = logger.NewLogger(nil)
	}

	if r.stdout == nil {
		r.stdout = os.Stdout
	}

	if r.load == nil {
		r.load = analyze.Load
	}

	if r.outDir == "" {
		r.outDir = r.cfg.Output.Dir
	}

	return r
}

// reportDiagnostics logs every diagnostic of the units and reports whether
// any of them is an error.
func (r *Runner) reportDiagnostics(units []*Unit) bool {
	failed := false

	for _, u := range units {
		all := u.Plan.AllDiagnostics()
		for _, d := range all.All() {
			kv := []any{"source", u.Source, "code", d.Code, "pos", d.Pos.String()}
			if d.Enum != "" {
				kv = append(kv, "enum", d.Enum)
			}

			if d.Member != "" {
				kv = append(kv, "member", d.Member)
			}

			if len(d.Suggestions) > 0 {
				kv = append(kv, "suggestions", d.Suggestions)
			}

			switch d.Severity {
			case diagnostic.DiagnosticError:
				failed = true
				r.log.Error(d.Message, kv...)
			case diagnostic.DiagnosticWarning:
				r.log.Warn(d.Message, kv...)
			case diagnostic.DiagnosticInfo:
				r.log.Info(d.Message, kv...)
			}
		}
	}

	return failed
}
