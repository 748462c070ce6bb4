package runner

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"enumconv/internal/mapping"
	"enumconv/internal/plan"
)

// skippedDirs are never descended into while globbing.
var skippedDirs = map[string]bool{
	".git":         true,
	"vendor":       true,
	"node_modules": true,
}

// IsDescriptor reports whether an input names YAML descriptor files rather
// than a Go package pattern.
func IsDescriptor(input string) bool {
	ext := path.Ext(filepath.ToSlash(input))

	return ext == ".yaml" || ext == ".yml"
}

// Load plans every input. YAML inputs may be doublestar globs such as
// "**/*.enumconv.yaml"; everything else is a Go package pattern.
func (r *Runner) Load(ctx context.Context, inputs []string) ([]*Unit, error) {
	var (
		descriptors []string
		patterns    []string
	)

	for _, in := range inputs {
		if !IsDescriptor(in) {
			patterns = append(patterns, in)
			continue
		}

		matches, err := r.glob(in)
		if err != nil {
			return nil, err
		}

		if len(matches) == 0 {
			return nil, fmt.Errorf("no descriptor files match %q", in)
		}

		descriptors = append(descriptors, matches...)
	}

	slices.Sort(descriptors)
	descriptors = slices.Compact(descriptors)

	var units []*Unit

	for _, p := range descriptors {
		u, err := r.loadDescriptor(p)
		if err != nil {
			return nil, err
		}

		units = append(units, u)
	}

	if len(patterns) > 0 {
		pkgUnits, err := r.loadPackages(ctx, patterns)
		if err != nil {
			return nil, err
		}

		units = append(units, pkgUnits...)
	}

	return units, nil
}

// glob expands a doublestar pattern against the runner filesystem.
func (r *Runner) glob(pattern string) ([]string, error) {
	pattern = path.Clean(filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid glob pattern %q", pattern)
	}

	base, _ := doublestar.SplitPattern(pattern)
	if !strings.ContainsAny(pattern, "*?[{") {
		if ok, _ := afero.Exists(r.fs, filepath.FromSlash(pattern)); ok {
			return []string{filepath.FromSlash(pattern)}, nil
		}

		return nil, nil
	}

	var matches []string

	err := afero.Walk(r.fs, filepath.FromSlash(base), func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			return err
		}

		if info.IsDir() {
			if skippedDirs[info.Name()] && p != filepath.FromSlash(base) {
				return filepath.SkipDir
			}

			return nil
		}

		ok, err := doublestar.Match(pattern, filepath.ToSlash(p))
		if err != nil {
			return err
		}

		if ok {
			matches = append(matches, p)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("globbing %q: %w", pattern, err)
	}

	return matches, nil
}

func (r *Runner) loadDescriptor(p string) (*Unit, error) {
	f, err := mapping.LoadFileFS(r.fs, p)
	if err != nil {
		return nil, err
	}

	if r.outDir != "" {
		f.Dir = r.outDir
	}

	if err := mapping.ResolvePackage(r.fs, f); err != nil {
		r.log.Warn("package path unresolved; all types are treated as foreign", "source", p, "error", err)
	}

	pl := plan.Build(f, r.planOptions())
	r.log.Debug("planned descriptor", "source", p, "enums", len(pl.Enums))

	return &Unit{Source: p, SourceDir: filepath.Dir(p), Dir: f.OutputDir(), Plan: pl}, nil
}

func (r *Runner) loadPackages(ctx context.Context, patterns []string) ([]*Unit, error) {
	results, err := r.load(ctx, r.dir, patterns...)
	if err != nil {
		return nil, err
	}

	units := make([]*Unit, 0, len(results))

	for _, res := range results {
		srcDir := res.File.OutputDir()
		if r.outDir != "" {
			res.File.Dir = r.outDir
		}

		pl := plan.BuildWith(res.File, r.planOptions(), res.Diagnostics)
		r.log.Debug("planned package", "source", res.PkgPath, "enums", len(pl.Enums))

		units = append(units, &Unit{Source: res.PkgPath, SourceDir: srcDir, Dir: res.File.OutputDir(), Plan: pl})
	}

	if len(units) == 0 {
		r.log.Warn("no //enumconv:generate types found", "patterns", strings.Join(patterns, " "))
	}

	return units, nil
}

func (r *Runner) planOptions() plan.Options {
	return plan.Options{Suffix: r.cfg.Output.Suffix}
}
