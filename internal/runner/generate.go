package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"enumconv/internal/gen"
	"enumconv/internal/plan"
)

// Output is one generated file at its destination path.
type Output struct {
	Path    string
	Content []byte
}

type job struct {
	unit *Unit
	enum *plan.EnumPlan // nil for the support file
}

// Generate renders every generatable enum of the units, at most
// config.Generate.Parallel at a time. Outputs are sorted by path. Rendering
// errors of different enums are joined; cancellation stops the run.
func (r *Runner) Generate(ctx context.Context, units []*Unit) ([]Output, error) {
	var jobs []job

	for _, u := range units {
		enums := u.Plan.Generatable()
		for _, ep := range enums {
			jobs = append(jobs, job{unit: u, enum: ep})
		}

		if len(enums) > 0 && r.cfg.Output.SupportFile != "" {
			jobs = append(jobs, job{unit: u})
		}
	}

	var (
		mu      sync.Mutex
		outputs []Output
		errs    []error
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers())

	for _, j := range jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			file, err := r.render(j)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", j.unit.Source, err))
				return nil
			}

			outputs = append(outputs, Output{Path: filepath.Join(j.unit.Dir, file.Filename), Content: file.Content})

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	slices.SortFunc(outputs, func(a, b Output) int { return strings.Compare(a.Path, b.Path) })

	for _, o := range outputs {
		r.log.Debug("generated", "file", o.Path, "bytes", len(o.Content))
	}

	return outputs, errors.Join(errs...)
}

func (r *Runner) render(j job) (*gen.GeneratedFile, error) {
	g := gen.NewGenerator(gen.GeneratorConfig{
		GenerateComments: r.cfg.Generate.Comments,
		SupportFile:      r.cfg.Output.SupportFile,
		DebugDir:         j.unit.Dir,
		Fs:               r.fs,
	})

	if j.enum == nil {
		return g.GenerateSupport(j.unit.Plan.Package)
	}

	return g.GenerateEnum(j.enum)
}

// Write stores outputs on the runner filesystem, grouped by directory.
func (r *Runner) Write(outputs []Output) error {
	byDir := map[string][]gen.GeneratedFile{}

	var dirs []string

	for _, o := range outputs {
		dir := filepath.Dir(o.Path)
		if _, ok := byDir[dir]; !ok {
			dirs = append(dirs, dir)
		}

		byDir[dir] = append(byDir[dir], gen.GeneratedFile{Filename: filepath.Base(o.Path), Content: o.Content})
	}

	for _, dir := range dirs {
		if err := gen.WriteFiles(r.fs, byDir[dir], dir); err != nil {
			return err
		}

		r.log.Info("wrote files", "dir", dir, "count", len(byDir[dir]))
	}

	return nil
}

// Gen loads, generates and writes the inputs. Enums without structural
// errors are written even when others fail; the returned error then wraps
// ErrDiagnostics.
func (r *Runner) Gen(ctx context.Context, inputs []string) error {
	units, err := r.Load(ctx, inputs)
	if err != nil {
		return err
	}

	failed := r.reportDiagnostics(units)

	outputs, genErr := r.Generate(ctx, units)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := r.Write(outputs); err != nil {
		return err
	}

	if failed {
		genErr = errors.Join(genErr, ErrDiagnostics)
	}

	return genErr
}
