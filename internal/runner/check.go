package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/afero"
)

// diffContext is the number of context lines in unified diffs.
const diffContext = 3

// Check regenerates the inputs in memory and prints a unified diff for every
// output that differs from the file on disk. It returns ErrStale when
// anything differs.
func (r *Runner) Check(ctx context.Context, inputs []string) error {
	units, err := r.Load(ctx, inputs)
	if err != nil {
		return err
	}

	failed := r.reportDiagnostics(units)

	outputs, genErr := r.Generate(ctx, units)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	stale := 0

	for _, o := range outputs {
		diff, err := r.diff(o)
		if err != nil {
			return err
		}

		if diff == "" {
			continue
		}

		stale++

		if _, err := fmt.Fprint(r.stdout, diff); err != nil {
			return err
		}
	}

	var errs []error
	if genErr != nil {
		errs = append(errs, genErr)
	}

	if failed {
		errs = append(errs, ErrDiagnostics)
	}

	if stale > 0 {
		r.log.Warn("stale generated files", "count", stale)
		errs = append(errs, fmt.Errorf("%w: %d file(s)", ErrStale, stale))
	} else {
		r.log.Info("generated files are up to date", "count", len(outputs))
	}

	return errors.Join(errs...)
}

// diff returns the unified diff from the file on disk to o, or "" when they
// are identical. A missing file diffs against nothing.
func (r *Runner) diff(o Output) (string, error) {
	current, err := afero.ReadFile(r.fs, o.Path)
	missing := errors.Is(err, fs.ErrNotExist)

	if err != nil && !missing {
		return "", fmt.Errorf("reading %s: %w", o.Path, err)
	}

	if !missing && bytes.Equal(current, o.Content) {
		return "", nil
	}

	name := strings.TrimPrefix(filepath.ToSlash(o.Path), "/")

	from := "a/" + name
	if missing {
		from = "/dev/null"
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        splitLines(string(current)),
		B:        splitLines(string(o.Content)),
		FromFile: from,
		ToFile:   "b/" + name,
		Context:  diffContext,
	})
}

// splitLines keeps line terminators, as difflib expects.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}

	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}
