package analyze

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/tools/go/packages"

	"enumconv/internal/diagnostic"
	"enumconv/internal/mapping"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// ErrNoPackages is returned when the patterns match nothing.
var ErrNoPackages = errors.New("no packages matched")

// Result is the descriptor model extracted from one package.
type Result struct {
	PkgPath     string
	File        *mapping.File
	Diagnostics *diagnostic.Diagnostics
}

// Load loads the packages matching patterns relative to dir and extracts
// their //enumconv:generate enums. Packages without enums are skipped.
func Load(ctx context.Context, dir string, patterns ...string) ([]Result, error) {
	cfg := &packages.Config{
		Context: ctx,
		Mode:    LoadMode,
		Dir:     dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoPackages, patterns)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %w", errors.Join(errs...))
	}

	var results []Result

	for _, pkg := range pkgs {
		f, res := FromPackage(&Source{
			Fset:  pkg.Fset,
			Files: pkg.Syntax,
			Pkg:   pkg.Types,
			Info:  pkg.TypesInfo,
		})

		if len(f.Enums) == 0 && res.IsValid() {
			continue
		}

		results = append(results, Result{PkgPath: pkg.PkgPath, File: f, Diagnostics: res})
	}

	return results, nil
}
