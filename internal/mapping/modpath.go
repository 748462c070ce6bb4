package mapping

import (
	"errors"
	"fmt"
	"path"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/mod/modfile"
)

// ErrNoModule is returned when no go.mod encloses a directory.
var ErrNoModule = errors.New("no go.mod found")

// ResolvePackagePath derives the import path of dir from the nearest
// enclosing go.mod.
func ResolvePackagePath(fs afero.Fs, dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	for cur := abs; ; cur = filepath.Dir(cur) {
		gomod := filepath.Join(cur, "go.mod")

		data, err := afero.ReadFile(fs, gomod)
		if err == nil {
			modPath := modfile.ModulePath(data)
			if modPath == "" {
				return "", fmt.Errorf("%s: missing module directive", gomod)
			}

			rel, err := filepath.Rel(cur, abs)
			if err != nil {
				return "", err
			}

			if rel == "." {
				return modPath, nil
			}

			return path.Join(modPath, filepath.ToSlash(rel)), nil
		}

		if filepath.Dir(cur) == cur {
			return "", fmt.Errorf("%w above %s", ErrNoModule, dir)
		}
	}
}

// ResolvePackage fills f.PackagePath from go.mod when it is empty.
func ResolvePackage(fs afero.Fs, f *File) error {
	if f.PackagePath != "" {
		return nil
	}

	p, err := ResolvePackagePath(fs, f.OutputDir())
	if err != nil {
		return err
	}

	f.PackagePath = p

	return nil
}
