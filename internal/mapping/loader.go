package mapping

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML descriptor file from the OS filesystem.
func LoadFile(path string) (*File, error) {
	return LoadFileFS(afero.NewOsFs(), path)
}

// LoadFileFS loads and parses a YAML descriptor file from fs.
// Positions of the loaded model refer to path.
func LoadFileFS(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f.Path = path
	setPositionFile(f, path)

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	err := yaml.Unmarshal(data, &f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse descriptor YAML: %w", err)
	}

	applyDefaults(&f)

	return &f, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(f *File) {
	if f.Version == "" {
		f.Version = "1"
	}

	for i := range f.Enums {
		if f.Enums[i].Underlying == "" {
			f.Enums[i].Underlying = "int"
		}
	}
}

func setPositionFile(f *File, path string) {
	for i := range f.Enums {
		e := &f.Enums[i]
		e.Pos.File = path

		for j := range e.Members {
			m := &e.Members[j]
			m.Pos.File = path

			for k := range m.Attrs {
				m.Attrs[k].Pos.File = path
			}
		}
	}
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(fs afero.Fs, f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal descriptor: %w", err)
	}

	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write descriptor file %s: %w", path, err)
	}

	return nil
}
