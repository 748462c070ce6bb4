package config

import (
	"errors"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// YAML is a koanf parser backed by gopkg.in/yaml.v3.
type YAML struct{}

// Unmarshal parses YAML into a nested map.
func (YAML) Unmarshal(b []byte) (map[string]any, error) {
	var out map[string]any
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, err
	}

	if out == nil {
		out = map[string]any{}
	}

	return out, nil
}

// Marshal renders a nested map as YAML.
func (YAML) Marshal(m map[string]any) ([]byte, error) {
	return yaml.Marshal(m)
}

// File is a koanf provider reading one file from an afero filesystem.
type File struct {
	fs   afero.Fs
	path string
}

// FileProvider returns a provider for path on fs.
func FileProvider(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

// ReadBytes returns the raw file contents.
func (f *File) ReadBytes() ([]byte, error) {
	data, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", f.path, err)
	}

	return data, nil
}

// Read is not supported; the file needs a parser.
func (f *File) Read() (map[string]any, error) {
	return nil, errors.New("config file provider does not support Read")
}
