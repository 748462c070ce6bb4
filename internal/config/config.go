// Package config loads enumconv settings from defaults, an optional
// .enumconv.yaml file and ENUMCONV_* environment variables, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// DefaultFile is looked up in the working directory when no config file is
// given explicitly.
const DefaultFile = ".enumconv.yaml"

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "ENUMCONV_"

// Config is the root of the configuration.
type Config struct {
	Output   Output   `koanf:"output" yaml:"output"`
	Generate Generate `koanf:"generate" yaml:"generate"`
	Log      Log      `koanf:"log" yaml:"log"`
}

// Output controls where and under which names files are written.
type Output struct {
	// Suffix of generated enum files.
	Suffix string `koanf:"suffix" yaml:"suffix" validate:"required,endswith=.go"`
	// SupportFile is the per-package support file name. Empty disables it.
	SupportFile string `koanf:"support_file" yaml:"support_file" validate:"omitempty,gofile"`
	// Dir overrides the output directory of every input.
	Dir string `koanf:"dir" yaml:"dir,omitempty"`
}

// Generate tunes the generation run.
type Generate struct {
	// Parallel bounds concurrent enum generation. Zero means GOMAXPROCS.
	Parallel int `koanf:"parallel" yaml:"parallel" validate:"gte=0"`
	// Comments adds doc comments to generated functions.
	Comments bool `koanf:"comments" yaml:"comments"`
}

// Log configures the logger.
type Log struct {
	Level string `koanf:"level" yaml:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `koanf:"json" yaml:"json"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: Output{
			Suffix:      "_enumconv.go",
			SupportFile: "enumconv_support.go",
		},
		Generate: Generate{
			Comments: true,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// Workers returns the effective parallelism.
func (c *Config) Workers() int {
	if c.Generate.Parallel > 0 {
		return c.Generate.Parallel
	}

	return runtime.GOMAXPROCS(0)
}

// String renders the configuration for debug logs.
func (c *Config) String() string {
	return fmt.Sprintf("output.suffix=%s output.support_file=%s output.dir=%s generate.parallel=%d "+
		"generate.comments=%t log.level=%s log.json=%t",
		c.Output.Suffix, c.Output.SupportFile, c.Output.Dir, c.Generate.Parallel,
		c.Generate.Comments, c.Log.Level, c.Log.JSON)
}

func isGoFile(name string) bool {
	return filepath.Base(name) == name && filepath.Ext(name) == ".go"
}
