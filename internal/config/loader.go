package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

// Load builds the configuration. path names a YAML config file; when empty,
// DefaultFile is used if it exists.
func Load(fs afero.Fs, path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		if ok, _ := afero.Exists(fs, DefaultFile); ok {
			path = DefaultFile
		}
	}

	if path != "" {
		if err := k.Load(FileProvider(fs, path), YAML{}); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return transformEnvKey(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks the field constraints of cfg.
func Validate(cfg *Config) error {
	v := validator.New()
	if err := v.RegisterValidation("gofile", func(fl validator.FieldLevel) bool {
		return isGoFile(fl.Field().String())
	}); err != nil {
		return err
	}

	err := v.Struct(cfg)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}

	return errors.New(strings.Join(msgs, "; "))
}

// transformEnvKey maps OUTPUT_SUPPORT_FILE to output.support_file: the
// first segment is the section, the rest is the field name.
func transformEnvKey(s string) string {
	parts := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return r == '_'
	})

	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "." + strings.Join(parts[1:], "_")
	}
}
