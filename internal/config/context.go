package config

import "context"

type contextKey struct{}

// ContextWithConfig stores cfg in ctx.
func ContextWithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the configuration stored in ctx, or Default.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok && cfg != nil {
		return cfg
	}

	return Default()
}
