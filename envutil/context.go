package envutil

import (
	"context"
	"maps"
)

type envContextKey struct{}

// WithEnvOverride makes readers given ctx see value for key instead of the
// process environment.
func WithEnvOverride(ctx context.Context, key string, value string) context.Context {
	return WithEnvOverrides(ctx, map[string]string{key: value})
}

// WithEnvOverrides is WithEnvOverride for several keys at once. Later
// overrides win over earlier ones.
func WithEnvOverrides(ctx context.Context, values map[string]string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}

	merged := make(map[string]string)

	if current, ok := ctx.Value(envContextKey{}).(map[string]string); ok {
		maps.Copy(merged, current)
	}

	maps.Copy(merged, values)

	return context.WithValue(ctx, envContextKey{}, merged)
}

func getEnvOverride(ctx context.Context, key string) (string, bool) {
	if ctx == nil {
		return "", false
	}

	values, ok := ctx.Value(envContextKey{}).(map[string]string)
	if !ok {
		return "", false
	}

	val, ok := values[key]

	return val, ok
}
