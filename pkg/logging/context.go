package logging

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const loggerKey contextKey = iota

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// WithField adds a single field to the logger in the context.
func WithField(ctx context.Context, key string, value any) context.Context {
	logger := FromContext(ctx).With().Interface(key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithCatalog adds the catalog directory to the context logger.
func WithCatalog(ctx context.Context, dir string) context.Context {
	logger := FromContext(ctx).With().Str("catalog", dir).Logger()
	return WithLogger(ctx, &logger)
}

// WithCategory adds a category path to the context logger.
func WithCategory(ctx context.Context, path []string) context.Context {
	logger := FromContext(ctx).With().Str("category", "/"+strings.Join(path, "/")).Logger()
	return WithLogger(ctx, &logger)
}

// WithEntry adds an entry identifier to the context logger.
func WithEntry(ctx context.Context, id string) context.Context {
	logger := FromContext(ctx).With().Str("id", id).Logger()
	return WithLogger(ctx, &logger)
}
