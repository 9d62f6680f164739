package catalog

import (
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Option configures a Catalog at Open.
type Option func(*options)

type options struct {
	fs     afero.Fs
	logger zerolog.Logger
}

func defaultOptions() *options {
	return &options{
		fs:     afero.NewOsFs(),
		logger: zerolog.Nop(),
	}
}

// WithFs sets the filesystem the catalog stores its directories on.
// Defaults to the operating system filesystem.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) {
		if fsys != nil {
			o.fs = fsys
		}
	}
}

// WithLogger sets the logger for engine diagnostics. Defaults to a no-op logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = *logger
		}
	}
}

// TargetOption selects the category an operation applies to.
type TargetOption func(*target)

type target struct {
	path []string
}

// In targets the sub-category reached by following path from the root.
// Without it, operations apply to the top-level category.
func In(path ...string) TargetOption {
	return func(t *target) {
		t.path = append(t.path[:0], path...)
	}
}

func applyTarget(opts []TargetOption) target {
	var t target
	for _, opt := range opts {
		opt(&t)
	}
	return t
}
