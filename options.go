package termipaper

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Option is a function that configures a Termipaper instance.
type Option func(*config) error

type config struct {
	dir         string
	defaultDir  string
	profilePath string
	fs          afero.Fs
	logger      *zerolog.Logger
	now         func() time.Time
}

// WithDir selects the catalog directory explicitly, overriding the activated one.
func WithDir(dir string) Option {
	return func(c *config) error {
		c.dir = dir
		return nil
	}
}

// WithDefaultDir overrides the directory used when nothing is given or activated.
func WithDefaultDir(dir string) Option {
	return func(c *config) error {
		c.defaultDir = dir
		return nil
	}
}

// WithProfilePath overrides the profile file location.
func WithProfilePath(path string) Option {
	return func(c *config) error {
		c.profilePath = path
		return nil
	}
}

// WithFs sets the filesystem for catalogs and the profile.
func WithFs(fsys afero.Fs) Option {
	return func(c *config) error {
		c.fs = fsys
		return nil
	}
}

// WithLogger sets the logger passed down to the catalog and profile store.
func WithLogger(logger *zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithClock sets the time source used for profile creation dates.
func WithClock(now func() time.Time) Option {
	return func(c *config) error {
		c.now = now
		return nil
	}
}
