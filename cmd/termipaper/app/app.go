// Package app provides the application context and dependency management
// for the termipaper CLI. It centralizes configuration, logging and the
// lazily created catalog manager shared by every command.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/internal/appcontext"
	"github.com/agentstation/termipaper/internal/paths"
	"github.com/agentstation/termipaper/pkg/catalog"
	"github.com/agentstation/termipaper/pkg/errors"
)

// App represents the termipaper application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// extra options applied when the manager is created
	tpOpts []termipaper.Option

	// Manager instance (lazy-initialized, singleton)
	mu sync.RWMutex
	tp termipaper.Termipaper
}

var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig("")
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the requested output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Termipaper returns the catalog manager, creating it lazily if needed.
func (a *App) Termipaper() (termipaper.Termipaper, error) {
	a.mu.RLock()
	if a.tp != nil {
		tp := a.tp
		a.mu.RUnlock()
		return tp, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.tp != nil {
		return a.tp, nil
	}

	opts, err := a.buildOptions()
	if err != nil {
		return nil, err
	}
	tp, err := termipaper.New(opts...)
	if err != nil {
		return nil, errors.WrapResource("create", "termipaper", "", err)
	}

	a.tp = tp
	return tp, nil
}

// Catalog returns the catalog selected for this invocation.
func (a *App) Catalog() (*catalog.Catalog, error) {
	tp, err := a.Termipaper()
	if err != nil {
		return nil, err
	}
	return tp.Catalog()
}

// buildOptions constructs manager options from the app configuration.
func (a *App) buildOptions() ([]termipaper.Option, error) {
	opts := []termipaper.Option{termipaper.WithLogger(a.logger)}

	if a.config.Dir != "" {
		dir, err := paths.Expand(a.config.Dir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, termipaper.WithDir(dir))
	}
	if a.config.Profile != "" {
		path, err := paths.Expand(a.config.Profile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, termipaper.WithProfilePath(path))
	}

	return append(opts, a.tpOpts...), nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithTermipaper sets a custom manager instance (useful for testing).
func WithTermipaper(tp termipaper.Termipaper) Option {
	return func(a *App) error {
		a.tp = tp
		return nil
	}
}

// WithTermipaperOptions appends options used when the manager is created.
func WithTermipaperOptions(opts ...termipaper.Option) Option {
	return func(a *App) error {
		a.tpOpts = append(a.tpOpts, opts...)
		return nil
	}
}
