// Package termipaper ties the catalog engine to the user profile: it decides
// which catalog directory a command works on and keeps the profile's record
// of catalogs up to date.
package termipaper

import (
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/internal/paths"
	"github.com/agentstation/termipaper/internal/profile"
	"github.com/agentstation/termipaper/pkg/catalog"
	"github.com/agentstation/termipaper/pkg/errors"
)

// DirSource tells where the catalog directory came from.
type DirSource string

// Directory sources, in precedence order.
const (
	SourceExplicit  DirSource = "explicit"
	SourceActivated DirSource = "activated"
	SourceDefault   DirSource = "default"
)

// Termipaper manages the catalog a session works on.
type Termipaper interface {
	// Dir returns the catalog directory and where it was resolved from.
	Dir() (string, DirSource, error)

	// Catalog opens the resolved catalog on first use.
	Catalog() (*catalog.Catalog, error)

	// Profile returns the user profile. A malformed profile file is logged
	// and treated as empty.
	Profile() (*profile.Profile, error)

	// Init creates a catalog at dir (the resolved directory when empty),
	// writes its index and registers it in the profile.
	Init(dir string) (string, error)

	// Activate makes dir (the default directory when empty) the catalog
	// used when no directory is given.
	Activate(dir string) (string, error)

	// SetOwner records the owner in the profile.
	SetOwner(owner profile.Owner) error
}

type termipaper struct {
	mu      sync.Mutex
	config  *config
	store   *profile.Store
	catalog *catalog.Catalog
}

// New creates a Termipaper instance with the given options.
func New(opts ...Option) (Termipaper, error) {
	cfg := &config{
		fs:  afero.NewOsFs(),
		now: time.Now,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying options: %w", err)
		}
	}
	if cfg.logger == nil {
		nop := zerolog.Nop()
		cfg.logger = &nop
	}
	if cfg.defaultDir == "" {
		cfg.defaultDir = paths.DefaultCatalogDir()
	}
	if cfg.profilePath == "" {
		cfg.profilePath = paths.ProfilePath()
	}

	return &termipaper{
		config: cfg,
		store:  profile.NewStore(cfg.profilePath, profile.WithFs(cfg.fs), profile.WithLogger(cfg.logger)),
	}, nil
}

func (t *termipaper) Dir() (string, DirSource, error) {
	if t.config.dir != "" {
		dir, err := paths.Expand(t.config.dir)
		return dir, SourceExplicit, err
	}

	p, err := t.Profile()
	if err != nil {
		return "", "", err
	}
	if p.Activated != "" {
		return p.Activated, SourceActivated, nil
	}

	dir, err := paths.Expand(t.config.defaultDir)
	return dir, SourceDefault, err
}

func (t *termipaper) Catalog() (*catalog.Catalog, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.catalog != nil {
		return t.catalog, nil
	}

	dir, source, err := t.Dir()
	if err != nil {
		return nil, err
	}
	t.config.logger.Debug().Str("dir", dir).Str("source", string(source)).Msg("opening catalog")

	cat, err := t.open(dir)
	if err != nil {
		return nil, err
	}
	t.catalog = cat
	return cat, nil
}

func (t *termipaper) open(dir string) (*catalog.Catalog, error) {
	return catalog.Open(dir, catalog.WithFs(t.config.fs), catalog.WithLogger(t.config.logger))
}

func (t *termipaper) Profile() (*profile.Profile, error) {
	p, err := t.store.Load()
	if err != nil {
		var ce *errors.ConfigError
		if errors.As(err, &ce) && errors.IsParse(err) {
			t.config.logger.Warn().Err(err).Str("path", t.store.Path()).Msg("ignoring malformed profile")
			return profile.New(), nil
		}
		return nil, err
	}
	return p, nil
}

func (t *termipaper) Init(dir string) (string, error) {
	if dir == "" {
		resolved, _, err := t.Dir()
		if err != nil {
			return "", err
		}
		dir = resolved
	}
	dir, err := paths.Expand(dir)
	if err != nil {
		return "", err
	}

	cat, err := t.open(dir)
	if err != nil {
		return "", err
	}
	// an existing index is kept as is
	exists, err := afero.Exists(t.config.fs, catalog.IndexPath(cat.Dir()))
	if err != nil {
		return "", errors.WrapIO("read", catalog.IndexPath(cat.Dir()), err)
	}
	if !exists {
		if err := catalog.SaveIndex(t.config.fs, cat.Dir(), catalog.NewIndex()); err != nil {
			return "", err
		}
	}

	if _, err := t.updateProfile(func(p *profile.Profile) error {
		if p.Register(cat.Dir(), t.config.now()) {
			t.config.logger.Info().Str("dir", cat.Dir()).Msg("registered catalog")
		}
		return nil
	}); err != nil {
		return "", err
	}
	return cat.Dir(), nil
}

func (t *termipaper) Activate(dir string) (string, error) {
	if dir == "" {
		dir = t.config.defaultDir
	}
	dir, err := paths.Expand(dir)
	if err != nil {
		return "", err
	}

	cat, err := t.open(dir)
	if err != nil {
		return "", err
	}

	if _, err := t.updateProfile(func(p *profile.Profile) error {
		p.Activate(cat.Dir(), t.config.now())
		return nil
	}); err != nil {
		return "", err
	}

	t.mu.Lock()
	t.catalog = nil
	t.mu.Unlock()
	return cat.Dir(), nil
}

func (t *termipaper) SetOwner(owner profile.Owner) error {
	_, err := t.updateProfile(func(p *profile.Profile) error {
		return p.SetOwner(owner)
	})
	return err
}

// updateProfile applies fn to the current profile, starting over from an
// empty one when the file is malformed.
func (t *termipaper) updateProfile(fn func(*profile.Profile) error) (*profile.Profile, error) {
	p, err := t.Profile()
	if err != nil {
		return nil, err
	}
	if err := fn(p); err != nil {
		return nil, err
	}
	if err := t.store.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}
