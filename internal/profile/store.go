package profile

import (
	"io/fs"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/agentstation/termipaper/internal/atomicfile"
	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Store reads and writes the profile file.
type Store struct {
	fs     afero.Fs
	path   string
	logger zerolog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithFs sets the filesystem the profile lives on.
func WithFs(fsys afero.Fs) Option {
	return func(s *Store) {
		if fsys != nil {
			s.fs = fsys
		}
	}
}

// WithLogger sets the store's logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = *logger
		}
	}
}

// NewStore returns a store for the profile file at path.
func NewStore(path string, opts ...Option) *Store {
	s := &Store{
		fs:     afero.NewOsFs(),
		path:   path,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Path returns the profile file location.
func (s *Store) Path() string { return s.path }

// Load reads the profile. A missing file is an empty profile; a malformed
// one is reported as a ConfigError.
func (s *Store) Load() (*Profile, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Debug().Str("path", s.path).Msg("no profile yet")
			return New(), nil
		}
		return nil, errors.NewConfigError("profile", "cannot read "+s.path, errors.WrapIO("read", s.path, err))
	}

	p := New()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, errors.NewConfigError("profile", "malformed "+s.path, errors.WrapParse("yaml", s.path, err))
	}
	if p.Databases == nil {
		p.Databases = make(map[string]Database)
	}
	return p, nil
}

// Save writes p, creating the configuration directory if needed.
func (s *Store) Save(p *Profile) error {
	dir := filepath.Dir(s.path)
	if err := s.fs.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.WrapIO("create", dir, err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return errors.WrapParse("yaml", s.path, err)
	}
	if err := atomicfile.Write(s.fs, s.path, constants.ProfileTempPattern, data); err != nil {
		return err
	}
	s.logger.Debug().Str("path", s.path).Int("databases", len(p.Databases)).Msg("saved profile")
	return nil
}
