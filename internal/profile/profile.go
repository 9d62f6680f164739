// Package profile manages the per-user profile: the catalogs the user has
// created, the activated one, and the owner identity shown by `info`.
package profile

import (
	"maps"
	"slices"
	"time"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// Database records a catalog directory known to the profile.
type Database struct {
	DateCreated string `json:"date_created" yaml:"date_created"`
}

// Owner identifies the person the catalogs belong to.
type Owner struct {
	Name        string `json:"name" yaml:"name"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
	Affiliation string `json:"affiliation,omitempty" yaml:"affiliation,omitempty"`
	Link        string `json:"link,omitempty" yaml:"link,omitempty"`
}

// Profile is the content of the profile file.
type Profile struct {
	Databases map[string]Database `json:"databases" yaml:"databases"`
	Owner     Owner               `json:"owner" yaml:"owner"`
	Activated string              `json:"activated,omitempty" yaml:"activated,omitempty"`
}

// New returns an empty profile.
func New() *Profile {
	return &Profile{Databases: make(map[string]Database)}
}

// Register records dir with a creation date of now. It reports whether dir
// was newly added; a known directory keeps its original date.
func (p *Profile) Register(dir string, now time.Time) bool {
	if p.Databases == nil {
		p.Databases = make(map[string]Database)
	}
	if _, ok := p.Databases[dir]; ok {
		return false
	}
	p.Databases[dir] = Database{DateCreated: now.Format(constants.DateFormat)}
	return true
}

// IsRegistered reports whether dir is known to the profile.
func (p *Profile) IsRegistered(dir string) bool {
	_, ok := p.Databases[dir]
	return ok
}

// Activate makes dir the default catalog, registering it if needed.
func (p *Profile) Activate(dir string, now time.Time) {
	p.Register(dir, now)
	p.Activated = dir
}

// Dirs returns the registered directories in sorted order.
func (p *Profile) Dirs() []string {
	return slices.Sorted(maps.Keys(p.Databases))
}

// SetOwner replaces the owner. A name is required.
func (p *Profile) SetOwner(o Owner) error {
	if o.Name == "" {
		return errors.NewValidationError("name", o.Name, "owner name is required")
	}
	p.Owner = o
	return nil
}
