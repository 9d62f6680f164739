// Package appcontext provides the shared application context interface
// used by all commands, so command packages depend on an interface rather
// than on the concrete App.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/termipaper"
	"github.com/agentstation/termipaper/pkg/catalog"
)

// Interface defines what commands need from the application.
// The App struct from cmd/termipaper/app implements it.
type Interface interface {
	// Termipaper returns the session manager, creating it lazily.
	Termipaper() (termipaper.Termipaper, error)

	// Catalog returns the catalog resolved for this session.
	Catalog() (*catalog.Catalog, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
