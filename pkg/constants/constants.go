// Package constants provides shared constants used throughout the termipaper codebase.
// This includes file names, file permissions, and application identifiers that
// must stay consistent between the engine, the profile layer, and the CLI.
package constants

// Application identifiers
const (
	// AppName is the application name, used for directory and file naming
	AppName = "termipaper"

	// EnvPrefix is the prefix for environment variables read by the CLI
	EnvPrefix = "TERMIPAPER"
)

// File name constants
const (
	// IndexFileName is the fixed name of the index file inside every category directory
	IndexFileName = "index.termipaper.yml"

	// IndexTempPattern is the pattern for temporary index files written before an atomic rename
	IndexTempPattern = ".index.termipaper.*.tmp"

	// ProfileFileName is the name of the user profile file inside the config directory
	ProfileFileName = "config.yml"

	// ProfileTempPattern is the pattern for temporary profile files
	ProfileTempPattern = ".config.*.tmp"

	// PapersDirName is the name of the default catalog directory under the data directory
	PapersDirName = "papers"

	// AppConfigName is the base name of the optional application config file in $HOME
	AppConfigName = ".termipaper"
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Format constants
const (
	// DateFormat is the format of dates recorded in the user profile
	DateFormat = "2006-01-02"
)
