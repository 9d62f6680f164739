// Package paths resolves the per-user locations termipaper reads and writes,
// following the XDG base directory conventions on every platform.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"

	"github.com/agentstation/termipaper/pkg/constants"
	"github.com/agentstation/termipaper/pkg/errors"
)

// DataDir returns the application data directory.
func DataDir() string {
	return filepath.Join(xdg.DataHome, constants.AppName)
}

// ConfigDir returns the application configuration directory.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, constants.AppName)
}

// DefaultCatalogDir returns the catalog used when none is given or activated.
func DefaultCatalogDir() string {
	return filepath.Join(DataDir(), constants.PapersDirName)
}

// ProfilePath returns the location of the user profile file.
func ProfilePath() string {
	return filepath.Join(ConfigDir(), constants.ProfileFileName)
}

// Reload re-reads the XDG environment variables.
func Reload() {
	xdg.Reload()
}

// Expand resolves a leading "~" and returns an absolute, cleaned path.
func Expand(path string) (string, error) {
	if path == "" {
		return "", errors.NewValidationError("path", path, "must not be empty")
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.WrapIO("resolve", path, err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.WrapIO("resolve", path, err)
	}
	return abs, nil
}
