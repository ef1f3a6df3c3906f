// Package paths resolves the configuration directories used by the
// graymatter CLI, following the XDG base directory specification.
package paths

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// ConfigHome returns the XDG configuration home directory.
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the directory holding the graymatter config file.
func ConfigDir(appName string) string {
	return filepath.Join(xdg.ConfigHome, appName)
}
