package infra

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog/log"
)

// ResolveDataDir returns the per-user writable directory that holds the
// storage file, creating it on first run. The installed program directory may
// not be writable, so the store lives under the user profile:
// %LOCALAPPDATA%\ShopManagement on Windows, ~/.shopmanagement elsewhere.
// Falls back to the working directory when the preferred location cannot be
// created.
func ResolveDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("could not resolve home directory, using working directory")
		return "."
	}

	var dir string
	if runtime.GOOS == "windows" {
		dir = filepath.Join(home, "AppData", "Local", "ShopManagement")
	} else {
		dir = filepath.Join(home, ".shopmanagement")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warn().Err(err).Str("dir", dir).Msg("could not create data directory, using working directory")
		return "."
	}
	return dir
}
