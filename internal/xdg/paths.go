// Package xdg resolves popkit's on-disk locations.
package xdg

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
)

const appDirName = ".popkit"

// ConfigFileName is the name of the configuration file.
const ConfigFileName = "config.toml"

// Home returns the popkit home directory (~/.popkit), honoring the
// POPKIT_HOME override.
func Home() (string, error) {
	if override := os.Getenv("POPKIT_HOME"); override != "" {
		return override, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve home directory")
	}

	return filepath.Join(home, appDirName), nil
}

// GlobalConfigPath returns the path of the global configuration file.
func GlobalConfigPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ConfigFileName), nil
}

// ProjectConfigPath returns the path of the per-project configuration
// file under workDir.
func ProjectConfigPath(workDir string) string {
	return filepath.Join(workDir, appDirName, ConfigFileName)
}

// ExpandHome expands a leading ~/ in path to the user's home directory.
// A leading ~/.popkit resolves through Home so the POPKIT_HOME override
// applies to it. Paths without the prefix are returned unchanged.
func ExpandHome(path string) string {
	if rest, ok := strings.CutPrefix(path, "~/"+appDirName); ok && (rest == "" || rest[0] == '/') {
		if home, err := Home(); err == nil {
			return filepath.Join(home, rest)
		}
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}

		if path == "~" {
			return home
		}

		return filepath.Join(home, path[2:])
	}

	return path
}

// EnsureParentDir creates the parent directory of path if needed.
func EnsureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "failed to create directory")
	}

	return nil
}
