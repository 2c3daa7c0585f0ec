package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoHome is returned when the HOME environment variable is unset or empty.
var ErrNoHome = errors.New("HOME environment variable is not set")

// archiveSubdir is where archive listings live, relative to HOME.
var archiveSubdir = []string{"Documents", "Archives", "Volumes"}

// Getenv looks up an environment variable. os.Getenv satisfies it.
type Getenv func(key string) string

// GetHome returns HOME or ErrNoHome. There is no fallback.
func GetHome(getenv Getenv) (string, error) {
	home := getenv("HOME")
	if home == "" {
		return "", ErrNoHome
	}
	return home, nil
}

// GetArchiveDir returns the archive directory:
//  1. archive_dir from the config file (if set, "~" expands to HOME)
//  2. $HOME/Documents/Archives/Volumes
//
// HOME is required in both cases. The directory is not created here.
func GetArchiveDir(getenv Getenv, cfg *Config) (string, error) {
	home, err := GetHome(getenv)
	if err != nil {
		return "", err
	}

	if cfg != nil && cfg.ArchiveDir != "" {
		return expandHome(cfg.ArchiveDir, home), nil
	}

	return filepath.Join(append([]string{home}, archiveSubdir...)...), nil
}

// EnsureArchiveDir creates the archive directory (and parents) if it doesn't exist.
func EnsureArchiveDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create archive directory: %w", err)
	}
	return nil
}

// IsDir reports whether path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// GetConfigPath returns the config file path: $ARCHIVE_CONFIG if set,
// otherwise $HOME/.config/archive/config.yaml.
func GetConfigPath(getenv Getenv) (string, error) {
	if path := getenv("ARCHIVE_CONFIG"); path != "" {
		return path, nil
	}

	home, err := GetHome(getenv)
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "archive", "config.yaml"), nil
}

func expandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home, path[2:])
	}
	return path
}
