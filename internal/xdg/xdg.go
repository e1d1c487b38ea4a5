// Package xdg provides helpers to resolve XDG Base Directory paths for vagas.
// Configuration lives under the config dir; the file-based keyring fallback
// (used where no OS credential store is available) lives under the state dir.
package xdg

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used under each XDG base directory.
const AppName = "vagas"

// ConfigDir returns the XDG config directory for vagas.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/vagas when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for vagas.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/vagas when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(envKey, homeRel string) (string, error) {
	base := os.Getenv(envKey)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, AppName)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
