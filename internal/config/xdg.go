// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appDir = "bornomala"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultCatalogDir returns the directory checked for a user-supplied lesson catalog.
func DefaultCatalogDir() string {
	return filepath.Join(XDGConfigHome(), appDir, "catalog")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appDir, "bornomala.db")
}

// DefaultEventLogPath returns the JSONL diagnostics log path.
func DefaultEventLogPath() string {
	return filepath.Join(XDGDataHome(), appDir, "events.jsonl")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), appDir, "config.toml")
}
