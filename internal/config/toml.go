// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Tutor    TutorConfig    `toml:"tutor"`
	Practice PracticeConfig `toml:"practice"`
	Profile  ProfileConfig  `toml:"profile"`
}

// TutorConfig maps general tutor settings.
type TutorConfig struct {
	Layout     *string `toml:"layout"`
	Theme      *string `toml:"theme"`
	CatalogDir *string `toml:"catalog-dir"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Words      *int     `toml:"words"`
	WordList   *string  `toml:"wordlist"`
	FocusWeak  *bool    `toml:"focus-weak"`
	WeakTop    *int     `toml:"weak-top"`
	WeakFactor *float64 `toml:"weak-factor"`
}

// ProfileConfig maps profile view settings.
type ProfileConfig struct {
	CurveWindow *int `toml:"curve-window"`
	Last        *int `toml:"last"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
