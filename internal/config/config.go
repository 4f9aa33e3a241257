// Package config loads the application configuration from a YAML file.
// Game rules (arena size, speeds, damage rates) are fixed constants and
// deliberately not configurable; config covers only ambient concerns:
// where the roster database lives, where portraits are stored, and the
// default music state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the application-level configuration.
type Config struct {
	// DatabasePath is the SQLite roster database file.
	DatabasePath string `yaml:"database"`
	// AssetsDir holds portrait images and the optional bgm.mp3.
	AssetsDir string `yaml:"assets"`
	// PortraitInbox is the directory watched for dropped portrait photos.
	PortraitInbox string `yaml:"portrait_inbox"`
	// Music enables background music at startup.
	Music bool `yaml:"music"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DatabasePath:  "players.db",
		AssetsDir:     "assets",
		PortraitInbox: "assets/inbox",
		Music:         true,
	}
}

// Load reads the configuration.
// Search order: customPath -> ./arena.yaml -> built-in default.
// A missing ./arena.yaml is not an error; a present but malformed one is.
func Load(customPath string) (Config, error) {
	cfg := Default()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile("arena.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read arena.yaml: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse arena.yaml: %w", err)
	}
	return cfg, nil
}
