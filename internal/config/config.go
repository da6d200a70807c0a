package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/freecell/internal/freecell"
)

const (
	DefaultOpenPiles    = 4
	DefaultCascadePiles = 8
)

// Config represents the application configuration
type Config struct {
	OpenPiles    int    `toml:"open_piles"`
	CascadePiles int    `toml:"cascade_piles"`
	Color        bool   `toml:"color"`
	Seed         uint64 `toml:"seed"` // 0 deals a random game
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		OpenPiles:    DefaultOpenPiles,
		CascadePiles: DefaultCascadePiles,
		Color:        true,
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetXDGStateHome returns XDG_STATE_HOME or default path
func GetXDGStateHome() string {
	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return xdgState
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "state")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "freecell", "config.toml")
}

// GetLogPath returns the path to the debug log
func GetLogPath() string {
	return filepath.Join(GetXDGStateHome(), "freecell", "debug.log")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := SaveConfig(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	// Missing keys keep their defaults
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

// SaveConfig writes config to the config file
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// Validate checks that the pile counts describe a playable game
func (c *Config) Validate() error {
	_, err := freecell.New(c.OpenPiles, c.CascadePiles, freecell.WithSeed(1))
	return err
}

// SetLayout stores the default number of open and cascade piles
func SetLayout(openPiles, cascadePiles int) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.OpenPiles = openPiles
	config.CascadePiles = cascadePiles
	if err := config.Validate(); err != nil {
		return err
	}

	return SaveConfig(config)
}
