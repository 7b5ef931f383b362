package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/trickster/internal/card"
)

// Config represents the application configuration
type Config struct {
	DefaultTrump string `toml:"default_trump"`
	Color        bool   `toml:"color"`
	LogLevel     string `toml:"log_level"`
	Theme        Theme  `toml:"theme"`
}

// Theme holds hex colours used when rendering cards
type Theme struct {
	Red   string `toml:"red"`
	Black string `toml:"black"`
	Trump string `toml:"trump"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		DefaultTrump: "spades",
		Color:        true,
		LogLevel:     "warn",
		Theme: Theme{
			Red:   "#d7263d",
			Black: "#e0e0e0",
			Trump: "#f4c430",
		},
	}
}

// TrumpSuit parses DefaultTrump
func (c *Config) TrumpSuit() (card.Suit, error) {
	s, err := card.ParseSuit(c.DefaultTrump)
	if err != nil {
		return 0, fmt.Errorf("error reading default_trump: %w", err)
	}
	return s, nil
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

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "trickster", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults if missing
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		config := Default()
		if err := save(configPath, config); err != nil {
			return nil, err
		}
		return config, nil
	}

	// Start from defaults so keys missing from the file keep sane values
	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if _, err := config.TrumpSuit(); err != nil {
		return nil, err
	}

	return config, nil
}

// SetDefaultTrump sets the default trump suit in the config
func SetDefaultTrump(suit card.Suit) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultTrump = suit.String()

	return save(GetConfigFilePath(), config)
}

func save(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}
