package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	// Library overrides the default checklist library location.
	Library string `toml:"library"`
	// DefaultCategory is the library category used when a command needs
	// one and none is given (e.g. "baseball").
	DefaultCategory string `toml:"default_category"`
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
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
	return filepath.Join(GetXDGConfigHome(), "checklister", "config.toml")
}

// GetLibraryPath returns the checklist library root, honoring the config
// override. The library is laid out as <category>/<year>/<release>.json.
func GetLibraryPath() string {
	config, err := LoadConfig()
	if err == nil && config.Library != "" {
		return config.Library
	}
	return filepath.Join(GetXDGDataHome(), "checklister", "library")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := &Config{}

	// Create the file
	file, err := os.Create(configPath)
	if err != nil {
		return nil, fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return nil, fmt.Errorf("error encoding config: %v", err)
	}

	return config, nil
}

// GetDefaultCategory returns the default category from config
func GetDefaultCategory() (string, error) {
	config, err := LoadConfig()
	if err != nil {
		return "", err
	}

	return config.DefaultCategory, nil
}

// SetLibrary sets the library override in the config
func SetLibrary(path string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.Library = path

	return saveConfig(config)
}

// SetDefaultCategory sets the default category in the config
func SetDefaultCategory(category string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultCategory = category

	return saveConfig(config)
}

// saveConfig writes the config back to the config file
func saveConfig(config *Config) error {
	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error opening config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
