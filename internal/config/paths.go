package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// EnvConfigPath names the config file when no --config flag is given.
	EnvConfigPath = "PDNS_CLI_CONF_PATH"
	// EnvConfigDir overrides the config directory.
	EnvConfigDir = "PDNS_CLI_CONFIG_DIR"
	// DefaultConfigDir is the directory under the user config dir.
	DefaultConfigDir = "pdns-cli"
	// DefaultConfigName is the default config file name
	DefaultConfigName = "config.toml"
)

// GetConfigDir returns the pdns-cli configuration directory path
// Defaults to $XDG_CONFIG_HOME/pdns-cli unless overridden by environment
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(base, DefaultConfigDir), nil
}

// DefaultConfigPath returns the path of the default config file.
func DefaultConfigPath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return DefaultConfigName
	}
	return filepath.Join(dir, DefaultConfigName)
}

// FindConfig picks the config file to load. An explicit path (from the
// --config flag or PDNS_CLI_CONF_PATH) must exist; otherwise the default
// file is used when present. An empty result means no config file.
func FindConfig(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", fmt.Errorf("config file not found: %s", explicit)
			}
			return "", fmt.Errorf("failed to stat config file %s: %w", explicit, err)
		}
		return explicit, nil
	}

	path := DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	}
	return path, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	return configDir, nil
}
