package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a config file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// FormatForPath picks the syntax from the file extension; anything that
// is not .yaml/.yml is read as TOML.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// Load reads and parses a configuration file from the given path
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
	}
	defer file.Close()

	cfg, err := LoadFromReader(file, FormatForPath(path))
	if err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// LoadFromReader reads and parses a configuration from an io.Reader
func LoadFromReader(r io.Reader, format Format) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]interface{}
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	}

	config, err := fromSections(raw)
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// fromSections maps the generic document onto Config. Section names are
// free-form, so the top level cannot be decoded into a fixed struct.
func fromSections(raw map[string]interface{}) (*Config, error) {
	config := &Config{Sections: map[string]*UserConfig{}}

	for name, value := range raw {
		section, ok := value.(map[string]interface{})
		if !ok {
			return nil, errorf("top-level key %q must be a section", name)
		}

		if name == APISectionName {
			api := &APIConfig{}
			var err error
			if api.URL, err = stringField(name, section, "url"); err != nil {
				return nil, err
			}
			if api.DefaultServer, err = stringField(name, section, "default-server"); err != nil {
				return nil, err
			}
			if api.DefaultUser, err = stringField(name, section, "default-user"); err != nil {
				return nil, err
			}
			if v, ok := section["insecure"]; ok {
				b, ok := v.(bool)
				if !ok {
					return nil, errorf("[%s] insecure must be a boolean", name)
				}
				api.Insecure = b
			}
			config.API = api
			continue
		}

		user := &UserConfig{}
		var err error
		if user.User, err = stringField(name, section, "user"); err != nil {
			return nil, err
		}
		if user.Key, err = stringField(name, section, "key"); err != nil {
			return nil, err
		}
		if user.Zones, err = listField(name, section, "zones"); err != nil {
			return nil, err
		}
		config.Sections[name] = user
	}

	return config, nil
}

func stringField(section string, values map[string]interface{}, key string) (string, error) {
	v, ok := values[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", errorf("[%s] %s must be a string", section, key)
	}
	return s, nil
}

func listField(section string, values map[string]interface{}, key string) ([]string, error) {
	v, ok := values[key]
	if !ok || v == nil {
		return nil, nil
	}
	items, ok := v.([]interface{})
	if !ok {
		return nil, errorf("[%s] %s must be a list", section, key)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errorf("[%s] %s must contain only strings", section, key)
		}
		out = append(out, s)
	}
	return out, nil
}
