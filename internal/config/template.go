package config

import (
	_ "embed"
)

//go:embed template.toml
var tomlTemplate string

//go:embed template.yaml
var yamlTemplate string

// Template returns a commented starter configuration in format.
func Template(format Format) string {
	if format == FormatYAML {
		return yamlTemplate
	}
	return tomlTemplate
}
