package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultConfigYAML string

//go:embed template.yml
var templateConfigYAML string

// loadDefaultConfig loads the embedded default configuration.
//
// If unmarshaling fails, returns an empty config.
//
// Returns:
//   - *Config: the default configuration
func loadDefaultConfig() *Config {
	var cfg Config
	if err := yaml.Unmarshal([]byte(defaultConfigYAML), &cfg); err == nil {
		return &cfg
	}
	return &Config{}
}

// GetDefaultConfig returns the embedded default configuration YAML.
func GetDefaultConfig() string {
	return defaultConfigYAML
}

// GetTemplateConfig returns the embedded template configuration YAML.
//
// Useful for generating starter configuration files for users.
func GetTemplateConfig() string {
	return templateConfigYAML
}
