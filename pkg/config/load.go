package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/verbose"
)

// ConfigFileNames are searched in the working directory, in order.
var ConfigFileNames = []string{".bundlestat.yml", ".bundlestat.yaml", ".bundlestat.toml"}

// LoadConfig loads configuration from the specified path or defaults.
//
// It performs the following operations:
//   - Step 1: Loads configPath, or the first of ConfigFileNames found in workDir
//   - Step 2: Resolves the extends chain of the loaded file
//   - Step 3: Overlays the result on the built-in defaults
//   - Step 4: Validates the merged configuration
//
// Parameters:
//   - configPath: path to the config file, or empty to search workDir
//   - workDir: directory searched for a config file
//
// Returns:
//   - *Config: the loaded and merged configuration
//   - error: any error encountered during loading or validation
func LoadConfig(configPath, workDir string) (*Config, error) {
	if configPath == "" {
		configPath = FindConfigFile(workDir)
	}

	cfg := loadDefaultConfig()
	if configPath != "" {
		verbose.Infof("Loading config from: %s", configPath)
		loaded, err := loadConfigFile(configPath, DefaultMaxConfigFileSize)
		if err != nil {
			return nil, err
		}
		loaded.Source = configPath

		resolved, err := processExtends(loaded, filepath.Dir(configPath), loaded, make(map[string]bool))
		if err != nil {
			return nil, fmt.Errorf("failed to process extends: %w", err)
		}
		cfg = mergeConfigs(cfg, resolved)
		cfg.Security = loaded.Security
	}

	if err := Validate(cfg).Err(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile returns the first config file present in dir, or "".
func FindConfigFile(dir string) string {
	if dir == "" {
		dir = "."
	}
	for _, name := range ConfigFileNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			verbose.Infof("Found local config: %s", path)
			return path
		}
	}
	return ""
}

// loadConfigFile reads a YAML or TOML config file with a size limit.
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
//
// Parameters:
//   - path: path to the config file; ".toml" selects TOML, anything else YAML
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - *Config: the parsed configuration
//   - error: when the file is too large, unreadable, or invalid
func loadConfigFile(path string, maxSize int64) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if info.Size() > maxSize {
		return nil, &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    path,
			Message:  fmt.Sprintf("config file too large: %d bytes (max %d bytes)", info.Size(), maxSize),
			Hint:     "Raise security.max_config_file_size in the root config",
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return decodeTOML(path, data)
	}
	return decodeYAML(path, data)
}

// decodeYAML parses YAML config data, rejecting unknown fields.
func decodeYAML(path string, data []byte) (*Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    path,
			Message:  fmt.Sprintf("invalid YAML: %v", err),
			Hint:     "Run 'bundlestat config template' for a list of valid keys",
		}
	}
	return &cfg, nil
}

// decodeTOML parses TOML config data, rejecting unknown keys.
func decodeTOML(path string, data []byte) (*Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    path,
			Message:  fmt.Sprintf("invalid TOML: %v", err),
		}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, &errors.ValidationError{
			Category: errors.ValidationCategoryConfig,
			Field:    path,
			Message:  fmt.Sprintf("unknown keys: %s", strings.Join(keys, ", ")),
			Hint:     "Run 'bundlestat config template' for a list of valid keys",
		}
	}
	return &cfg, nil
}

// validateExtendPath checks if an extend path is allowed based on security settings.
//
// Path traversal (..) and absolute paths are blocked unless the root config
// allows them.
func validateExtendPath(extend string, rootCfg *Config) error {
	if strings.Contains(extend, "..") && !rootCfg.AllowsPathTraversal() {
		return fmt.Errorf("path traversal not allowed in extends: '%s' - "+
			"to allow, add security.allow_path_traversal: true to your root config", extend)
	}
	if filepath.IsAbs(extend) && !rootCfg.AllowsAbsolutePaths() {
		return fmt.Errorf("absolute paths not allowed in extends: '%s' - "+
			"to allow, add security.allow_absolute_paths: true to your root config", extend)
	}
	return nil
}

// processExtends resolves the extends chain of cfg with cycle detection.
//
// Extended configs are merged in order, then cfg itself on top. "default"
// names the built-in configuration.
//
// Parameters:
//   - cfg: the configuration to process
//   - baseDir: base directory for resolving relative paths
//   - rootCfg: the root configuration containing security settings
//   - stack: configs currently being resolved
//
// Returns:
//   - *Config: the merged configuration with Extends cleared
//   - error: when a cycle is found, a path is not allowed, or a file cannot be loaded
func processExtends(cfg *Config, baseDir string, rootCfg *Config, stack map[string]bool) (*Config, error) {
	if len(cfg.Extends) == 0 {
		return cfg, nil
	}

	base := &Config{}
	for _, extend := range cfg.Extends {
		if extend == "default" {
			base = mergeConfigs(base, loadDefaultConfig())
			continue
		}

		if err := validateExtendPath(extend, rootCfg); err != nil {
			return nil, err
		}

		extendPath := extend
		if !filepath.IsAbs(extendPath) {
			extendPath = filepath.Join(baseDir, extend)
		}
		absPath, err := filepath.Abs(extendPath)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve extend path '%s': %w", extend, err)
		}
		if stack[absPath] {
			return nil, fmt.Errorf("cyclic extends detected at %s", extendPath)
		}
		stack[absPath] = true

		loaded, err := loadConfigFile(extendPath, rootCfg.GetMaxConfigFileSize())
		if err != nil {
			return nil, fmt.Errorf("failed to load extend '%s': %w", extend, err)
		}
		loaded.Security = nil

		loaded, err = processExtends(loaded, filepath.Dir(extendPath), rootCfg, stack)
		if err != nil {
			return nil, err
		}
		delete(stack, absPath)

		base = mergeConfigs(base, loaded)
		verbose.Printf("Extended from %q", extend)
	}

	result := mergeConfigs(base, cfg)
	result.Extends = nil
	return result, nil
}
