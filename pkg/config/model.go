// Package config handles configuration loading, validation, and merging for bundlestat.
//
// Configuration is read from .bundlestat.yml, .bundlestat.yaml or .bundlestat.toml
// in the working directory, or from the file given with --config. A config may
// extend other configs (or the built-in "default") and only overrides the
// settings it names. Environment variables, optionally loaded from .env files,
// are applied last.
//
// Nothing is ever written back: config values only seed the initial table state.
package config

// Config is the root configuration structure.
type Config struct {
	Extends  []string     `yaml:"extends,omitempty" toml:"extends,omitempty"`
	Stats    StatsCfg     `yaml:"stats" toml:"stats"`
	Defaults DefaultsCfg  `yaml:"defaults" toml:"defaults"`
	Output   OutputCfg    `yaml:"output" toml:"output"`
	Watch    WatchCfg     `yaml:"watch" toml:"watch"`
	Security *SecurityCfg `yaml:"security,omitempty" toml:"security,omitempty"`

	// Source is the file the config was loaded from, empty for built-in defaults.
	Source string `yaml:"-" toml:"-"`

	// EnvFiles lists the .env files applied on top of the file settings.
	EnvFiles []string `yaml:"-" toml:"-"`
}

// StatsCfg locates the stats file.
//
// Fields:
//   - Path: Stats file used when no argument is given
//   - MaxFileSize: Largest stats file accepted, in bytes (0 = default)
type StatsCfg struct {
	Path        string `yaml:"path,omitempty" toml:"path,omitempty"`
	MaxFileSize int64  `yaml:"max_file_size,omitempty" toml:"max_file_size,omitempty"`
}

// DefaultsCfg holds the initial table state.
//
// Fields:
//   - Sort: Initial sort column, comparator and direction
//   - Filters: Initial filter patch, keyed like --filter (e.g., "cumulativeSizeMin")
type DefaultsCfg struct {
	Sort    SortCfg           `yaml:"sort" toml:"sort"`
	Filters map[string]string `yaml:"filters,omitempty" toml:"filters,omitempty"`
}

// SortCfg is the initial sort spec in text form.
type SortCfg struct {
	Field     string `yaml:"field,omitempty" toml:"field,omitempty"`
	FieldType string `yaml:"field_type,omitempty" toml:"field_type,omitempty"`
	Direction string `yaml:"direction,omitempty" toml:"direction,omitempty"`
}

// OutputCfg controls how listings are rendered.
//
// Fields:
//   - Format: table, json, csv or xml
//   - HumanSizes: Render byte counts as KiB/MiB in tables
//   - MaxNameWidth: Truncate module names wider than this in tables (0 = never)
type OutputCfg struct {
	Format       string `yaml:"format,omitempty" toml:"format,omitempty"`
	HumanSizes   *bool  `yaml:"human_sizes,omitempty" toml:"human_sizes,omitempty"`
	MaxNameWidth int    `yaml:"max_name_width,omitempty" toml:"max_name_width,omitempty"`
}

// WatchCfg controls reloading of the stats file in the interactive table.
//
// Fields:
//   - Enabled: Reload whenever the stats file changes
//   - DebounceMS: Quiet period after the last change before reloading
//   - Patterns: Glob patterns of file names that trigger a reload besides the stats file
type WatchCfg struct {
	Enabled    bool     `yaml:"enabled,omitempty" toml:"enabled,omitempty"`
	DebounceMS int      `yaml:"debounce_ms,omitempty" toml:"debounce_ms,omitempty"`
	Patterns   []string `yaml:"patterns,omitempty" toml:"patterns,omitempty"`
}

// SecurityCfg holds security-related configuration options.
//
// These settings are only honoured in the root config file, not in configs
// pulled in through extends.
type SecurityCfg struct {
	// AllowPathTraversal permits the use of ".." in extends paths.
	AllowPathTraversal bool `yaml:"allow_path_traversal,omitempty" toml:"allow_path_traversal,omitempty"`

	// AllowAbsolutePaths permits absolute paths in extends.
	AllowAbsolutePaths bool `yaml:"allow_absolute_paths,omitempty" toml:"allow_absolute_paths,omitempty"`

	// MaxConfigFileSize overrides the default 1MB limit for config files (in bytes).
	MaxConfigFileSize int64 `yaml:"max_config_file_size,omitempty" toml:"max_config_file_size,omitempty"`
}

// DefaultMaxConfigFileSize is the largest config file read (1MB).
const DefaultMaxConfigFileSize int64 = 1024 * 1024

// AllowsPathTraversal reports whether extends paths may contain "..".
func (c *Config) AllowsPathTraversal() bool {
	return c.Security != nil && c.Security.AllowPathTraversal
}

// AllowsAbsolutePaths reports whether extends paths may be absolute.
func (c *Config) AllowsAbsolutePaths() bool {
	return c.Security != nil && c.Security.AllowAbsolutePaths
}

// GetMaxConfigFileSize returns the configured max config file size or the default.
func (c *Config) GetMaxConfigFileSize() int64 {
	if c.Security != nil && c.Security.MaxConfigFileSize > 0 {
		return c.Security.MaxConfigFileSize
	}
	return DefaultMaxConfigFileSize
}

// GetMaxStatsFileSize returns the configured max stats file size, or 0 for the loader default.
func (c *Config) GetMaxStatsFileSize() int64 {
	if c.Stats.MaxFileSize > 0 {
		return c.Stats.MaxFileSize
	}
	return 0
}

// UseHumanSizes reports whether tables render byte counts in IEC units.
//
// Defaults to true when unset.
func (c *Config) UseHumanSizes() bool {
	return c.Output.HumanSizes == nil || *c.Output.HumanSizes
}

// DefaultDebounceMS is used when watch.debounce_ms is not set.
const DefaultDebounceMS = 200

// GetDebounceMS returns the watch debounce in milliseconds.
func (c *Config) GetDebounceMS() int {
	if c.Watch.DebounceMS > 0 {
		return c.Watch.DebounceMS
	}
	return DefaultDebounceMS
}
