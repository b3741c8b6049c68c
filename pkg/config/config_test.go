package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/filtering"
	"github.com/ajxudir/bundlestat/pkg/modules"
	"github.com/ajxudir/bundlestat/pkg/sorting"
	"github.com/ajxudir/bundlestat/pkg/warnings"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// TestLoadConfigDefaults tests LoadConfig without any config file.
//
// It verifies:
//   - The built-in defaults are returned
//   - Source is empty
func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("", t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, cfg.Source)
	assert.Equal(t, "stats.json", cfg.Stats.Path)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.True(t, cfg.UseHumanSizes())
	assert.Equal(t, 80, cfg.Output.MaxNameWidth)
	assert.Equal(t, DefaultDebounceMS, cfg.GetDebounceMS())

	spec, err := cfg.SortSpec()
	require.NoError(t, err)
	assert.Equal(t, sorting.DefaultSpec, spec)
	assert.True(t, cfg.Criteria().IsEmpty())
}

// TestLoadConfigYAML tests loading a YAML config from the working directory.
//
// It verifies:
//   - .bundlestat.yml is found automatically
//   - Settings override the defaults, unset settings keep them
//   - A new sort field derives its field type
//   - Default filters become criteria
func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".bundlestat.yml", `
stats:
  path: dist/stats.json
defaults:
  sort:
    field: cumulativeSize
    direction: desc
  filters:
    moduleName: node_modules
    cumulativeSizeMin: "1024"
output:
  human_sizes: false
`)

	cfg, err := LoadConfig("", dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, ".bundlestat.yml"), cfg.Source)
	assert.Equal(t, "dist/stats.json", cfg.Stats.Path)
	assert.Equal(t, "table", cfg.Output.Format)
	assert.False(t, cfg.UseHumanSizes())

	spec, err := cfg.SortSpec()
	require.NoError(t, err)
	assert.Equal(t, sorting.Spec{Field: modules.FieldCumulativeSize, FieldType: sorting.FieldTypeNumeric, Direction: sorting.Descending}, spec)

	c := cfg.Criteria()
	assert.Equal(t, "node_modules", c.ModuleName.Pattern)
	assert.Equal(t, filtering.Int64(1024), c.CumulativeSize.Min)
}

// TestLoadConfigTOML tests loading a TOML config given explicitly.
func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.toml", `
[output]
format = "json"

[watch]
enabled = true
debounce_ms = 50
patterns = ["*.json"]

[defaults.filters]
requiredByCountMax = "3"
`)

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 50, cfg.GetDebounceMS())
	assert.Equal(t, []string{"*.json"}, cfg.Watch.Patterns)
	assert.Equal(t, filtering.Int64(3), cfg.Criteria().RequiredByCount.Max)
}

// TestLoadConfigUnknownKeys tests that typos are reported for both formats.
func TestLoadConfigUnknownKeys(t *testing.T) {
	dir := t.TempDir()
	yamlPath := writeFile(t, dir, "bad.yml", "output:\n  formatt: json\n")
	tomlPath := writeFile(t, dir, "bad.toml", "[output]\nformatt = \"json\"\n")

	for _, path := range []string{yamlPath, tomlPath} {
		_, err := LoadConfig(path, "")
		require.Error(t, err, path)
		ve, ok := errors.IsValidationError(err)
		require.True(t, ok, path)
		assert.Equal(t, errors.ValidationCategoryConfig, ve.Category)
		assert.Equal(t, errors.ExitConfigError, errors.GetExitCode(err))
	}
}

// TestLoadConfigInvalidValues tests Validate through LoadConfig.
//
// It verifies:
//   - Unknown sort fields, filter keys and formats are rejected
//   - Several problems are reported together
func TestLoadConfigInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "unknown sort field",
			content: "defaults:\n  sort:\n    field: weight\n",
			want:    []string{"defaults.sort.field"},
		},
		{
			name:    "numeric name sort",
			content: "defaults:\n  sort:\n    field: name\n    field_type: numeric\n",
			want:    []string{"defaults.sort"},
		},
		{
			name:    "unknown filter and format",
			content: "defaults:\n  filters:\n    weight: \"1\"\noutput:\n  format: yaml\n",
			want:    []string{"defaults.filters.weight", "output.format"},
		},
		{
			name:    "bad glob",
			content: "watch:\n  patterns: [\"[\"]\n",
			want:    []string{"watch.patterns"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "cfg.yml", tt.content)
			_, err := LoadConfig(path, "")
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}

// TestLoadConfigExtends tests the extends chain.
//
// It verifies:
//   - Extended settings apply and the extending file wins
//   - Filters merge key by key and "" removes an inherited key
//   - Cycles and path traversal are rejected
func TestLoadConfigExtends(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yml", `
defaults:
  filters:
    moduleName: src
    requirementsCountMin: "2"
output:
  format: csv
`)
	path := writeFile(t, dir, "child.yml", `
extends: [default, base.yml]
defaults:
  filters:
    moduleName: ""
output:
  format: xml
`)

	cfg, err := LoadConfig(path, "")
	require.NoError(t, err)
	assert.Equal(t, "xml", cfg.Output.Format)
	assert.Equal(t, map[string]string{"requirementsCountMin": "2"}, cfg.Defaults.Filters)
	assert.Nil(t, cfg.Extends)

	writeFile(t, dir, "a.yml", "extends: [b.yml]\n")
	writeFile(t, dir, "b.yml", "extends: [a.yml]\n")
	_, err = LoadConfig(filepath.Join(dir, "a.yml"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cyclic extends")

	trav := writeFile(t, dir, "trav.yml", "extends: [../x.yml]\n")
	_, err = LoadConfig(trav, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "path traversal not allowed")
}

// TestLoadConfigTooLarge tests the config file size limit.
func TestLoadConfigTooLarge(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "big.yml", "# padding\n")

	_, err := loadConfigFile(path, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file too large")
}

// TestApplyEnv tests environment overrides.
//
// It verifies:
//   - .env in the working directory is loaded
//   - Process environment wins over .env
//   - BUNDLESTAT_SORT accepts field:direction
//   - Invalid values are rejected
func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "BUNDLESTAT_STATS=from-dotenv.json\nBUNDLESTAT_OUTPUT=csv\n")
	t.Setenv(EnvStats, "")
	t.Setenv(EnvOutput, "json")
	t.Setenv(EnvSort, "size:desc")
	t.Setenv(EnvWatch, "true")
	require.NoError(t, os.Unsetenv(EnvStats))

	cfg := loadDefaultConfig()
	require.NoError(t, ApplyEnv(cfg, dir))

	assert.Equal(t, "from-dotenv.json", cfg.Stats.Path)
	assert.Equal(t, "json", cfg.Output.Format)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, []string{filepath.Join(dir, ".env")}, cfg.EnvFiles)

	spec, err := cfg.SortSpec()
	require.NoError(t, err)
	assert.Equal(t, sorting.Spec{Field: modules.FieldSize, FieldType: sorting.FieldTypeNumeric, Direction: sorting.Descending}, spec)

	t.Setenv(EnvWatch, "sometimes")
	assert.Error(t, ApplyEnv(loadDefaultConfig(), t.TempDir()))

	assert.Error(t, ApplyEnv(loadDefaultConfig(), dir, filepath.Join(dir, "missing.env")))
}

// TestApplyEnvUnknownVariable tests the warning for unrecognized BUNDLESTAT_* variables.
func TestApplyEnvUnknownVariable(t *testing.T) {
	t.Setenv("BUNDLESTAT_COLOUR", "never")

	var buf bytes.Buffer
	restore := warnings.SetWarningWriter(&buf)
	defer restore()

	require.NoError(t, ApplyEnv(loadDefaultConfig(), t.TempDir()))
	assert.Contains(t, buf.String(), "unknown environment variable BUNDLESTAT_COLOUR")
}

// TestMergeConfigs tests the behavior of mergeConfigs.
func TestMergeConfigs(t *testing.T) {
	yes := true
	base := &Config{
		Stats:    StatsCfg{Path: "a.json"},
		Defaults: DefaultsCfg{Sort: SortCfg{Field: "size", FieldType: "numeric", Direction: "descending"}, Filters: map[string]string{"moduleName": "x"}},
		Watch:    WatchCfg{Patterns: []string{"*.json"}},
	}
	custom := &Config{
		Defaults: DefaultsCfg{Sort: SortCfg{Field: "name"}, Filters: map[string]string{"cumulativeSizeMax": "10"}},
		Output:   OutputCfg{HumanSizes: &yes},
		Watch:    WatchCfg{Patterns: []string{"*.json", "*.yml"}},
	}

	merged := mergeConfigs(base, custom)
	assert.Equal(t, "a.json", merged.Stats.Path)
	assert.Equal(t, SortCfg{Field: "name", Direction: "descending"}, merged.Defaults.Sort)
	assert.Equal(t, map[string]string{"moduleName": "x", "cumulativeSizeMax": "10"}, merged.Defaults.Filters)
	assert.Equal(t, []string{"*.json", "*.yml"}, merged.Watch.Patterns)
	assert.True(t, merged.UseHumanSizes())

	assert.Equal(t, map[string]string{"moduleName": "x"}, base.Defaults.Filters)
	assert.Equal(t, []string{"*.json"}, base.Watch.Patterns)
	assert.Same(t, base, mergeConfigs(base, nil))
}

// TestTemplates tests that the embedded configs parse and validate.
func TestTemplates(t *testing.T) {
	for _, content := range []string{GetDefaultConfig(), GetTemplateConfig()} {
		cfg, err := decodeYAML("embedded", []byte(content))
		require.NoError(t, err)
		assert.False(t, Validate(mergeConfigs(loadDefaultConfig(), cfg)).HasErrors())
	}
}
