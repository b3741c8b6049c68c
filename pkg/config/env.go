package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	bserrors "github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/warnings"
)

// Environment variables that override file settings.
const (
	EnvStats  = "BUNDLESTAT_STATS"
	EnvOutput = "BUNDLESTAT_OUTPUT"
	EnvSort   = "BUNDLESTAT_SORT"
	EnvWatch  = "BUNDLESTAT_WATCH"
)

// ApplyEnv loads .env files and applies BUNDLESTAT_* variables to cfg.
//
// It performs the following operations:
//   - Step 1: Loads envFiles, or ".env" in workDir when none are given; a
//     missing default .env is not an error. Variables already set in the
//     process environment win over .env values.
//   - Step 2: Applies BUNDLESTAT_STATS, BUNDLESTAT_OUTPUT, BUNDLESTAT_WATCH
//   - Step 3: Applies BUNDLESTAT_SORT as "field" or "field:direction"
//   - Step 4: Re-validates the result
//
// Parameters:
//   - cfg: configuration to update in place
//   - workDir: directory holding the default .env
//   - envFiles: explicit .env files (from --env-file)
//
// Returns:
//   - error: when an explicit env file cannot be read or a value is invalid
func ApplyEnv(cfg *Config, workDir string, envFiles ...string) error {
	if len(envFiles) == 0 {
		def := filepath.Join(workDir, ".env")
		if err := godotenv.Load(def); err == nil {
			cfg.EnvFiles = append(cfg.EnvFiles, def)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return bserrors.NewConfigValidationError(def, err.Error())
		}
	} else {
		if err := godotenv.Load(envFiles...); err != nil {
			return err
		}
		cfg.EnvFiles = append(cfg.EnvFiles, envFiles...)
	}

	warnUnknownEnv()

	if v := strings.TrimSpace(os.Getenv(EnvStats)); v != "" {
		cfg.Stats.Path = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.Output.Format = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvWatch)); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return bserrors.NewConfigValidationError(EnvWatch, "expected true or false, got "+strconv.Quote(v))
		}
		cfg.Watch.Enabled = enabled
	}
	if v := strings.TrimSpace(os.Getenv(EnvSort)); v != "" {
		field, dir, _ := strings.Cut(v, ":")
		cfg.Defaults.Sort = mergeSort(cfg.Defaults.Sort, SortCfg{Field: field, Direction: dir})
	}

	return Validate(cfg).Err()
}

// warnUnknownEnv warns about BUNDLESTAT_* variables that are not recognized.
func warnUnknownEnv() {
	known := map[string]bool{EnvStats: true, EnvOutput: true, EnvSort: true, EnvWatch: true}
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, "BUNDLESTAT_") && !known[name] {
			warnings.Warnf("unknown environment variable %s", name)
		}
	}
}
