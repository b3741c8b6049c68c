// Package cmd implements the command-line interface for bundlestat.
//
// It provides commands for listing, exploring and inspecting the modules of a
// bundle stats file, plus configuration and version helpers.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/config"
	"github.com/ajxudir/bundlestat/pkg/errors"
	"github.com/ajxudir/bundlestat/pkg/verbose"
)

var exitFunc = os.Exit

var (
	verboseFlag     bool
	versionFlag     bool
	configFileFlag  string
	envFileFlags    []string
	skipBuildChecks bool
)

var loadConfigFunc = config.LoadConfig

var rootCmd = &cobra.Command{
	Use:   "bundlestat",
	Short: "Explore the modules of a JavaScript bundle",
	Long: `Filter and sort the modules listed in a bundle stats file by name,
weighted size, dependants and imports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verboseFlag {
			verbose.Enable()
		}
		if !skipBuildChecks {
			if warnings := GetBuildWarnings(); warnings != "" {
				fmt.Fprint(os.Stderr, warnings)
				fmt.Fprintln(os.Stderr)
			}
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if versionFlag {
			runVersion(cmd, args)
			return
		}
		_ = cmd.Help()
	},
}

// Execute runs the root command and exits with the appropriate code:
//   - 0: Success
//   - 2: Failure (unreadable stats file, write error)
//   - 3: Configuration, flag or stats validation error
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		errors.PrintErrorWithHints(os.Stderr, []error{err}, verbose.IsEnabled())
		code := errors.GetExitCode(err)
		verbose.Infof("Exit code %d: %v", code, err)
		stop()
		exitFunc(code)
	}
}

// ExecuteTest runs the root command for testing (returns error instead of exiting).
//
// Parameters:
//   - args: Command line arguments, without the program name
//
// Returns:
//   - error: Command execution error, or nil on success
func ExecuteTest(args ...string) error {
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose debug output")
	rootCmd.PersistentFlags().StringVarP(&configFileFlag, "config", "c", "", "Config file path (default: .bundlestat.yml in the current directory)")
	rootCmd.PersistentFlags().StringSliceVar(&envFileFlags, "env-file", nil, "Load environment variables from these files instead of .env")
	rootCmd.PersistentFlags().BoolVar(&skipBuildChecks, "skip-build-checks", false, "Skip build validation warnings (dev build, arch mismatch)")

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "v", false, "Show version information")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(uiCmd)
}

// loadEffectiveConfig loads the config file and applies environment overrides.
//
// It performs the following operations:
//   - Step 1: Loads --config, or the config file found in the working directory
//   - Step 2: Loads --env-file files (or .env) and applies BUNDLESTAT_* variables
//
// Returns:
//   - *config.Config: The effective configuration
//   - error: A validation error for bad settings, or a read error
func loadEffectiveConfig() (*config.Config, error) {
	workDir, err := os.Getwd()
	if err != nil {
		workDir = "."
	}

	cfg, err := loadConfigFunc(configFileFlag, workDir)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(cfg, workDir, envFileFlags...); err != nil {
		return nil, err
	}
	verbose.ConfigLoaded(cfg.Source, cfg.EnvFiles)
	return cfg, nil
}
