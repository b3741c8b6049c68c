package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ajxudir/bundlestat/pkg/config"
	"github.com/ajxudir/bundlestat/pkg/display"
)

var (
	configTemplateStdout bool
	configTemplatePath   string
)

var writeFileFunc = os.WriteFile

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show, validate or create configuration",
	Long:  `Show, validate or create .bundlestat.yml configuration files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long:  `Show the configuration after defaults, extends, .env and BUNDLESTAT_* variables are applied.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configDefaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the built-in configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.GetDefaultConfig())
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Long:  `Load the configuration file and report unknown keys and invalid values.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigValidate,
}

var configTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "Create a .bundlestat.yml template",
	Args:  cobra.NoArgs,
	RunE:  runConfigTemplate,
}

func init() {
	configTemplateCmd.Flags().BoolVar(&configTemplateStdout, "stdout", false, "Print the template instead of writing a file")
	configTemplateCmd.Flags().StringVar(&configTemplatePath, "path", ".bundlestat.yml", "Where to write the template")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configDefaultsCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configTemplateCmd)
}

// runConfigShow prints the effective configuration as YAML.
func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("# Source: %s\n", source)
	for _, f := range cfg.EnvFiles {
		fmt.Printf("# Env: %s\n", f)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// runConfigValidate loads the configuration and reports the outcome.
//
// Returns:
//   - error: The validation error; it maps to exit code 3
func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadEffectiveConfig()
	if err != nil {
		return err
	}

	source := cfg.Source
	if source == "" {
		source = "built-in defaults"
	}
	fmt.Printf("%s Configuration valid: %s\n", display.IconCheck, source)
	return nil
}

// runConfigTemplate writes the template config.
//
// The file is created with 0600 permissions and never overwrites an
// existing file.
func runConfigTemplate(cmd *cobra.Command, args []string) error {
	template := config.GetTemplateConfig()
	if configTemplateStdout {
		fmt.Print(template)
		return nil
	}

	if _, err := os.Stat(configTemplatePath); err == nil {
		return fmt.Errorf("config file already exists: %s", configTemplatePath)
	}
	if err := writeFileFunc(configTemplatePath, []byte(template), 0600); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Printf("Created configuration template: %s\n", configTemplatePath)
	return nil
}
