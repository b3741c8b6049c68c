package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ajxudir/bundlestat/pkg/display"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/bundlestat/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run:   runVersion,
}

// runVersion prints the build target, runtime platform (if different), Go
// version, build date, git commit and version to stdout.
func runVersion(cmd *cobra.Command, args []string) {
	buildOS, buildArch := getBuildTarget()
	fmt.Printf("  Build:   %s/%s\n", buildOS, buildArch)
	if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
		fmt.Printf("  Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	fmt.Printf("  Go:      %s\n", runtime.Version())
	if BuildTime != "" {
		fmt.Printf("  Date:    %s\n", BuildTime)
	}
	if GitCommit != "" {
		fmt.Printf("  Git:     %s\n", GitCommit)
	}
	fmt.Printf("  Version: %s\n", Version)
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values when the ldflags were not set.
func getBuildTarget() (string, string) {
	buildOS, buildArch := BuildOS, BuildArch
	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}
	return buildOS, buildArch
}

// GetBuildWarnings returns the warnings printed before every command.
//
// Returns:
//   - string: An architecture mismatch or dev build warning; empty for a
//     matching release build
func GetBuildWarnings() string {
	var warnings string

	if BuildOS != "" || BuildArch != "" {
		buildOS, buildArch := getBuildTarget()
		if buildOS != runtime.GOOS || buildArch != runtime.GOARCH {
			warnings += fmt.Sprintf("%s  Architecture mismatch: binary built for %s/%s but running on %s/%s\n",
				display.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
		}
	}

	if Version == "dev" {
		warnings += display.IconWarn + "  Development build: this is an unreleased version without a version tag.\n"
	}
	return warnings
}
