package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/dnsimple/dnsimple"
)

// repoSlug is the GitHub repository releases are published to
const repoSlug = "s0up4200/dnsimple"

var (
	appVersion = "dev"
	buildTime  = "unknown"

	checkOnly bool
)

// SetVersion records the build information injected by main
func SetVersion(version, built string) {
	appVersion = version
	buildTime = built
	rootCmd.Version = version
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dnsimple %s\n", appVersion)
		fmt.Fprintf(out, "Build time: %s\n", buildTime)
		fmt.Fprintf(out, "Client library: %s (API %s)\n", dnsimple.Version, dnsimple.APIVersion)
		fmt.Fprintf(out, "Platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update to the latest release",
	Args:  cobra.NoArgs,
	RunE:  runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd, updateCmd)

	updateCmd.Flags().BoolVar(&checkOnly, "check", false, "only check whether an update is available")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repoSlug))
	if err != nil {
		return fmt.Errorf("failed to check for updates: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s", runtime.GOOS, runtime.GOARCH)
	}

	newer, err := isNewer(appVersion, latest.Version())
	if err != nil {
		return err
	}
	if !newer {
		fmt.Fprintf(out, "dnsimple %s is up to date\n", appVersion)
		return nil
	}
	if checkOnly {
		fmt.Fprintf(out, "dnsimple %s is available (current: %s)\n", latest.Version(), appVersion)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().Str("version", latest.Version()).Str("asset", latest.AssetName).Msg("Downloading update")
	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(out, "Updated to dnsimple %s\n", latest.Version())
	return nil
}

// isNewer reports whether latest is a greater version than current.
// Development builds are never updated in place.
func isNewer(current, latest string) (bool, error) {
	currentVersion, err := semver.ParseTolerant(current)
	if err != nil {
		return false, fmt.Errorf("cannot update a development build (%s)", current)
	}
	latestVersion, err := semver.ParseTolerant(latest)
	if err != nil {
		return false, fmt.Errorf("invalid release version %q: %w", latest, err)
	}
	return latestVersion.GT(currentVersion), nil
}
