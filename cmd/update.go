package cmd

import (
	"fmt"
	"runtime"

	"github.com/blang/semver"
	"github.com/creativeprojects/go-selfupdate"
	"github.com/spf13/cobra"

	"github.com/s0up4200/ubergo/config"
)

var updateRepository string

var versionCmd = &cobra.Command{
	Use:               "version",
	Short:             "Print version information",
	PersistentPreRunE: noConfig,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "ubergo %s (built %s, %s/%s)\n", version, buildTime, runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:               "update",
	Short:             "Update ubergo to the latest release",
	PersistentPreRunE: noConfig,
	RunE:              runUpdate,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateRepository, "repository", "", "GitHub owner/name to update from")
}

// currentVersion parses the stamped version, rejecting development builds
func currentVersion(v string) (semver.Version, error) {
	parsed, err := semver.ParseTolerant(v)
	if err != nil {
		return semver.Version{}, fmt.Errorf("cannot update a development build (version %q)", v)
	}
	return parsed, nil
}

func runUpdate(cmd *cobra.Command, args []string) error {
	current, err := currentVersion(version)
	if err != nil {
		return err
	}

	repo := updateRepository
	if repo == "" {
		// The update command may run without credentials, so a load
		// failure only means falling back to the default repository.
		if c, err := config.Load(cfgFile); err == nil {
			repo = c.Update.Repository
		}
	}
	if repo == "" {
		repo = "s0up4200/ubergo"
	}

	ctx := cmd.Context()
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return fmt.Errorf("failed to detect latest release: %w", err)
	}
	if !found {
		return fmt.Errorf("no release found for %s/%s in %s", runtime.GOOS, runtime.GOARCH, repo)
	}

	latestVersion, err := semver.ParseTolerant(latest.Version())
	if err != nil {
		return fmt.Errorf("invalid release version %q: %w", latest.Version(), err)
	}
	if latestVersion.LTE(current) {
		fmt.Fprintf(cmd.OutOrStdout(), "ubergo %s is up to date\n", current)
		return nil
	}

	exe, err := selfupdate.ExecutablePath()
	if err != nil {
		return fmt.Errorf("could not locate executable path: %w", err)
	}

	logger.Info().
		Str("from", current.String()).
		Str("to", latestVersion.String()).
		Msg("Updating ubergo")

	if err := selfupdate.UpdateTo(ctx, latest.AssetURL, latest.AssetName, exe); err != nil {
		return fmt.Errorf("failed to update binary: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Updated to ubergo %s\n", latestVersion)
	return nil
}
