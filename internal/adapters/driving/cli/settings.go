package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/s2angs/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the defaults used when generating angle bands.

Flags override environment variables (S2ANGS_OUTDIR, S2ANGS_RESOLUTION),
which override these settings.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsOutdirCmd = &cobra.Command{
	Use:   "outdir <dir>",
	Short: "Set the default output directory",
	Long: `Set the default output directory. An empty value ("") clears it, so
bands are written next to the product again.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsOutdir,
}

var settingsResolutionCmd = &cobra.Command{
	Use:   "resolution <metres>",
	Short: "Set the default output resolution",
	Long:  fmt.Sprintf("Set the default output resolution. Supported values: %v.", domain.SupportedResolutions),
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsResolution,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore default settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsOutdirCmd)
	settingsCmd.AddCommand(settingsResolutionCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	if settings.Output.Directory != "" {
		cmd.Printf("  Directory: %s\n", settings.Output.Directory)
	} else {
		cmd.Printf("  Directory: (next to the product)\n")
	}
	cmd.Printf("  Resolution: %d m\n", settings.Output.Resolution)
	cmd.Println()

	if environmentValues.OutputDir != "" || environmentValues.Resolution != 0 {
		cmd.Println("[Environment]")
		if environmentValues.OutputDir != "" {
			cmd.Printf("  Directory: %s\n", environmentValues.OutputDir)
		}
		if environmentValues.Resolution != 0 {
			cmd.Printf("  Resolution: %d m\n", environmentValues.Resolution)
		}
		cmd.Println()
	}

	if path := settingsService.ConfigPath(); path != "" {
		cmd.Printf("Config file: %s\n", path)
	} else {
		cmd.Println("Config file: (none, changes cannot be saved)")
	}
	return nil
}

// requirePersistentSettings rejects writes that would only live in memory.
func requirePersistentSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	if settingsService.ConfigPath() == "" {
		return fmt.Errorf("%w: no config file is available, set %s to a writable directory",
			domain.ErrSettingsNotPersistent, "S2ANGS_CONFIG_DIR")
	}
	return nil
}

func runSettingsOutdir(cmd *cobra.Command, args []string) error {
	if err := requirePersistentSettings(); err != nil {
		return err
	}

	if err := settingsService.SetOutputDirectory(args[0]); err != nil {
		return fmt.Errorf("failed to set output directory: %w", err)
	}
	if args[0] == "" {
		cmd.Println("Cleared output directory")
		return nil
	}
	cmd.Printf("Set output directory to: %s\n", args[0])
	return nil
}

func runSettingsResolution(cmd *cobra.Command, args []string) error {
	if err := requirePersistentSettings(); err != nil {
		return err
	}

	res, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: resolution %q is not a number", domain.ErrInvalidInput, args[0])
	}
	if err := settingsService.SetResolution(res); err != nil {
		return fmt.Errorf("failed to set resolution: %w", err)
	}
	cmd.Printf("Set resolution to: %d m\n", res)
	return nil
}

func runSettingsReset(cmd *cobra.Command, _ []string) error {
	if err := requirePersistentSettings(); err != nil {
		return err
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}
	cmd.Printf("Reset settings to defaults (resolution %d m, output next to the product)\n",
		defaults.Output.Resolution)
	return nil
}
