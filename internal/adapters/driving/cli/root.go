// Package cli implements the s2angs command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driving"
	"github.com/custodia-labs/s2angs/internal/logger"
)

// Exit codes returned by Execute.
const (
	ExitOK                   = 0
	ExitFailure              = 1
	ExitUnrecognizedSource   = 2
	ExitDirectoryPreparation = 3
	ExitProductContent       = 4
)

var (
	outDir     string
	resolution int
	verbose    bool
)

// Core services, set by Configure. Tests replace them with mocks.
var (
	settingsService   driving.SettingsService
	angleBandService  func(resolution int) driving.AngleBandService
	environmentValues Overrides
)

// Overrides are defaults taken from the environment. They beat stored
// settings and lose to flags. Zero values mean "not set".
type Overrides struct {
	OutputDir  string
	Resolution int
}

// Dependencies wires the commands to the core.
type Dependencies struct {
	Settings driving.SettingsService
	// AngleBands builds the angle band service for an output resolution.
	AngleBands  func(resolution int) driving.AngleBandService
	Environment Overrides
}

// Configure sets the services used by every command.
func Configure(deps Dependencies) {
	settingsService = deps.Settings
	angleBandService = deps.AngleBands
	environmentValues = deps.Environment
}

var rootCmd = &cobra.Command{
	Use:   "s2angs <s2_path>",
	Short: "Generate Sentinel-2 angle bands",
	Long: `s2angs writes solar and view zenith and azimuth angle bands for a
Sentinel-2 product.

The product may be given as a tile metadata file (MTD_TL.xml), an unpacked
.SAFE folder or a zipped .SAFE product.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runGenerate,
}

func init() {
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", "", "directory for the angle bands (created if missing)")
	rootCmd.Flags().IntVarP(&resolution, "resolution", "r", 0,
		fmt.Sprintf("output resolution in metres, one of %v (default from settings)", domain.SupportedResolutions))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output on stderr")
}

// Execute runs the root command and exits with the code matching the error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(ExitCode(err))
	}
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrUnrecognizedSourceKind):
		return ExitUnrecognizedSource
	case errors.Is(err, domain.ErrDirectoryPreparation):
		return ExitDirectoryPreparation
	case errors.Is(err, domain.ErrMetadataNotFound),
		errors.Is(err, domain.ErrMetadataMalformed),
		errors.Is(err, domain.ErrArchiveCorrupt):
		return ExitProductContent
	default:
		return ExitFailure
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	if angleBandService == nil {
		return errors.New("angle band service not configured")
	}

	// an unusable reference fails before resolution or settings are resolved
	if _, err := classify(args[0]); err != nil {
		return err
	}

	settings := storedSettings()
	res, err := resolveResolution(settings)
	if err != nil {
		return err
	}
	dir := resolveOutputDir(settings)
	logger.Debug("resolution %d m, output directory %q", res, dir)

	result, err := angleBandService(res).Generate(cmd.Context(), args[0], dir)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// storedSettings returns the persisted settings, or defaults when none can
// be read.
func storedSettings() domain.AppSettings {
	if settingsService == nil {
		return domain.DefaultAppSettings()
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("failed to read settings, using defaults: %v", err)
		return domain.DefaultAppSettings()
	}
	return *settings
}

func resolveResolution(settings domain.AppSettings) (int, error) {
	res := settings.Output.Resolution
	if environmentValues.Resolution != 0 {
		res = environmentValues.Resolution
	}
	if resolution != 0 {
		res = resolution
	}
	if !domain.IsSupportedResolution(res) {
		return 0, fmt.Errorf("%w: resolution %d (expecting one of %v)",
			domain.ErrInvalidInput, res, domain.SupportedResolutions)
	}
	return res, nil
}

func resolveOutputDir(settings domain.AppSettings) string {
	switch {
	case outDir != "":
		return outDir
	case environmentValues.OutputDir != "":
		return environmentValues.OutputDir
	default:
		return settings.Output.Directory
	}
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// printResult writes labelled lines for people and bare paths in band order
// for scripts.
func printResult(w io.Writer, result domain.AngleBandResult) {
	if isTerminal(w) {
		for _, band := range domain.AngleBands {
			fmt.Fprintf(w, "%s: %s\n", band.Description(), result.Path(band))
		}
		return
	}
	for _, p := range result.Paths() {
		fmt.Fprintln(w, p)
	}
}
