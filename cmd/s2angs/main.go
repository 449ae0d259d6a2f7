// Command s2angs generates Sentinel-2 solar and view angle bands.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/custodia-labs/s2angs/internal/adapters/driven/config/env"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/filesystem"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/raster"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/sentinel2"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/s2angs/internal/adapters/driving/cli"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/core/ports/driving"
	"github.com/custodia-labs/s2angs/internal/core/services"
)

func main() {
	overrides, err := env.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitFailure)
	}

	cli.Configure(cli.Dependencies{
		Settings:   services.NewSettingsService(openConfigStore(overrides.ConfigDir, os.Stderr)),
		AngleBands: newAngleBandService,
		Environment: cli.Overrides{
			OutputDir:  overrides.OutputDir,
			Resolution: overrides.Resolution,
		},
	})
	cli.Execute()
}

// openConfigStore opens the TOML settings in configDir. When they cannot be
// read it tells the user on stderr, whatever the verbosity, and falls back to
// a store that keeps nothing.
func openConfigStore(configDir string, stderr io.Writer) driven.ConfigStore {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		fmt.Fprintf(stderr, "Warning: settings unavailable, using defaults; changes will not be saved: %v\n", err)
		return memory.NewConfigStore()
	}
	return store
}

// newAngleBandService wires the bundled generators for one output resolution.
func newAngleBandService(resolution int) driving.AngleBandService {
	xml := sentinel2.NewXMLGenerator(sentinel2.NewMetadataParser(), raster.NewTIFFWriter(), resolution)

	return services.NewAngleBandService(services.Generators{
		XML:  xml,
		SAFE: sentinel2.NewSAFEGenerator(xml),
		ZIP:  sentinel2.NewZIPGenerator(xml, ""),
	}, filesystem.NewDirectoryPreparer())
}
