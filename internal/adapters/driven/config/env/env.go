// Package env reads s2angs settings overrides from the process environment.
//
// Variables use the S2ANGS_ prefix. A .env file in the working directory is
// loaded first; it never replaces variables already set in the environment.
package env

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/custodia-labs/s2angs/internal/logger"
)

// Prefix is prepended to every variable name.
const Prefix = "S2ANGS_"

// DefaultDotenvFile is loaded by Load when no files are given.
const DefaultDotenvFile = ".env"

// Overrides holds settings taken from the environment.
// Zero values mean "not set".
type Overrides struct {
	OutputDir  string `env:"OUTDIR"`
	Resolution int    `env:"RESOLUTION"`
	ConfigDir  string `env:"CONFIG_DIR"`
}

// Load reads dotenv files (skipping ones that do not exist) and then parses
// the process environment.
func Load(dotenvFiles ...string) (Overrides, error) {
	if len(dotenvFiles) == 0 {
		dotenvFiles = []string{DefaultDotenvFile}
	}
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return Overrides{}, fmt.Errorf("load %s: %w", f, err)
		}
		logger.Debug("loaded environment from %s", f)
	}

	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: Prefix}); err != nil {
		return Overrides{}, fmt.Errorf("parse environment: %w", err)
	}
	return o, nil
}

// Parse reads overrides from an explicit variable map instead of the
// process environment.
func Parse(environ map[string]string) (Overrides, error) {
	var o Overrides
	if err := env.ParseWithOptions(&o, env.Options{Prefix: Prefix, Environment: environ}); err != nil {
		return Overrides{}, fmt.Errorf("parse environment: %w", err)
	}
	return o, nil
}
