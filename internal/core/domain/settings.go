package domain

import "fmt"

// Supported output resolutions in metres, matching the Sentinel-2 band groups.
var SupportedResolutions = []int{10, 20, 60}

// DefaultResolution is the output pixel size used when none is configured.
const DefaultResolution = 10

// OutputSettings configures where and how angle bands are written.
type OutputSettings struct {
	// Directory receives generated files. Empty lets each generator
	// pick its own location next to the input.
	Directory string

	// Resolution is the output pixel size in metres.
	Resolution int
}

// AppSettings holds all user-configurable settings.
type AppSettings struct {
	Output OutputSettings
}

// DefaultAppSettings returns the settings used when nothing is configured.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Resolution: DefaultResolution,
		},
	}
}

// IsSupportedResolution reports whether r is one of SupportedResolutions.
func IsSupportedResolution(r int) bool {
	for _, s := range SupportedResolutions {
		if s == r {
			return true
		}
	}
	return false
}

// Validate checks the settings for consistency.
func (s AppSettings) Validate() error {
	if !IsSupportedResolution(s.Output.Resolution) {
		return fmt.Errorf("%w: resolution %d (expecting one of %v)",
			ErrInvalidInput, s.Output.Resolution, SupportedResolutions)
	}
	return nil
}
