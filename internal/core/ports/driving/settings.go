package driving

import "github.com/custodia-labs/s2angs/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputDirectory sets the default output directory.
	// An empty directory clears it.
	SetOutputDirectory(dir string) error

	// SetResolution sets the default output resolution in metres.
	SetResolution(resolution int) error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// ConfigPath returns where settings are stored.
	ConfigPath() string
}
