package services

import (
	"fmt"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driven"
	"github.com/custodia-labs/s2angs/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputDirectory  = "output.directory"
	keyOutputResolution = "output.resolution"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
// Stored values that fail validation fall back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Directory:  s.configStore.GetString(keyOutputDirectory),
			Resolution: s.getResolution(defaults.Output.Resolution),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := s.SetOutputDirectory(settings.Output.Directory); err != nil {
		return err
	}
	return s.SetResolution(settings.Output.Resolution)
}

// SetOutputDirectory sets the default output directory.
func (s *SettingsService) SetOutputDirectory(dir string) error {
	if dir == "" {
		if err := s.configStore.Delete(keyOutputDirectory); err != nil {
			return fmt.Errorf("clear output directory: %w", err)
		}
		return nil
	}
	if err := s.configStore.Set(keyOutputDirectory, dir); err != nil {
		return fmt.Errorf("save output directory: %w", err)
	}
	return nil
}

// SetResolution sets the default output resolution.
func (s *SettingsService) SetResolution(resolution int) error {
	if !domain.IsSupportedResolution(resolution) {
		return fmt.Errorf("%w: resolution %d (expecting one of %v)",
			domain.ErrInvalidInput, resolution, domain.SupportedResolutions)
	}
	if err := s.configStore.Set(keyOutputResolution, resolution); err != nil {
		return fmt.Errorf("save output resolution: %w", err)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ConfigPath returns the backing config file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func (s *SettingsService) getResolution(defaultVal int) int {
	r := s.configStore.GetInt(keyOutputResolution)
	if !domain.IsSupportedResolution(r) {
		return defaultVal
	}
	return r
}
