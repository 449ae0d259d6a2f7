package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/s2angs/internal/core/domain"
	"github.com/custodia-labs/s2angs/internal/core/ports/driving"
)

// mockAngleBandService records calls and returns canned results.
type mockAngleBandService struct {
	resolution int
	reference  string
	outputDir  string
	generated  int
	result     domain.AngleBandResult
	err        error
}

func (m *mockAngleBandService) Classify(reference string) (domain.SourceKind, error) {
	m.reference = reference
	return domain.ClassifySource(reference)
}

func (m *mockAngleBandService) Generate(_ context.Context, reference, outputDir string) (domain.AngleBandResult, error) {
	m.reference = reference
	m.outputDir = outputDir
	m.generated++
	if m.err != nil {
		return domain.AngleBandResult{}, m.err
	}
	return m.result, nil
}

// mockSettingsService keeps settings in memory.
type mockSettingsService struct {
	settings domain.AppSettings
	getErr   error
	saves    int
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultAppSettings()}
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Save(settings *domain.AppSettings) error {
	m.settings = *settings
	m.saves++
	return nil
}

func (m *mockSettingsService) SetOutputDirectory(dir string) error {
	m.settings.Output.Directory = dir
	return nil
}

func (m *mockSettingsService) SetResolution(resolution int) error {
	if !domain.IsSupportedResolution(resolution) {
		return domain.ErrInvalidInput
	}
	m.settings.Output.Resolution = resolution
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

func (m *mockSettingsService) ConfigPath() string {
	return "/home/test/.s2angs/config.toml"
}

var testResult = domain.AngleBandResult{
	SolarZenith:  "/tmp/out/T23KMQ_sza.tif",
	SolarAzimuth: "/tmp/out/T23KMQ_saa.tif",
	ViewZenith:   "/tmp/out/T23KMQ_vza.tif",
	ViewAzimuth:  "/tmp/out/T23KMQ_vaa.tif",
}

// setupTestServices installs mocks and returns them with a cleanup func
// restoring the previous state.
func setupTestServices() (*mockAngleBandService, *mockSettingsService, func()) {
	prevSettings, prevAngles, prevEnv := settingsService, angleBandService, environmentValues
	prevTerminal := isTerminal

	angles := &mockAngleBandService{result: testResult}
	settings := newMockSettingsService()
	Configure(Dependencies{
		Settings: settings,
		AngleBands: func(res int) driving.AngleBandService {
			angles.resolution = res
			return angles
		},
	})

	return angles, settings, func() {
		settingsService, angleBandService, environmentValues = prevSettings, prevAngles, prevEnv
		isTerminal = prevTerminal
		outDir, resolution, verbose = "", 0, false
		rootCmd.SetArgs(nil)
	}
}

// execute runs rootCmd with args and returns its combined output.
func execute(args ...string) (string, error) {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}
