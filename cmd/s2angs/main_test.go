package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/s2angs/internal/adapters/driven/config/file"
	"github.com/custodia-labs/s2angs/internal/adapters/driven/storage/memory"
)

func TestOpenConfigStore(t *testing.T) {
	configDir := t.TempDir()
	stderr := new(bytes.Buffer)

	store := openConfigStore(configDir, stderr)

	assert.IsType(t, &file.ConfigStore{}, store)
	assert.Equal(t, filepath.Join(configDir, "config.toml"), store.Path())
	assert.Empty(t, stderr.String())
}

func TestOpenConfigStore_MalformedFileWarns(t *testing.T) {
	configDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte("output = ["), 0o600))
	stderr := new(bytes.Buffer)

	store := openConfigStore(configDir, stderr)

	assert.IsType(t, &memory.ConfigStore{}, store)
	assert.Empty(t, store.Path())
	assert.Contains(t, stderr.String(), "settings unavailable")
	assert.Contains(t, stderr.String(), "changes will not be saved")
}

func TestNewAngleBandService_Classifies(t *testing.T) {
	kind, err := newAngleBandService(20).Classify("/data/product.SAFE")

	require.NoError(t, err)
	assert.Equal(t, "safe", kind.String())
}
