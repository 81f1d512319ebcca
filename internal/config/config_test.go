package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupXDG points the XDG directories at temp dirs for the test.
func setupXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setupXDG(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "starter", cfg.DefaultCollection)
	assert.Equal(t, 16, cfg.Artwork.Height)
	assert.True(t, cfg.Artwork.Color)

	_, err = os.Stat(GetConfigFilePath())
	assert.NoError(t, err, "default config file should be written")
}

func TestLoadConfigReadsExisting(t *testing.T) {
	setupXDG(t)

	configPath := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte(`
default_collection = "modern"

[artwork]
height = 24
color = false
`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "modern", cfg.DefaultCollection)
	assert.Equal(t, 24, cfg.Artwork.Height)
	assert.False(t, cfg.Artwork.Color)
}

func TestLoadConfigAppliesHeightDefault(t *testing.T) {
	setupXDG(t)

	configPath := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte(`default_collection = "modern"`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Artwork.Height, "missing artwork height falls back to the default")
	assert.True(t, cfg.Artwork.Color, "omitted color toggle defaults on")
}

func TestLoadConfigKeepsExplicitColorOff(t *testing.T) {
	setupXDG(t)

	configPath := GetConfigFilePath()
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0755))
	require.NoError(t, os.WriteFile(configPath, []byte(`
[artwork]
height = 16
color = false
`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.Artwork.Color, "explicit color = false is honored")
}

func TestSetDefaultCollection(t *testing.T) {
	setupXDG(t)

	require.NoError(t, SetDefaultCollection("pauper"))

	name, err := GetDefaultCollection()
	require.NoError(t, err)
	assert.Equal(t, "pauper", name)
}

func TestGetCollectionPath(t *testing.T) {
	setupXDG(t)

	library := GetCollectionLibraryPath()
	require.NoError(t, os.MkdirAll(library, 0755))
	target := filepath.Join(library, "starter.toml")
	require.NoError(t, os.WriteFile(target, []byte("[collection]\n"), 0644))

	path, err := GetCollectionPath("starter")
	require.NoError(t, err)
	assert.Equal(t, target, path)

	// Direct file paths work too.
	direct := filepath.Join(t.TempDir(), "mine.toml")
	require.NoError(t, os.WriteFile(direct, []byte("[collection]\n"), 0644))
	path, err = GetCollectionPath(direct)
	require.NoError(t, err)
	assert.Equal(t, direct, path)

	_, err = GetCollectionPath("missing")
	assert.Error(t, err)
}
