package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `autoid:
  enable_auto_ids: true
  namespace: fuelapp
  mode: semantic
  enable_debug_logging: true
  global_prefix: qa
  include_element_types: true
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "autoid.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.EnableAutoIDs)
	assert.Equal(t, "fuelapp", cfg.Namespace)
	assert.Equal(t, ModeSemantic, cfg.Mode)
	assert.True(t, cfg.EnableDebugLogging)
	assert.Equal(t, "qa", cfg.GlobalPrefix)
	assert.True(t, cfg.IncludeElementTypes)
	assert.False(t, cfg.EnableUITestIntegration)
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autoid.yml", sampleYAML)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "fuelapp", cfg.Namespace)
}

func TestLoadPrefersYamlOverYml(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "autoid.yaml", "autoid:\n  namespace: first\n")
	writeConfig(t, dir, "autoid.yml", "autoid:\n  namespace: second\n")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "first", cfg.Namespace)
}

func TestLoadMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = Load(filepath.Join(dir, "nope.yaml"))
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadMalformed(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "autoid.yaml", "autoid: [not a mapping")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadNormalizesMode(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "autoid.yaml", "autoid:\n  mode: bogus\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ModeAutomatic, cfg.Mode)
}

func TestLoadFromDirWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "autoid.yaml", sampleYAML)

	nested := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	cfg, err := LoadFromDir(nested)
	require.NoError(t, err)
	assert.Equal(t, "fuelapp", cfg.Namespace)
}

func TestLoadFromDirNotFound(t *testing.T) {
	// A fresh temp dir has no autoid.yaml anywhere on its own path in
	// practice, but walking to / could hit a stray file; use ErrorIs only
	// when the walk genuinely fails.
	dir := t.TempDir()
	if _, err := LoadFromDir(dir); err != nil {
		assert.ErrorIs(t, err, ErrNotFound)
	}
}
