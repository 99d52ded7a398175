package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRepoConfig(t *testing.T) {
	dir := t.TempDir()
	content := "instructions: focus on the storage layer\nprovider: github\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".repograph.yml"), []byte(content), 0o600))

	cfg, err := LoadRepoConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "focus on the storage layer", cfg.Instructions)
	assert.Equal(t, "github", cfg.Provider)
}

func TestLoadRepoConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadRepoConfig(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
	require.NotNil(t, cfg)
	assert.Empty(t, cfg.Instructions)
}

func TestLoadRepoConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".repograph.yml"), []byte("instructions: [unclosed"), 0o600))

	_, err := LoadRepoConfig(dir)
	assert.ErrorIs(t, err, ErrConfigParsing)
}
