package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/trickster/internal/card"
)

func TestLoadConfigCreatesDefault(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Default(), config)
	assert.FileExists(t, filepath.Join(dir, "trickster", "config.toml"))

	trump, err := config.TrumpSuit()
	require.NoError(t, err)
	assert.Equal(t, card.Spades, trump)
}

func TestSetDefaultTrump(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	require.NoError(t, SetDefaultTrump(card.Diamonds))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "Diamonds", config.DefaultTrump)
	assert.Equal(t, "#f4c430", config.Theme.Trump)
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "trickster", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_trump = \"h\"\ncolor = false\n"), 0644))

	config, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, config.Color)
	assert.Equal(t, "warn", config.LogLevel)

	trump, err := config.TrumpSuit()
	require.NoError(t, err)
	assert.Equal(t, card.Hearts, trump)
}

func TestLoadConfigBadTrump(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path := filepath.Join(dir, "trickster", "config.toml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("default_trump = \"wands\"\n"), 0644))

	_, err := LoadConfig()
	assert.ErrorIs(t, err, card.ErrInvalidSuit)
}
