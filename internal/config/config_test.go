package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	Init()

	cfg, err := Load("")
	require.NoError(t, err, "a missing config file falls back to defaults")
	assert.Equal(t, "yaml", cfg.Format)
	assert.Equal(t, "---", cfg.Delimiter)
	assert.Empty(t, cfg.CloseDelimiter)
	assert.Empty(t, cfg.ExcerptDelimiter)
}

func TestLoadFromFile(t *testing.T) {
	viper.Reset()
	Init()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`format: toml
delimiter: "+++"
excerpt_delimiter: "<!-- more -->"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "toml", cfg.Format)
	assert.Equal(t, "+++", cfg.Delimiter)
	assert.Equal(t, "<!-- more -->", cfg.ExcerptDelimiter)
	assert.Empty(t, cfg.CloseDelimiter, "unset keys keep their defaults")
}

func TestLoadInvalidFile(t *testing.T) {
	viper.Reset()
	Init()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: [broken"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
