package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/poiesic/rinkside/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	path := writeConfig(t, "rinkside.yaml", `
delay: 150ms
fields: [athlete.name, club]
match_mode: words
min_word_length: 3
locale: ru
fold_homoglyphs: true
fold_diacritics: true
required_fields: [athlete]
pool_size: 2
dedupe: true
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 150*time.Millisecond, cfg.Delay)
	assert.Equal(t, []string{"athlete.name", "club"}, cfg.Fields)
	assert.Equal(t, search.MatchWords, cfg.MatchMode)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.Equal(t, "ru", cfg.Locale)
	assert.True(t, cfg.FoldHomoglyphs)
	assert.True(t, cfg.FoldDiacritics)
	assert.Equal(t, []string{"athlete"}, cfg.RequiredFields)
	assert.Equal(t, 2, cfg.PoolSize)
	assert.True(t, cfg.Dedupe)
}

func TestLoadFile_TOML(t *testing.T) {
	path := writeConfig(t, "rinkside.toml", `
delay = "1s"
fields = ["name"]
fold_homoglyphs = true
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, time.Second, cfg.Delay)
	assert.Equal(t, []string{"name"}, cfg.Fields)
	assert.True(t, cfg.FoldHomoglyphs)
	assert.False(t, cfg.FoldDiacritics)
}

func TestLoadFile_AbsentKeysKeepDefaults(t *testing.T) {
	path := writeConfig(t, "rinkside.yml", "dedupe: true\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	want := NewConfig(WithDedupe(true))
	assert.Equal(t, want, cfg)
}

func TestLoadFile_ExplicitZeroOverridesDefault(t *testing.T) {
	path := writeConfig(t, "rinkside.yaml", "delay: 0s\n")

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), cfg.Delay)
}

func TestLoadFile_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "rinkside.ini", "delay=1s"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "rinkside.yaml", "fields: [unterminated"))
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("bad toml", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "rinkside.toml", "delay = "))
		assert.ErrorContains(t, err, "parse config")
	})

	t.Run("bad delay", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "rinkside.yaml", "delay: soon\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadFile(writeConfig(t, "rinkside.toml", "match_mode = \"fuzzy\"\n"))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}
