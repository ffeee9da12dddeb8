package checker

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/papercheck/vector"
)

func TestConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, vector.DefaultMaxFeatures, cfg.MaxFeatures)
		assert.NotEmpty(t, cfg.StopWords)
		assert.NotEmpty(t, cfg.Lexicon)
		assert.GreaterOrEqual(t, cfg.PoolSize, 1)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("options override defaults", func(t *testing.T) {
		cfg := NewConfig(
			WithMaxFeatures(100),
			WithStopWords([]string{"的"}),
			WithLexicon([]string{"机器学习"}),
			WithPoolSize(4),
		)
		assert.Equal(t, 100, cfg.MaxFeatures)
		assert.Equal(t, []string{"的"}, cfg.StopWords)
		assert.Equal(t, []string{"机器学习"}, cfg.Lexicon)
		assert.Equal(t, 4, cfg.PoolSize)
	})

	t.Run("validate rejects non-positive max features", func(t *testing.T) {
		cfg := NewConfig(WithMaxFeatures(0))
		assert.Error(t, cfg.Validate())
	})

	t.Run("validate rejects zero pool size", func(t *testing.T) {
		cfg := NewConfig(WithPoolSize(0))
		assert.Error(t, cfg.Validate())
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("overrides only the fields present", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "papercheck.toml")
		contents := `
max_features = 250
stop_words = ["的", "了"]
`
		require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, 250, cfg.MaxFeatures)
		assert.Equal(t, []string{"的", "了"}, cfg.StopWords)
		assert.Equal(t, DefaultConfig().Lexicon, cfg.Lexicon)
		assert.Equal(t, DefaultConfig().PoolSize, cfg.PoolSize)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("max_features = ["), 0o644))
		_, err := LoadFile(path)
		assert.Error(t, err)
	})
}

func TestNewChecker(t *testing.T) {
	t.Run("invalid configuration is rejected", func(t *testing.T) {
		_, err := NewChecker(NewConfig(WithMaxFeatures(-1)))
		assert.Error(t, err)
	})

	t.Run("nil config selects defaults", func(t *testing.T) {
		c := newTestChecker(t)
		assert.NotNil(t, c)
	})
}
