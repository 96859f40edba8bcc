package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lexcrawl/lexcrawl"
	"github.com/lexcrawl/lexcrawl/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("applies only the fields the file mentions", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, `
endpoint: https://api.example.com/complete
concurrency: 8
base_delay: 2s
requests_per_second: 0.5
`)

		cfg := config.Default()
		require.NoError(t, config.Load(path, cfg))

		assert.Equal(t, "https://api.example.com/complete", cfg.Endpoint)
		assert.Equal(t, 8, cfg.Concurrency)
		assert.Equal(t, 2*time.Second, cfg.BaseDelay)
		assert.Equal(t, 0.5, cfg.RequestsPerSecond)

		// Untouched fields keep their defaults.
		assert.Equal(t, config.DefaultAlphabet, cfg.Alphabet)
		assert.Equal(t, config.DefaultCapDelay, cfg.CapDelay)
		assert.Equal(t, config.DefaultMaxRetries, cfg.MaxRetries)
	})

	t.Run("zero values in the file still override", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "checkpoint_every: 0\n")

		cfg := config.Default()
		require.NoError(t, config.Load(path, cfg))

		assert.Zero(t, cfg.CheckpointEvery)
	})

	t.Run("rejects a malformed duration", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "timeout: ten seconds\n")

		err := config.Load(path, config.Default())
		assert.Equal(t, lexcrawl.EINVALID, lexcrawl.ErrorCode(err))
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		path := writeConfigFile(t, "endpoint: [unclosed\n")

		err := config.Load(path, config.Default())
		assert.Equal(t, lexcrawl.EINVALID, lexcrawl.ErrorCode(err))
	})

	t.Run("reports a missing file", func(t *testing.T) {
		t.Parallel()

		err := config.Load(filepath.Join(t.TempDir(), "absent.yml"), config.Default())
		assert.ErrorIs(t, err, config.ErrConfigNotFound)
	})
}

func TestFindConfigFile(t *testing.T) {
	t.Run("explicit path wins when it exists", func(t *testing.T) {
		path := writeConfigFile(t, "concurrency: 2\n")

		assert.Equal(t, path, config.FindConfigFile(path))
	})

	t.Run("missing explicit path finds nothing", func(t *testing.T) {
		assert.Empty(t, config.FindConfigFile(filepath.Join(t.TempDir(), "absent.yml")))
	})

	t.Run("falls back to the working directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultConfigFile), []byte("concurrency: 2\n"), 0o644))

		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(dir))
		defer func() {
			require.NoError(t, os.Chdir(wd))
		}()

		found := config.FindConfigFile("")
		assert.Equal(t, config.DefaultConfigFile, filepath.Base(found))
	})
}
