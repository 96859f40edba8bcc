package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/lexcrawl/lexcrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotWriter_WriteSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("writes a sorted JSON array", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "terms.json")
		w := fs.NewSnapshotWriter(path)

		err := w.WriteSnapshot(context.Background(), []string{"cherry", "apple", "banana"})
		require.NoError(t, err)

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var terms []string
		require.NoError(t, json.Unmarshal(data, &terms))
		assert.Equal(t, []string{"apple", "banana", "cherry"}, terms)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out", "nested", "terms.json")
		w := fs.NewSnapshotWriter(path)

		err := w.WriteSnapshot(context.Background(), []string{"apple"})
		require.NoError(t, err)

		assert.FileExists(t, path)
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewSnapshotWriter(filepath.Join(dir, "terms.json"))

		require.NoError(t, w.WriteSnapshot(context.Background(), []string{"apple"}))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "terms.json", entries[0].Name())
	})

	t.Run("skips a snapshot identical to the previous write", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "terms.json")
		w := fs.NewSnapshotWriter(path)
		ctx := context.Background()

		require.NoError(t, w.WriteSnapshot(ctx, []string{"apple", "banana"}))

		// Removing the file exposes whether the second write is a no-op.
		require.NoError(t, os.Remove(path))

		// Order differs but the serialized payload does not.
		require.NoError(t, w.WriteSnapshot(ctx, []string{"banana", "apple"}))
		assert.NoFileExists(t, path)

		require.NoError(t, w.WriteSnapshot(ctx, []string{"apple", "banana", "cherry"}))
		assert.FileExists(t, path)
	})

	t.Run("does not mutate the caller's slice", func(t *testing.T) {
		t.Parallel()

		w := fs.NewSnapshotWriter(filepath.Join(t.TempDir(), "terms.json"))

		terms := []string{"cherry", "apple"}
		require.NoError(t, w.WriteSnapshot(context.Background(), terms))

		assert.Equal(t, []string{"cherry", "apple"}, terms)
	})

	t.Run("honors context cancellation", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "terms.json")
		w := fs.NewSnapshotWriter(path)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := w.WriteSnapshot(ctx, []string{"apple"})
		assert.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, path)
	})
}
