package sqlite_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lexcrawl/lexcrawl"
	"github.com/lexcrawl/lexcrawl/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB opens an in-memory database and registers cleanup.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func TestCheckpointStore_SaveTerms(t *testing.T) {
	t.Parallel()

	t.Run("counts only newly inserted terms", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))
		ctx := context.Background()

		inserted, err := store.SaveTerms(ctx, []string{"apple", "apricot"})
		require.NoError(t, err)
		assert.Equal(t, 2, inserted)

		inserted, err = store.SaveTerms(ctx, []string{"apricot", "banana"})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted, "apricot is already stored")
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		inserted, err := store.SaveTerms(context.Background(), nil)
		require.NoError(t, err)
		assert.Zero(t, inserted)
	})

	t.Run("duplicates within one batch insert once", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		inserted, err := store.SaveTerms(context.Background(), []string{"apple", "apple", "apple"})
		require.NoError(t, err)
		assert.Equal(t, 1, inserted)
	})
}

func TestCheckpointStore_Terms(t *testing.T) {
	t.Parallel()

	t.Run("returns all terms in lexical order", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))
		ctx := context.Background()

		_, err := store.SaveTerms(ctx, []string{"cherry", "apple", "banana"})
		require.NoError(t, err)

		terms, err := store.Terms(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"apple", "banana", "cherry"}, terms)
	})

	t.Run("empty store yields no terms", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		terms, err := store.Terms(context.Background())
		require.NoError(t, err)
		assert.Empty(t, terms)
	})
}

func TestCheckpointStore_SaveRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns an ID when missing", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		run := &lexcrawl.RunRecord{
			Endpoint: "https://api.example.com/complete",
			Requests: 702,
			Terms:    1250,
		}
		require.NoError(t, store.SaveRun(context.Background(), run))

		require.NotEmpty(t, run.ID)
		_, err := uuid.Parse(run.ID)
		assert.NoError(t, err)
	})

	t.Run("keeps an explicit ID", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		id := uuid.New().String()
		run := &lexcrawl.RunRecord{
			ID:       id,
			Endpoint: "https://api.example.com/complete",
		}
		require.NoError(t, store.SaveRun(context.Background(), run))
		assert.Equal(t, id, run.ID)
	})

	t.Run("requires an endpoint", func(t *testing.T) {
		t.Parallel()

		store := sqlite.NewCheckpointStore(mustOpenDB(t))

		err := store.SaveRun(context.Background(), &lexcrawl.RunRecord{})
		assert.Equal(t, lexcrawl.EINVALID, lexcrawl.ErrorCode(err))
	})
}

func TestCheckpointStore_Checkpoint(t *testing.T) {
	t.Parallel()

	store := sqlite.NewCheckpointStore(mustOpenDB(t))
	ctx := context.Background()

	require.NoError(t, store.Checkpoint(ctx, []string{"apple", "banana"}))
	require.NoError(t, store.Checkpoint(ctx, []string{"apple", "banana", "cherry"}))

	terms, err := store.Terms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"apple", "banana", "cherry"}, terms)
}
