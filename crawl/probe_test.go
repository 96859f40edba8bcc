package crawl_test

import (
	"context"
	"sync"
	"testing"

	"github.com/lexcrawl/lexcrawl"
	"github.com/lexcrawl/lexcrawl/crawl"
	"github.com/lexcrawl/lexcrawl/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbeCap(t *testing.T) {
	t.Parallel()

	t.Run("returns the maximum observed result length", func(t *testing.T) {
		t.Parallel()

		results := map[string][]string{
			"a": {"a1", "a2"},
			"b": {"b1", "b2", "b3", "b4"},
			"c": {"c1"},
		}
		client := &mock.Client{
			CompleteFn: func(_ context.Context, prefix string) ([]string, error) {
				return results[prefix], nil
			},
			RequestsFn: func() int64 { return 0 },
		}

		got, observed, err := crawl.ProbeCap(context.Background(), client, "abc", 3, 10)

		require.NoError(t, err)
		assert.True(t, observed)
		assert.Equal(t, 4, got)
	})

	t.Run("limits the sample size", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var probed []string
		client := &mock.Client{
			CompleteFn: func(_ context.Context, prefix string) ([]string, error) {
				mu.Lock()
				probed = append(probed, prefix)
				mu.Unlock()
				return []string{"x"}, nil
			},
		}

		_, _, err := crawl.ProbeCap(context.Background(), client, "abcdef", 2, 10)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, probed)
	})

	t.Run("falls back when nothing is observed", func(t *testing.T) {
		t.Parallel()

		client := &mock.Client{
			CompleteFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, nil
			},
		}

		got, observed, err := crawl.ProbeCap(context.Background(), client, "abc", 0, 10)

		require.NoError(t, err)
		assert.False(t, observed)
		assert.Equal(t, 10, got)
	})

	t.Run("tolerates per-prefix failures", func(t *testing.T) {
		t.Parallel()

		client := &mock.Client{
			CompleteFn: func(_ context.Context, prefix string) ([]string, error) {
				if prefix == "a" {
					return nil, lexcrawl.Errorf(lexcrawl.EUNAVAILABLE, "connection reset")
				}
				return []string{"b1", "b2"}, nil
			},
		}

		got, observed, err := crawl.ProbeCap(context.Background(), client, "ab", 2, 10)

		require.NoError(t, err)
		assert.True(t, observed)
		assert.Equal(t, 2, got)
	})

	t.Run("aborts on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := &mock.Client{
			CompleteFn: func(_ context.Context, _ string) ([]string, error) {
				t.Fatal("no fetch should happen after cancellation")
				return nil, nil
			},
		}

		_, _, err := crawl.ProbeCap(ctx, client, "abc", 3, 10)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
