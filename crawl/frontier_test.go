package crawl_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/lexcrawl/lexcrawl/crawl"
	"github.com/stretchr/testify/assert"
)

func TestFrontier_PushPop(t *testing.T) {
	t.Parallel()

	t.Run("pops in FIFO order within a depth", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("a")
		f.Push("b")
		f.Push("c")

		var got []string
		for {
			prefix, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, prefix)
		}

		assert.Equal(t, []string{"a", "b", "c"}, got)
	})

	t.Run("pops shorter prefixes before longer ones", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("aa")
		f.Push("b")
		f.Push("ab")
		f.Push("c")

		var got []string
		for {
			prefix, ok := f.Pop()
			if !ok {
				break
			}
			got = append(got, prefix)
		}

		assert.Equal(t, []string{"b", "c", "aa", "ab"}, got, "breadth-first: depth 1 before depth 2, FIFO within each")
	})

	t.Run("returns false when empty", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		_, ok := f.Pop()
		assert.False(t, ok)
	})
}

func TestFrontier_VisitedGuard(t *testing.T) {
	t.Parallel()

	t.Run("rejects a prefix that was already pushed", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		assert.True(t, f.Push("ab"))
		assert.False(t, f.Push("ab"), "second push of the same prefix must be a no-op")
		assert.Equal(t, 1, f.Len())
	})

	t.Run("rejects a prefix that was already explored", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("ab")
		_, _ = f.Pop()

		assert.False(t, f.Push("ab"), "explored prefixes stay guarded after leaving the queue")
		assert.Equal(t, 0, f.Len())
	})

	t.Run("Seen covers queued and explored prefixes", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("ab")

		assert.True(t, f.Seen("ab"))
		assert.False(t, f.Seen("ac"))

		_, _ = f.Pop()
		assert.True(t, f.Seen("ab"))
	})

	t.Run("admits each prefix exactly once under concurrent pushes", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()

		const workers = 16
		var admitted sync.Map
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := 0; i < 100; i++ {
					prefix := fmt.Sprintf("p%02d", i)
					if f.Push(prefix) {
						if _, loaded := admitted.LoadOrStore(prefix, true); loaded {
							t.Errorf("prefix %q admitted twice", prefix)
						}
					}
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, 100, f.Len(), "each of the 100 prefixes admitted exactly once")
	})
}

func TestFrontier_PopBatch(t *testing.T) {
	t.Parallel()

	t.Run("returns up to n prefixes", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("a")
		f.Push("b")
		f.Push("c")

		batch := f.PopBatch(2)
		assert.Equal(t, []string{"a", "b"}, batch)
		assert.Equal(t, 1, f.Len())
	})

	t.Run("returns fewer when the frontier drains", func(t *testing.T) {
		t.Parallel()

		f := crawl.NewFrontier()
		f.Push("a")

		batch := f.PopBatch(5)
		assert.Equal(t, []string{"a"}, batch)
		assert.Empty(t, f.PopBatch(5))
	})
}
