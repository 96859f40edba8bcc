package bloom_test

import (
	"fmt"
	"testing"

	"github.com/lexcrawl/lexcrawl/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("apple"), "term should not be present before Add")

	f.Add("apple")

	assert.True(t, f.Test("apple"), "term should be present after Add")
	assert.False(t, f.Test("apricot"), "unrelated term should not be present")
}

func TestFilter_NoFalseNegatives(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 0.01)

	terms := make([]string, 0, 1000)
	for i := 0; i < 1000; i++ {
		terms = append(terms, fmt.Sprintf("term-%04d", i))
	}

	for _, term := range terms {
		f.Add(term)
	}
	for _, term := range terms {
		assert.True(t, f.Test(term), "added term %q must always test positive", term)
	}
}

func TestFilter_EstimatedCount(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	for i := 0; i < 100; i++ {
		f.Add(fmt.Sprintf("term-%d", i))
	}

	count := f.EstimatedCount()
	assert.InDelta(t, 100, count, 10, "estimated count should be near the true count")
}
