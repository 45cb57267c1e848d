package movies

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleRandom_DistinctMembers(t *testing.T) {
	rs := Filter(catalog(), FilterState{})
	src := rand.New(rand.NewPCG(1, 2))

	for n := 1; n <= len(rs); n++ {
		got := SampleRandom(rs, n, src)
		require.Len(t, got, n)

		seen := map[*Movie]bool{}
		for _, m := range got {
			assert.Contains(t, rs, m)
			assert.False(t, seen[m], "sample must not repeat %q", m.Title)
			seen[m] = true
		}
	}
}

func TestSampleRandom_MoreThanAvailable(t *testing.T) {
	rs := Filter(catalog(), FilterState{})

	got := SampleRandom(rs, len(rs)+10, nil)
	assert.ElementsMatch(t, rs, got)
}

func TestSampleRandom_EmptyAndNonPositive(t *testing.T) {
	assert.Empty(t, SampleRandom(ResultSet{}, 3, nil))
	assert.Empty(t, SampleRandom(nil, 1, nil))

	rs := Filter(catalog(), FilterState{})
	assert.Empty(t, SampleRandom(rs, 0, nil))
	assert.Empty(t, SampleRandom(rs, -2, nil))
}

func TestSampleRandom_LeavesInputAlone(t *testing.T) {
	rs := Filter(catalog(), FilterState{})
	before := titles(rs)

	_ = SampleRandom(rs, 3, rand.New(rand.NewPCG(7, 7)))
	assert.Equal(t, before, titles(rs))
}

func TestSampleRandom_Uniform(t *testing.T) {
	rs := Filter(catalog(), FilterState{})
	src := rand.New(rand.NewPCG(42, 1024))

	const draws = 20000
	counts := map[string]int{}
	for i := 0; i < draws; i++ {
		counts[SampleRandom(rs, 1, src)[0].Title]++
	}

	want := draws / len(rs)
	for title, n := range counts {
		assert.InDelta(t, want, n, float64(want)*0.1, "title %q drawn %d times", title, n)
	}
	assert.Len(t, counts, len(rs))
}
