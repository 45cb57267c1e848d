package movies

import "math/rand/v2"

// Sampler draws random indexes. *rand.Rand satisfies it; production code
// uses the package level generator, which is seeded per process.
type Sampler interface {
	IntN(n int) int
}

type globalSampler struct{}

func (globalSampler) IntN(n int) int { return rand.IntN(n) }

// DefaultSampler draws from math/rand/v2's global source.
var DefaultSampler Sampler = globalSampler{}

// SampleRandom returns n movies drawn uniformly without replacement from
// rs. When n is at least len(rs) every movie is returned in shuffled order.
// An empty rs or n <= 0 yields an empty ResultSet.
func SampleRandom(rs ResultSet, n int, src Sampler) ResultSet {
	if n <= 0 || len(rs) == 0 {
		return ResultSet{}
	}
	if src == nil {
		src = DefaultSampler
	}
	if n > len(rs) {
		n = len(rs)
	}

	// partial Fisher-Yates over a copy
	pool := make(ResultSet, len(rs))
	copy(pool, rs)
	for i := 0; i < n; i++ {
		j := i + src.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
