package services

import (
	"math/rand/v2"
	"sort"
)

// sampleIndices picks k distinct indices out of [0, n) using a PCG source
// seeded with seed. The same (n, k, seed) always yields the same indices,
// returned in ascending order. When k >= n every index is returned.
func sampleIndices(n, k int, seed uint64) []int {
	if k < 0 {
		k = 0
	}
	if k >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all
	}

	rng := rand.New(rand.NewPCG(seed, seed))
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// partial Fisher-Yates: the first k slots end up holding the sample
	for i := 0; i < k; i++ {
		j := i + rng.IntN(n-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	picked := idx[:k]
	sort.Ints(picked)
	return picked
}
