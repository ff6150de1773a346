// Package testutil provides small deterministic random-sequence generators
// used by the property-style tests in internal/nodealg and seqtree.
package testutil

import "math/rand"

// RandomInsertIndices returns count insertion indices, the i-th one drawn
// from [0, i] inclusive (a valid position to insert into a sequence that
// already holds i elements). Seeded explicitly so test failures reproduce.
func RandomInsertIndices(seed int64, count int) []int {
	rng := rand.New(rand.NewSource(seed))
	idx := make([]int, count)

	for i := range idx {
		idx[i] = rng.Intn(i + 1)
	}

	return idx
}

// PermutedIndices returns a random permutation of [0, count), seeded
// explicitly so test failures reproduce.
func PermutedIndices(seed int64, count int) []int {
	rng := rand.New(rand.NewSource(seed))

	return rng.Perm(count)
}
