package pageorder_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/aoc24/pageorder"
)

// BenchmarkSort sorts a shuffled 23-page update over a 49-page total order,
// the shape of a real input.
func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	perm := randomPerm(rng, 49)
	tbl := pageorder.NewTable()
	for i := range perm {
		for j := i + 1; j < len(perm); j++ {
			_ = tbl.Insert(perm[i], perm[j])
		}
	}
	base := slices.Clone(perm[:23])
	rng.Shuffle(len(base), func(i, j int) { base[i], base[j] = base[j], base[i] })

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := pageorder.Update(slices.Clone(base))
		_ = tbl.Sort(u)
	}
}
