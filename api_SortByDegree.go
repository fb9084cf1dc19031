package forClusteringGo

import "github.com/intel/forGoParallel/parallel"

// SortByDegree returns a permutation of the node ids ordered by degree,
// ties broken by id.
func (G *Graph) SortByDegree(ascending bool) []int {
	n := G.UpperNodeIdBound()
	P := make([]int, n)
	D := make([]int, n)
	parallel.Range(0, n, func(low, high int) {
		for u := low; u < high; u++ {
			P[u] = u
			if ascending {
				D[u] = G.Degree(u)
			} else {
				D[u] = -G.Degree(u)
			}
		}
	})
	twoSliceSort(D, P)
	return P
}
