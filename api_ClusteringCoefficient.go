package forClusteringGo

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// closedPaths counts the ordered pairs (v, w) of distinct neighbor ids
// with v a neighbor of u, w a neighbor of v and w a neighbor of u.
// Self-loops are never a hop: v != u and w != v, and u is not a member of
// its own neighborhood. Parallel edges count once, so the result is at
// most k(k-1) for k distinct neighbors. Every triangle through u is
// counted twice.
func closedPaths(G GraphAccess, u int) (count int) {
	if G, ok := G.(*Graph); ok {
		return G.closedPaths(u)
	}
	neighbors := make(map[int]struct{}, G.Degree(u))
	G.ForNeighborsOf(u, func(v int) {
		if v != u {
			neighbors[v] = struct{}{}
		}
	})
	for v := range neighbors {
		seen := make(map[int]struct{})
		G.ForNeighborsOf(v, func(w int) {
			if w == v {
				return
			}
			if _, ok := seen[w]; ok {
				return
			}
			seen[w] = struct{}{}
			if _, ok := neighbors[w]; ok {
				count++
			}
		})
	}
	return
}

// closedPaths uses binary search on the sorted row of u instead of a set.
// Repeated ids are adjacent in a sorted row.
func (G *Graph) closedPaths(u int) (count int) {
	neighbors := G.row(u)
	for i, v := range neighbors {
		if v == u || (i > 0 && neighbors[i-1] == v) {
			continue
		}
		row := G.row(v)
		for j, w := range row {
			if w == u || w == v || (j > 0 && row[j-1] == w) {
				continue
			}
			if _, found := find(neighbors, w); found {
				count++
			}
		}
	}
	return
}

// ExactLocal computes the local clustering coefficient of every node. The
// result has one entry per id in [0, UpperNodeIdBound()); inactive nodes and
// nodes with degree < 2 get 0.
func ExactLocal(G GraphAccess) []float64 {
	coefficients := make([]float64, G.UpperNodeIdBound())
	G.BalancedParallelForNodes(func(u int) {
		d := G.Degree(u)
		if d < 2 {
			return
		}
		coefficients[u] = float64(closedPaths(G, u)) / float64(d*(d-1))
	})
	return coefficients
}

// AvgLocal averages ExactLocal over the nodes with degree >= 2. It returns
// NaN when there is no such node.
func AvgLocal(G GraphAccess) float64 {
	coefficients := ExactLocal(G)
	var qualifying []float64
	for u, c := range coefficients {
		if G.Degree(u) >= 2 {
			qualifying = append(qualifying, c)
		}
	}
	if len(qualifying) == 0 {
		return math.NaN()
	}
	return stat.Mean(qualifying, nil)
}

// ExactGlobal computes the transitivity of G, the ratio of closed to all
// connected triples. It returns NaN when no node has degree >= 2.
func ExactGlobal(G GraphAccess) float64 {
	triangles := G.ParallelSumForNodes(func(u int) float64 {
		if G.Degree(u) < 2 {
			return 0
		}
		return float64(closedPaths(G, u))
	})
	triples := G.ParallelSumForNodes(func(u int) float64 {
		d := G.Degree(u)
		return float64(d * (d - 1))
	})
	if triples == 0 {
		return math.NaN()
	}
	return triangles / triples
}
