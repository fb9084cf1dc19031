package forClusteringGo

import (
	"math/rand/v2"
	"runtime"
	"sort"

	"github.com/intel/forGoParallel/parallel"
)

// Graph is an immutable undirected graph in compressed sparse row form.
// Row u holds the neighbors of u in ascending order. An edge {u,v} with
// u != v is stored in both rows, a self-loop {u,u} once in row u. Parallel
// edges are kept.
type Graph struct {
	offsets []int
	targets []int
	active  []bool
	nodes   []int

	nselfLoops int
}

var _ GraphAccess = (*Graph)(nil)

func (G *Graph) UpperNodeIdBound() int {
	return len(G.active)
}

func (G *Graph) NumberOfNodes() int {
	return len(G.nodes)
}

// NumberOfEdges counts every undirected edge once, self-loops included.
func (G *Graph) NumberOfEdges() int {
	return (len(G.targets)-G.nselfLoops)/2 + G.nselfLoops
}

func (G *Graph) NumberOfSelfLoops() int {
	return G.nselfLoops
}

func (G *Graph) HasNode(u int) bool {
	return u >= 0 && u < len(G.active) && G.active[u]
}

func (G *Graph) Degree(u int) int {
	return G.offsets[u+1] - G.offsets[u]
}

func (G *Graph) row(u int) []int {
	return G.targets[G.offsets[u]:G.offsets[u+1]]
}

func (G *Graph) ForNodes(visit func(u int)) {
	for _, u := range G.nodes {
		visit(u)
	}
}

func (G *Graph) ForEdgesOf(u int, visit func(u, v int)) {
	for _, v := range G.row(u) {
		visit(u, v)
	}
}

func (G *Graph) ForNeighborsOf(u int, visit func(v int)) {
	for _, v := range G.row(u) {
		visit(v)
	}
}

func (G *Graph) HasEdge(u, v int) bool {
	if !G.HasNode(u) || !G.HasNode(v) {
		return false
	}
	_, found := find(G.row(u), v)
	return found
}

func (G *Graph) ParallelForNodes(visit func(u int)) {
	parallel.Range(0, len(G.active), func(low, high int) {
		for u := low; u < high; u++ {
			if G.active[u] {
				visit(u)
			}
		}
	})
}

// BalancedParallelForNodes cuts [0, n) into chunks of roughly equal
// sum of degree(u)+1 and hands the chunks to parallel.Range.
func (G *Graph) BalancedParallelForNodes(visit func(u int)) {
	bounds := G.balancedBounds(8 * runtime.GOMAXPROCS(0))
	parallel.Range(0, len(bounds)-1, func(low, high int) {
		for c := low; c < high; c++ {
			for u := bounds[c]; u < bounds[c+1]; u++ {
				if G.active[u] {
					visit(u)
				}
			}
		}
	})
}

// balancedBounds returns chunk boundaries b[0]=0 < ... <= b[k]=n. The
// cumulative cost of nodes [0,i) is offsets[i]+i, so each boundary is a
// binary search over the row offsets.
func (G *Graph) balancedBounds(chunks int) []int {
	n := len(G.active)
	if chunks > n {
		chunks = n
	}
	if chunks < 1 {
		return []int{0, n}
	}
	total := G.offsets[n] + n
	bounds := make([]int, chunks+1)
	for c := 1; c < chunks; c++ {
		target := int(int64(c) * int64(total) / int64(chunks))
		bounds[c] = sort.Search(n, func(i int) bool {
			return G.offsets[i]+i >= target
		})
	}
	bounds[chunks] = n
	return bounds
}

// ParallelSumForNodes adds up the partial sums of the balanced chunks in
// chunk order, so the result does not depend on scheduling.
func (G *Graph) ParallelSumForNodes(valueOf func(u int) float64) (sum float64) {
	bounds := G.balancedBounds(8 * runtime.GOMAXPROCS(0))
	partial := make([]float64, len(bounds)-1)
	parallel.Range(0, len(partial), func(low, high int) {
		for c := low; c < high; c++ {
			for u := bounds[c]; u < bounds[c+1]; u++ {
				if G.active[u] {
					partial[c] += valueOf(u)
				}
			}
		}
	})
	for _, s := range partial {
		sum += s
	}
	return
}

func (G *Graph) RandomNode(rnd *rand.Rand) int {
	return G.nodes[rnd.IntN(len(G.nodes))]
}

func (G *Graph) RandomNeighbor(rnd *rand.Rand, u int) int {
	row := G.row(u)
	return row[rnd.IntN(len(row))]
}

func find(ints []int, element int) (index int, found bool) {
	index = sort.SearchInts(ints, element)
	found = index < len(ints) && ints[index] == element
	return
}
