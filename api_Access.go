package forClusteringGo

import "math/rand/v2"

// GraphAccess is the read-only view of an undirected graph that the
// clustering coefficient algorithms work on. Node ids are drawn from
// [0, UpperNodeIdBound()); ids in that range may be inactive.
//
// Implementations must allow concurrent readers. The Parallel variants
// only visit active nodes. Inactive ids have degree 0.
type GraphAccess interface {
	UpperNodeIdBound() int
	Degree(u int) int

	// ForEdgesOf calls visit(u, v) once per incident edge of u, in a
	// stable order. ForNeighborsOf does the same with just v.
	ForEdgesOf(u int, visit func(u, v int))
	ForNeighborsOf(u int, visit func(v int))

	HasEdge(u, v int) bool

	ParallelForNodes(visit func(u int))
	// BalancedParallelForNodes partitions the nodes across workers by
	// estimated cost instead of by count.
	BalancedParallelForNodes(visit func(u int))
	ParallelSumForNodes(valueOf func(u int) float64) float64

	// RandomNode is uniform over the active nodes.
	RandomNode(rnd *rand.Rand) int
	// RandomNeighbor is uniform over the incident edges of u and must only
	// be called for degree(u) >= 1.
	RandomNeighbor(rnd *rand.Rand, u int) int
}
