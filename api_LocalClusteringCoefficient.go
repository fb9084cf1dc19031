package forClusteringGo

import (
	"math"

	GrB "github.com/intel/forGraphBLASGo"
)

// DegreePresort selects the node order of the adjacency matrix before the
// masked product in ClosedPathCounts.
type DegreePresort int

const (
	NoSort                 DegreePresort = 0
	SortByDegreeAscending  DegreePresort = 1
	SortByDegreeDescending DegreePresort = -1
	AutoSelectSort         DegreePresort = 2
)

var AllDegreePresorts = []DegreePresort{NoSort, SortByDegreeAscending, SortByDegreeDescending, AutoSelectSort}

func (presort DegreePresort) String() string {
	switch presort {
	case NoSort:
		return "none"
	case SortByDegreeAscending:
		return "ascending"
	case SortByDegreeDescending:
		return "descending"
	case AutoSelectSort:
		return "auto"
	}
	return "unknown"
}

// selectPresort sorts by descending degree when a degree sample shows a
// heavy tail.
func selectPresort(G *Graph, nvals int) DegreePresort {
	const nSamples = 1000
	n := G.UpperNodeIdBound()
	if n <= nSamples || float64(nvals)/float64(n) < 10 {
		return NoSort
	}
	mean, median := G.SampleDegree(nSamples, uint64(n))
	logger.Debugf("sampled degree mean %v median %v", mean, median)
	if mean > 4*median {
		return SortByDegreeDescending
	}
	return NoSort
}

// ClosedPathCounts computes, for every node id u, the number of closed
// paths u-v-w-u with distinct v and w as the row sums of B .* (B*B), where
// B is Structure(G). The counts equal the ones the clustering coefficient
// algorithms use. With AutoSelectSort, *presort is replaced by the
// ordering actually used.
func ClosedPathCounts(G *Graph, presort *DegreePresort) (closed []int, err error) {
	defer recoverError(&err)
	n := G.UpperNodeIdBound()
	closed = make([]int, n)
	if n == 0 {
		return
	}

	B, err := Structure(G)
	try(err)
	nvals, err := B.NVals()
	try(err)
	if *presort == AutoSelectSort {
		*presort = selectPresort(G, nvals)
	}
	var P []int
	if *presort != NoSort {
		P = G.SortByDegree(*presort > 0)
		try(GrB.MatrixExtract(B, nil, nil, B, P, P, nil))
	}
	try(B.Wait(GrB.Materialize))

	logger.Debugf("GrB.MxM(C<B>, B, B) with presort %v", *presort)
	C, err := GrB.MatrixNew[int](n, n)
	try(err)
	try(GrB.MxM(C, B, nil, PlusOne[int, bool, bool], B, B, GrB.DescS))

	ones, err := GrB.VectorNew[int](n)
	try(err)
	try(GrB.VectorAssignConstant(ones, nil, nil, 1, GrB.All(n), nil))
	rowSums, err := GrB.VectorNew[int](n)
	try(err)
	try(GrB.MxV(rowSums, nil, nil, PlusFirst[int, int], C, ones, nil))
	try(rowSums.Wait(GrB.Materialize))

	indices, values, err := rowSums.ExtractTuples()
	try(err)
	for k, i := range indices {
		if P != nil {
			i = P[i]
		}
		closed[i] = values[k]
	}
	return
}

// ExactLocalLinearAlgebra computes the same vector as ExactLocal from
// ClosedPathCounts.
func ExactLocalLinearAlgebra(G *Graph) ([]float64, error) {
	presort := AutoSelectSort
	closed, err := ClosedPathCounts(G, &presort)
	if err != nil {
		return nil, err
	}
	coefficients := make([]float64, len(closed))
	for u, count := range closed {
		if d := G.Degree(u); d >= 2 {
			coefficients[u] = float64(count) / float64(d*(d-1))
		}
	}
	return coefficients, nil
}

// ExactGlobalLinearAlgebra computes the same value as ExactGlobal from
// ClosedPathCounts. It returns NaN when no node has degree >= 2.
func ExactGlobalLinearAlgebra(G *Graph) (float64, error) {
	presort := AutoSelectSort
	closed, err := ClosedPathCounts(G, &presort)
	if err != nil {
		return math.NaN(), err
	}
	var triangles, triples int
	for u, count := range closed {
		d := G.Degree(u)
		triangles += count
		triples += d * (d - 1)
	}
	if triples == 0 {
		return math.NaN(), nil
	}
	return float64(triangles) / float64(triples), nil
}

// TriangleCount counts the triangles of G, ignoring self-loops and
// parallel edges. Every triangle is six closed paths.
func TriangleCount(G *Graph) (int, error) {
	presort := AutoSelectSort
	closed, err := ClosedPathCounts(G, &presort)
	if err != nil {
		return 0, err
	}
	sum := 0
	for _, count := range closed {
		sum += count
	}
	return sum / 6, nil
}
