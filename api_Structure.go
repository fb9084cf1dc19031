package forClusteringGo

import GrB "github.com/intel/forGraphBLASGo"

// Structure returns the boolean adjacency matrix of G with self-loops
// dropped and parallel edges collapsed. The matrix is symmetric.
func Structure(G *Graph) (B *GrB.Matrix[bool], functionErr error) {
	n := G.UpperNodeIdBound()
	rows := make([]int, 0, len(G.targets))
	cols := make([]int, 0, len(G.targets))
	for u := 0; u < n; u++ {
		prev := -1
		for _, v := range G.row(u) {
			if v == u || v == prev {
				continue
			}
			rows = append(rows, u)
			cols = append(cols, v)
			prev = v
		}
	}
	vals := make([]bool, len(rows))
	for i := range vals {
		vals[i] = true
	}
	B, err := GrB.MatrixNew[bool](n, n)
	if err != nil {
		functionErr = err
		return
	}
	functionErr = B.Build(rows, cols, vals, nil)
	return
}
