package forClusteringGo

import (
	"github.com/intel/forGoParallel/parallel"
	"github.com/pkg/errors"
)

var errCorruptGraph = errors.New("corrupt graph")

// Check verifies the structural invariants of G: offsets are monotone,
// rows are sorted and in range, deleted ids have empty rows, and every
// off-diagonal entry is mirrored.
func (G *Graph) Check() error {
	n := len(G.active)
	if len(G.offsets) != n+1 || G.offsets[0] != 0 || G.offsets[n] != len(G.targets) {
		return errors.Wrap(errCorruptGraph, "offsets do not match targets")
	}
	for u := 0; u < n; u++ {
		if G.offsets[u] > G.offsets[u+1] {
			return errors.Wrapf(errCorruptGraph, "offsets decrease at node %v", u)
		}
	}
	ok := parallel.RangeAnd(0, n, func(low, high int) bool {
		for u := low; u < high; u++ {
			row := G.row(u)
			if !G.active[u] && len(row) > 0 {
				return false
			}
			for i, v := range row {
				if v < 0 || v >= n || !G.active[v] {
					return false
				}
				if i > 0 && row[i-1] > v {
					return false
				}
				if v != u && countOf(G.row(v), u) != countOf(row, v) {
					return false
				}
			}
		}
		return true
	})
	if !ok {
		return errors.Wrap(errCorruptGraph, "adjacency rows are inconsistent")
	}
	return nil
}

func countOf(row []int, v int) int {
	index, found := find(row, v)
	if !found {
		return 0
	}
	count := 0
	for ; index < len(row) && row[index] == v; index++ {
		count++
	}
	return count
}
