package forClusteringGo

import (
	"sort"

	"github.com/intel/forGoParallel/parallel"
	"github.com/intel/forGoParallel/psort"
)

// edgeSorter orders parallel (row, col) slices lexicographically.
type edgeSorter struct {
	rows, cols []int
}

func (s edgeSorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(edgeSorter)
	return func(i, j, len int) {
		parallel.Do(func() {
			copy(s.rows[i:i+len], src.rows[j:j+len])
		}, func() {
			copy(s.cols[i:i+len], src.cols[j:j+len])
		})
	}
}

func (s edgeSorter) Len() int {
	return len(s.rows)
}

func (s edgeSorter) Less(i, j int) bool {
	if ri, rj := s.rows[i], s.rows[j]; ri != rj {
		return ri < rj
	}
	return s.cols[i] < s.cols[j]
}

func (s edgeSorter) NewTemp() psort.StableSorter {
	return edgeSorter{
		rows: make([]int, len(s.rows)),
		cols: make([]int, len(s.cols)),
	}
}

func (s edgeSorter) SequentialSort(i, j int) {
	sort.Stable(edgeSorter{
		rows: s.rows[i:j],
		cols: s.cols[i:j],
	})
}

func (s edgeSorter) Swap(i, j int) {
	s.rows[i], s.rows[j] = s.rows[j], s.rows[i]
	s.cols[i], s.cols[j] = s.cols[j], s.cols[i]
}

func twoSliceSort(rows, cols []int) {
	psort.StableSort(edgeSorter{rows: rows, cols: cols})
}
