package forClusteringGo

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/pkg/errors"
)

// ApproxAvgLocal estimates AvgLocal from trials sampled wedges. Seed nodes
// are drawn uniformly; nodes with degree < 2 or fewer than two distinct
// neighbors are redrawn and do not count as trials. The result is NaN when
// no node can be sampled.
func ApproxAvgLocal(G GraphAccess, trials int, rnd *rand.Rand) (float64, error) {
	if err := checkTrials(trials, rnd); err != nil {
		return math.NaN(), err
	}
	qualifying := G.ParallelSumForNodes(func(u int) float64 {
		if G.Degree(u) < 2 {
			return 0
		}
		return 1
	})
	if qualifying == 0 {
		return math.NaN(), nil
	}
	s := newWedgeSampler(G, rnd, func(v int) float64 { return 1 })
	return s.estimate(trials, qualifying, func() int {
		return G.RandomNode(rnd)
	}), nil
}

// ApproxGlobal estimates ExactGlobal from trials sampled wedges. Seed nodes
// are drawn with probability proportional to degree(v)*(degree(v)-1).
func ApproxGlobal(G GraphAccess, trials int, rnd *rand.Rand) (float64, error) {
	if err := checkTrials(trials, rnd); err != nil {
		return math.NaN(), err
	}
	prefix := wedgePrefixSums(G)
	total := 0
	if len(prefix) > 0 {
		total = prefix[len(prefix)-1]
	}
	if total == 0 {
		return math.NaN(), nil
	}
	s := newWedgeSampler(G, rnd, func(v int) float64 {
		d := G.Degree(v)
		return float64(d * (d - 1))
	})
	return s.estimate(trials, float64(total), func() int {
		return weightedIndex(prefix, rnd.IntN(total))
	}), nil
}

func checkTrials(trials int, rnd *rand.Rand) error {
	if trials <= 0 {
		return errors.Wrapf(ErrInvalidTrials, "got %v", trials)
	}
	if rnd == nil {
		return ErrNilRandom
	}
	return nil
}

// wedgePrefixSums returns p with p[u] = sum of d(d-1) over ids 0..u.
func wedgePrefixSums(G GraphAccess) []int {
	n := G.UpperNodeIdBound()
	prefix := make([]int, n)
	sum := 0
	for u := 0; u < n; u++ {
		d := G.Degree(u)
		sum += d * (d - 1)
		prefix[u] = sum
	}
	return prefix
}

// weightedIndex returns the smallest index whose prefix sum exceeds r, so
// that each index owns exactly weight-many values of r in [0, total).
func weightedIndex(prefix []int, r int) int {
	return sort.Search(len(prefix), func(i int) bool {
		return prefix[i] > r
	})
}

type wedgeSampler struct {
	G      GraphAccess
	rnd    *rand.Rand
	weight func(v int) float64

	// memoized distinct-neighbor checks
	eligible         map[int]bool
	ineligibleWeight float64
}

func newWedgeSampler(G GraphAccess, rnd *rand.Rand, weight func(v int) float64) *wedgeSampler {
	return &wedgeSampler{
		G:        G,
		rnd:      rnd,
		weight:   weight,
		eligible: make(map[int]bool),
	}
}

// estimate draws seed nodes until trials valid wedges have been examined
// and returns the closed fraction. It gives up with NaN once the weight of
// the nodes known to be ineligible covers all of qualifying.
func (s *wedgeSampler) estimate(trials int, qualifying float64, draw func() int) float64 {
	closed := 0
	for valid := 0; valid < trials; {
		if s.ineligibleWeight >= qualifying {
			return math.NaN()
		}
		v := draw()
		if s.G.Degree(v) < 2 || !s.hasTwoDistinctNeighbors(v) {
			continue
		}
		valid++
		if s.closes(v) {
			closed++
		}
	}
	return float64(closed) / float64(trials)
}

func (s *wedgeSampler) hasTwoDistinctNeighbors(v int) bool {
	if ok, cached := s.eligible[v]; cached {
		return ok
	}
	var distinct bool
	if G, ok := s.G.(*Graph); ok {
		row := G.row(v)
		distinct = row[0] != row[len(row)-1]
	} else {
		first := -1
		s.G.ForNeighborsOf(v, func(w int) {
			if first < 0 {
				first = w
			} else if w != first {
				distinct = true
			}
		})
	}
	s.eligible[v] = distinct
	if !distinct {
		s.ineligibleWeight += s.weight(v)
	}
	return distinct
}

// closes samples two distinct neighbors of v and reports whether they are
// adjacent. A pair that uses a self-loop of v never closes.
func (s *wedgeSampler) closes(v int) bool {
	u := s.G.RandomNeighbor(s.rnd, v)
	w := s.G.RandomNeighbor(s.rnd, v)
	for w == u {
		w = s.G.RandomNeighbor(s.rnd, v)
	}
	if u == v || w == v {
		return false
	}
	return s.G.HasEdge(u, w)
}
