package forClusteringGo

import "sort"

// SampleDegree estimates the mean and median degree of G from nSamples
// node ids drawn with a seeded LCG. Inactive ids count with degree 0.
func (G *Graph) SampleDegree(nSamples int, seed uint64) (sampleMean, sampleMedian float64) {
	if nSamples < 1 {
		nSamples = 1
	}
	n := G.UpperNodeIdBound()
	if n == 0 {
		return 0, 0
	}
	lcg := NewLCG(seed)
	samples := make([]int, nSamples)
	dsum := 0
	for k := range samples {
		d := G.Degree(int(lcg.Random60() % uint64(n)))
		samples[k] = d
		dsum += d
	}
	sampleMean = float64(dsum) / float64(nSamples)
	sort.Ints(samples)
	sampleMedian = float64(samples[nSamples/2])
	return
}
