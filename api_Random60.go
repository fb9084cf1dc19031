package forClusteringGo

const (
	Random15Max = 32767
	Random60Max = (1 << 60) - 1
)

// LCG is the small linear congruential generator used for degree
// sampling. It is deterministic for a given seed and not safe for
// concurrent use.
type LCG struct {
	seed uint64
}

func NewLCG(seed uint64) *LCG {
	return &LCG{seed: seed}
}

func (r *LCG) Random15() uint64 {
	r.seed = r.seed*1103515245 + 12345
	return (r.seed / 65536) % (Random15Max + 1)
}

func (r *LCG) Random60() uint64 {
	i := r.Random15()
	for k := 0; k < 3; k++ {
		i = r.Random15() + Random15Max*i
	}
	return i % (Random60Max + 1)
}
