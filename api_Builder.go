package forClusteringGo

import (
	"github.com/pkg/errors"
)

// Builder accumulates nodes and undirected edges for a Graph.
type Builder struct {
	deleted  []bool
	src, dst []int
}

// NewBuilder returns a builder with n active nodes 0..n-1.
func NewBuilder(n int) *Builder {
	return &Builder{deleted: make([]bool, n)}
}

func (b *Builder) AddNode() int {
	b.deleted = append(b.deleted, false)
	return len(b.deleted) - 1
}

func (b *Builder) AddEdge(u, v int) error {
	n := len(b.deleted)
	if u < 0 || u >= n || v < 0 || v >= n {
		return errors.Wrapf(ErrNodeOutOfRange, "edge (%v, %v) with %v nodes", u, v, n)
	}
	b.src = append(b.src, u)
	b.dst = append(b.dst, v)
	return nil
}

// RemoveNode marks u as deleted. Its id stays reserved and its incident
// edges are dropped by Build.
func (b *Builder) RemoveNode(u int) error {
	if u < 0 || u >= len(b.deleted) {
		return errors.Wrapf(ErrNodeOutOfRange, "node %v with %v nodes", u, len(b.deleted))
	}
	b.deleted[u] = true
	return nil
}

func (b *Builder) Build() (*Graph, error) {
	n := len(b.deleted)
	rows := make([]int, 0, 2*len(b.src))
	cols := make([]int, 0, 2*len(b.src))
	nselfLoops := 0
	for k, u := range b.src {
		v := b.dst[k]
		if b.deleted[u] || b.deleted[v] {
			continue
		}
		if u == v {
			rows = append(rows, u)
			cols = append(cols, u)
			nselfLoops++
			continue
		}
		rows = append(rows, u, v)
		cols = append(cols, v, u)
	}
	twoSliceSort(rows, cols)

	G := &Graph{
		offsets:    make([]int, n+1),
		targets:    cols,
		active:     make([]bool, n),
		nodes:      make([]int, 0, n),
		nselfLoops: nselfLoops,
	}
	for _, u := range rows {
		G.offsets[u+1]++
	}
	for u := 0; u < n; u++ {
		G.offsets[u+1] += G.offsets[u]
		if !b.deleted[u] {
			G.active[u] = true
			G.nodes = append(G.nodes, u)
		}
	}
	if err := G.Check(); err != nil {
		return nil, err
	}
	return G, nil
}

// FromEdges builds a graph with n nodes and the given undirected edges.
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	b := NewBuilder(n)
	for _, e := range edges {
		if err := b.AddEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}
	return b.Build()
}
