package forClusteringGo

import (
	"sort"

	"gonum.org/v1/gonum/graph"
)

// FromGonum converts a gonum undirected graph. Node ids are assigned in
// ascending order of the gonum ids, which are returned as the mapping.
func FromGonum(g graph.Undirected) (*Graph, []int64, error) {
	var ids []int64
	nodes := g.Nodes()
	for nodes.Next() {
		ids = append(ids, nodes.Node().ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	index := make(map[int64]int, len(ids))
	for u, id := range ids {
		index[id] = u
	}
	b := NewBuilder(len(ids))
	for u, id := range ids {
		neighbors := g.From(id)
		for neighbors.Next() {
			v := index[neighbors.Node().ID()]
			if u <= v {
				if err := b.AddEdge(u, v); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	G, err := b.Build()
	if err != nil {
		return nil, nil, err
	}
	return G, ids, nil
}
