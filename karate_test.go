package forClusteringGo_test

import (
	"testing"

	CC "github.com/intel/forClusteringGo"
)

const zacharyNumNodes = 34

// Zachary's karate club, zero-based.
var zacharyEdges = [][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5}, {0, 6}, {0, 7}, {0, 8},
	{0, 10}, {0, 11}, {0, 12}, {0, 13}, {0, 17}, {0, 19}, {0, 21}, {0, 31},
	{1, 2}, {1, 3}, {1, 7}, {1, 13}, {1, 17}, {1, 19}, {1, 21}, {1, 30},
	{2, 3}, {2, 7}, {2, 8}, {2, 9}, {2, 13}, {2, 27}, {2, 28}, {2, 32},
	{3, 7}, {3, 12}, {3, 13},
	{4, 6}, {4, 10},
	{5, 6}, {5, 10}, {5, 16},
	{6, 16},
	{8, 30}, {8, 32}, {8, 33},
	{9, 33},
	{13, 33},
	{14, 32}, {14, 33},
	{15, 32}, {15, 33},
	{18, 32}, {18, 33},
	{19, 33},
	{20, 32}, {20, 33},
	{22, 32}, {22, 33},
	{23, 25}, {23, 27}, {23, 29}, {23, 32}, {23, 33},
	{24, 25}, {24, 27}, {24, 31},
	{25, 31},
	{26, 29}, {26, 33},
	{27, 33},
	{28, 31}, {28, 33},
	{29, 32}, {29, 33},
	{30, 32}, {30, 33},
	{31, 32}, {31, 33},
	{32, 33},
}

const (
	zacharyTriangles    = 45
	zacharyTransitivity = 0.2556818181818182
	// average over all 34 nodes, node 11 has degree 1
	zacharyAvgClusteringAllNodes = 0.5706384782076823
)

func mustGraph(t testing.TB, n int, edges [][2]int) *CC.Graph {
	t.Helper()
	G, err := CC.FromEdges(n, edges)
	if err != nil {
		t.Fatal(err)
	}
	return G
}

func karate(t testing.TB) *CC.Graph {
	return mustGraph(t, zacharyNumNodes, zacharyEdges)
}

func complete(t testing.TB, n int) *CC.Graph {
	var edges [][2]int
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			edges = append(edges, [2]int{u, v})
		}
	}
	return mustGraph(t, n, edges)
}

func cycle(t testing.TB, n int) *CC.Graph {
	var edges [][2]int
	for u := 0; u < n; u++ {
		edges = append(edges, [2]int{u, (u + 1) % n})
	}
	return mustGraph(t, n, edges)
}

func star(t testing.TB, leaves int) *CC.Graph {
	var edges [][2]int
	for v := 1; v <= leaves; v++ {
		edges = append(edges, [2]int{0, v})
	}
	return mustGraph(t, leaves+1, edges)
}
