package forClusteringGo

import (
	"io"
	"os"

	"github.com/intel/forClusteringGo/EdgeList"
	"github.com/intel/forClusteringGo/MatrixMarket"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type FileFormat string

const (
	MatrixMarketFormat FileFormat = "mtx"
	EdgeListFormat     FileFormat = "edgelist"
)

// ReadProblem loads an undirected graph from a file. A Matrix Market
// matrix must be square; entry (i,j) or (j,i) makes {i,j} an edge, and
// both together give a single edge. Edge list lines are taken verbatim,
// so repeated lines give parallel edges.
func ReadProblem(filename string, format FileFormat, removeSelfEdges bool) (*Graph, error) {
	logger.Infof("Reading %v file: %v", format, filename)
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var b *Builder
	switch format {
	case MatrixMarketFormat:
		b, err = readMatrixMarket(f)
	case EdgeListFormat:
		b, err = readEdgeList(f)
	default:
		err = errors.Errorf("unknown graph file format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %v", filename)
	}
	if removeSelfEdges {
		logger.Debug("remove self edges")
		b.removeSelfEdges()
	}
	G, err := b.Build()
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"nodes":     G.NumberOfNodes(),
		"edges":     G.NumberOfEdges(),
		"selfLoops": G.NumberOfSelfLoops(),
	}).Info("ReadProblem done")
	return G, nil
}

func readMatrixMarket(r io.Reader) (*Builder, error) {
	header, scanner, err := MatrixMarket.ReadHeader(r)
	if err != nil {
		return nil, err
	}
	m, err := MatrixMarket.Read(header, scanner)
	if err != nil {
		return nil, err
	}
	if m.NRows != m.NCols {
		return nil, errors.New("A must be square")
	}
	logger.Debug("make symmetric")
	rows := make([]int, 0, len(m.Rows))
	cols := make([]int, 0, len(m.Cols))
	for k, i := range m.Rows {
		j := m.Cols[k]
		if i > j {
			i, j = j, i
		}
		rows = append(rows, i)
		cols = append(cols, j)
	}
	twoSliceSort(rows, cols)
	b := NewBuilder(m.NRows)
	for k := range rows {
		if k > 0 && rows[k] == rows[k-1] && cols[k] == cols[k-1] {
			continue
		}
		b.src = append(b.src, rows[k])
		b.dst = append(b.dst, cols[k])
	}
	return b, nil
}

func readEdgeList(r io.Reader) (*Builder, error) {
	el, err := EdgeList.Read(r, EdgeList.Options{Continuous: true})
	if err != nil {
		return nil, err
	}
	b := NewBuilder(el.NNodes)
	for _, e := range el.Edges {
		b.src = append(b.src, e[0])
		b.dst = append(b.dst, e[1])
	}
	return b, nil
}

func (b *Builder) removeSelfEdges() {
	k := 0
	for i, u := range b.src {
		if v := b.dst[i]; u != v {
			b.src[k], b.dst[k] = u, v
			k++
		}
	}
	b.src, b.dst = b.src[:k], b.dst[:k]
}
