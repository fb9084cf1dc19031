package MatrixMarket_test

import (
	"strings"
	"testing"

	"github.com/intel/forClusteringGo/MatrixMarket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func read(t *testing.T, content string) (*MatrixMarket.Coordinates, error) {
	t.Helper()
	header, scanner, err := MatrixMarket.ReadHeader(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	return MatrixMarket.Read(header, scanner)
}

func TestReadCoordinateSymmetric(t *testing.T) {
	m, err := read(t, `%%MatrixMarket matrix coordinate real symmetric
% comment

3 3 3
2 1 1.5
3 3 2
3 2 -1
`)
	require.NoError(t, err)
	assert.Equal(t, 3, m.NRows)
	assert.Equal(t, []int{1, 0, 2, 2, 1}, m.Rows)
	assert.Equal(t, []int{0, 1, 2, 1, 2}, m.Cols)
	assert.Equal(t, []float64{1.5, 1.5, 2, -1, -1}, m.Values)
}

func TestReadCoordinatePattern(t *testing.T) {
	m, err := read(t, "%%MatrixMarket matrix coordinate pattern general\n2 2 2\n1 2\n2 1\n")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, m.Rows)
	assert.Equal(t, []int{1, 0}, m.Cols)
	assert.Equal(t, []float64{1, 1}, m.Values)
}

func TestReadArraySkewSymmetric(t *testing.T) {
	m, err := read(t, "%%MatrixMarket matrix array integer skew-symmetric\n3 3\n4\n0\n5\n")
	require.NoError(t, err)
	// column major strictly lower triangle: (1,0)=4 (2,0)=0 (2,1)=5
	assert.Equal(t, []int{1, 0, 2, 1}, m.Rows)
	assert.Equal(t, []int{0, 1, 1, 2}, m.Cols)
	assert.Equal(t, []float64{4, -4, 5, -5}, m.Values)
}

func TestReadHeader(t *testing.T) {
	for content, expected := range map[string]MatrixMarket.Header{
		"%%MatrixMarket matrix coordinate integer symmetric\n% c\n4 4 3\n": {
			Format: MatrixMarket.Coordinate, Type: MatrixMarket.Integer, Storage: MatrixMarket.Symmetric,
			NRows: 4, NCols: 4, NVals: 3,
		},
		"%%MatrixMarket MATRIX Array Real General\n2 3\n": {
			Format: MatrixMarket.Array, Type: MatrixMarket.Real, Storage: MatrixMarket.General,
			NRows: 2, NCols: 3, NVals: 6,
		},
	} {
		header, _, err := MatrixMarket.ReadHeader(strings.NewReader(content))
		require.NoError(t, err, content)
		assert.Equal(t, expected, header, content)
	}
}

func TestReadArrayGeneral(t *testing.T) {
	m, err := read(t, "%%MatrixMarket matrix array real general\n2 2\n1\n0\n0\n2\n")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, m.Rows)
	assert.Equal(t, []int{0, 1}, m.Cols)
	assert.Equal(t, []float64{1, 2}, m.Values)
}

func TestReadArraySymmetric(t *testing.T) {
	// column major lower triangle including the diagonal
	m, err := read(t, "%%MatrixMarket matrix array real symmetric\n3 3\n1\n2\n0\n3\n0\n4\n")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1, 2}, m.Rows)
	assert.Equal(t, []int{0, 0, 1, 1, 2}, m.Cols)
	assert.Equal(t, []float64{1, 2, 2, 3, 4}, m.Values)
}

func TestReadErrors(t *testing.T) {
	for name, content := range map[string]string{
		"empty":        "",
		"prefix":       "%MatrixMarket matrix coordinate real general\n1 1 0\n",
		"format":       "%%MatrixMarket matrix sparse real general\n1 1 0\n",
		"complex":      "%%MatrixMarket matrix coordinate complex general\n1 1 0\n",
		"no sizes":     "%%MatrixMarket matrix coordinate real general\n% only a comment\n",
		"too few":      "%%MatrixMarket matrix coordinate real general\n2 2 2\n1 1 1\n",
		"too many":     "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 1\n2 2 1\n",
		"out of range": "%%MatrixMarket matrix coordinate real general\n2 2 1\n3 1 1\n",
		"bad value":    "%%MatrixMarket matrix coordinate real general\n2 2 1\n1 1 x\n",
		"fields":       "%%MatrixMarket matrix coordinate pattern general\n2 2 1\n1 1 1\n",
		"array":        "%%MatrixMarket matrix array pattern general\n2 2\n",
		"hermitian":    "%%MatrixMarket matrix coordinate real hermitian\n1 1 0\n",
		"object":       "%%MatrixMarket vector coordinate real general\n1 1 0\n",
		"banner":       "%%MatrixMarket matrix coordinate real\n1 1 0\n",
		"type":         "%%MatrixMarket matrix coordinate quaternion general\n1 1 0\n",
		"storage":      "%%MatrixMarket matrix coordinate real upper\n1 1 0\n",
		"negative":     "%%MatrixMarket matrix coordinate real general\n-1 1 0\n",
		"sizes":        "%%MatrixMarket matrix array real general\n2 2 4\n",
		"array lines":  "%%MatrixMarket matrix array real general\n1 1\n1\n2\n",
		"array fields": "%%MatrixMarket matrix array real general\n1 1\n1 1\n",
	} {
		_, err := read(t, content)
		assert.Error(t, err, name)
	}
}
