package EdgeList_test

import (
	"strings"
	"testing"

	"github.com/intel/forClusteringGo/EdgeList"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadContinuous(t *testing.T) {
	el, err := EdgeList.Read(strings.NewReader("# comment\n1 2\n2 3 0.5\n\n% other comment\n3 5\n"),
		EdgeList.Options{FirstNodeID: 1, Continuous: true})
	require.NoError(t, err)
	assert.Equal(t, 5, el.NNodes)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 4}}, el.Edges)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, el.Labels)
}

func TestReadRelabels(t *testing.T) {
	el, err := EdgeList.Read(strings.NewReader("100 7\n7 42\n42 100\n"), EdgeList.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, el.NNodes)
	assert.Equal(t, [][2]int{{0, 1}, {1, 2}, {2, 0}}, el.Edges)
	assert.Equal(t, []int64{100, 7, 42}, el.Labels)
}

func TestReadErrors(t *testing.T) {
	for name, content := range map[string]string{
		"fields":   "1\n",
		"too many": "1 2 3 4\n",
		"id":       "a b\n",
		"weight":   "1 2 w\n",
		"below":    "0 1\n",
	} {
		_, err := EdgeList.Read(strings.NewReader(content), EdgeList.Options{FirstNodeID: 1, Continuous: true})
		assert.Error(t, err, name)
	}
}

func TestReadMaxNodes(t *testing.T) {
	_, err := EdgeList.Read(strings.NewReader("1000000000000 1\n"), EdgeList.Options{Continuous: true})
	assert.ErrorContains(t, err, "exceeds")

	opts := EdgeList.Options{FirstNodeID: 1, Continuous: true, MaxNodes: 3}
	el, err := EdgeList.Read(strings.NewReader("1 3\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, 3, el.NNodes)
	_, err = EdgeList.Read(strings.NewReader("1 4\n"), opts)
	assert.Error(t, err)

	_, err = EdgeList.Read(strings.NewReader("10 20\n20 30\n"), EdgeList.Options{MaxNodes: 2})
	assert.Error(t, err)
}
