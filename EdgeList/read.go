// Package EdgeList reads whitespace separated edge lists, one "u v" or
// "u v weight" line per edge. Weights are accepted and discarded.
package EdgeList

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// DefaultMaxNodes bounds the node count when Options.MaxNodes is 0.
const DefaultMaxNodes = 1 << 27

type Options struct {
	// FirstNodeID is subtracted from every id when Continuous is set.
	FirstNodeID int
	// Continuous ids are used as given. Otherwise ids are mapped to
	// 0, 1, ... in order of first appearance.
	Continuous bool
	// CommentPrefixes defaults to "#" and "%".
	CommentPrefixes []string
	// MaxNodes is the largest node count Read accepts. Defaults to
	// DefaultMaxNodes.
	MaxNodes int
}

type EdgeList struct {
	NNodes int
	Edges  [][2]int
	// Labels maps node ids back to the ids in the file.
	Labels []int64
}

func isComment(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

func Read(r io.Reader, opts Options) (*EdgeList, error) {
	prefixes := opts.CommentPrefixes
	if len(prefixes) == 0 {
		prefixes = []string{"#", "%"}
	}
	maxNodes := opts.MaxNodes
	if maxNodes <= 0 {
		maxNodes = DefaultMaxNodes
	}
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	el := &EdgeList{}
	ids := make(map[int64]int)
	nodeID := func(label int64) (int, error) {
		if opts.Continuous {
			if label < int64(opts.FirstNodeID) {
				return 0, errors.Errorf("node id %v below first node id %v", label, opts.FirstNodeID)
			}
			if label-int64(opts.FirstNodeID) >= int64(maxNodes) {
				return 0, errors.Errorf("node id %v exceeds %v nodes", label, maxNodes)
			}
			u := int(label - int64(opts.FirstNodeID))
			if u >= el.NNodes {
				for k := el.NNodes; k <= u; k++ {
					el.Labels = append(el.Labels, int64(k+opts.FirstNodeID))
				}
				el.NNodes = u + 1
			}
			return u, nil
		}
		if u, ok := ids[label]; ok {
			return u, nil
		}
		if el.NNodes >= maxNodes {
			return 0, errors.Errorf("more than %v distinct node ids", maxNodes)
		}
		u := el.NNodes
		ids[label] = u
		el.Labels = append(el.Labels, label)
		el.NNodes++
		return u, nil
	}

	for line := 1; s.Scan(); line++ {
		sText := strings.TrimSpace(s.Text())
		if sText == "" || isComment(sText, prefixes) {
			continue
		}
		fields := strings.Fields(sText)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("edge list line %v: expected 2 or 3 fields, got %v", line, len(fields))
		}
		var edge [2]int
		for i := 0; i < 2; i++ {
			label, err := strconv.ParseInt(fields[i], 10, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "edge list line %v", line)
			}
			if edge[i], err = nodeID(label); err != nil {
				return nil, errors.Wrapf(err, "edge list line %v", line)
			}
		}
		if len(fields) == 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, errors.Wrapf(err, "edge list line %v", line)
			}
		}
		el.Edges = append(el.Edges, edge)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return el, nil
}
