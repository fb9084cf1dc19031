package MatrixMarket

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type (
	Format  int
	Type    int
	Storage int
)

const (
	Coordinate Format = iota
	Array
)

const (
	Real Type = iota
	Complex
	Pattern
	Integer
)

const (
	General Storage = iota
	Hermitian
	Symmetric
	SkewSymmetric
)

var (
	formats  = map[string]Format{"coordinate": Coordinate, "array": Array}
	types    = map[string]Type{"real": Real, "complex": Complex, "pattern": Pattern, "integer": Integer}
	storages = map[string]Storage{"general": General, "hermitian": Hermitian, "symmetric": Symmetric, "skew-symmetric": SkewSymmetric}
)

type Header struct {
	Format              Format
	Type                Type
	Storage             Storage
	NRows, NCols, NVals int
}

// nextDataLine advances s to the next line that is neither a comment nor
// blank and returns it trimmed.
func nextDataLine(s *bufio.Scanner) (string, bool) {
	for s.Scan() {
		sText := s.Text()
		if strings.HasPrefix(sText, "%") {
			continue
		}
		if sText = strings.TrimSpace(sText); sText != "" {
			return sText, true
		}
	}
	return "", false
}

func parseSizes(line string, names ...string) ([]int, error) {
	fields := strings.Fields(line)
	if len(fields) != len(names) {
		return nil, errors.Errorf("Matrix Market size line: expected %v entries, got %v", len(names), len(fields))
	}
	sizes := make([]int, len(fields))
	for i, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Matrix Market size line %v", names[i])
		}
		if v < 0 {
			return nil, errors.Errorf("Matrix Market size line %v is negative: %v", names[i], v)
		}
		sizes[i] = int(v)
	}
	return sizes, nil
}

// ReadHeader parses the banner and the size line. Complex and hermitian
// matrices are rejected.
func ReadHeader(r io.Reader) (header Header, scanner *bufio.Scanner, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	if !s.Scan() {
		err = errors.New("Matrix Market header line missing")
		return
	}
	fields := strings.Fields(strings.ToLower(s.Text()))
	if len(fields) != 5 || fields[0] != "%%matrixmarket" || fields[1] != "matrix" {
		err = errors.Errorf("Matrix Market banner expected, got %q", s.Text())
		return
	}
	var ok bool
	if header.Format, ok = formats[fields[2]]; !ok {
		err = errors.Errorf("Matrix Market format %v, expected coordinate or array", fields[2])
		return
	}
	if header.Type, ok = types[fields[3]]; !ok {
		err = errors.Errorf("Matrix Market type %v, expected real, complex, pattern or integer", fields[3])
		return
	}
	if header.Storage, ok = storages[fields[4]]; !ok {
		err = errors.Errorf("Matrix Market storage %v, expected general, hermitian, symmetric or skew-symmetric", fields[4])
		return
	}
	if header.Type == Complex || header.Storage == Hermitian {
		err = errors.Errorf("Matrix Market %v %v not supported", fields[3], fields[4])
		return
	}

	line, ok := nextDataLine(s)
	if !ok {
		err = errors.New("Matrix Market size line missing")
		return
	}
	var sizes []int
	if header.Format == Coordinate {
		if sizes, err = parseSizes(line, "nrows", "ncols", "nvals"); err != nil {
			return
		}
		header.NRows, header.NCols, header.NVals = sizes[0], sizes[1], sizes[2]
	} else {
		if sizes, err = parseSizes(line, "nrows", "ncols"); err != nil {
			return
		}
		header.NRows, header.NCols = sizes[0], sizes[1]
		header.NVals = header.NRows * header.NCols
	}
	return header, s, nil
}
