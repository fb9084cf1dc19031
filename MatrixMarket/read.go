package MatrixMarket

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Coordinates holds the explicit entries of a Matrix Market file, with
// zero-based indices. Symmetric storage is expanded to both triangles.
type Coordinates struct {
	NRows, NCols int
	Rows, Cols   []int
	Values       []float64
}

func newCoordinates(header Header) *Coordinates {
	return &Coordinates{
		NRows:  header.NRows,
		NCols:  header.NCols,
		Rows:   make([]int, 0, header.NVals),
		Cols:   make([]int, 0, header.NVals),
		Values: make([]float64, 0, header.NVals),
	}
}

func (m *Coordinates) addGeneral(row, col int, val float64) {
	m.Rows = append(m.Rows, row)
	m.Cols = append(m.Cols, col)
	m.Values = append(m.Values, val)
}

func (m *Coordinates) addSymmetric(row, col int, val float64) {
	m.addGeneral(row, col, val)
	if row != col {
		m.addGeneral(col, row, val)
	}
}

func (m *Coordinates) addSkewSymmetric(row, col int, val float64) {
	m.addGeneral(row, col, val)
	if row != col {
		m.addGeneral(col, row, -val)
	}
}

func (m *Coordinates) adder(storage Storage) func(int, int, float64) {
	switch storage {
	case Symmetric:
		return m.addSymmetric
	case SkewSymmetric:
		return m.addSkewSymmetric
	default:
		return m.addGeneral
	}
}

func parseIndex(s string, bound int, name string) (int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "Matrix Market coordinate line %v", name)
	}
	if v < 1 || v > int64(bound) {
		return 0, errors.Errorf("Matrix Market coordinate line %v %v out of range [1, %v]", name, v, bound)
	}
	return int(v) - 1, nil
}

func parseValue(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrap(err, "Matrix Market value")
	}
	return v, nil
}

func Read(header Header, s *bufio.Scanner) (*Coordinates, error) {
	m := newCoordinates(header)
	addValue := m.adder(header.Storage)
	switch header.Format {
	case Coordinate:
		nfields := 3
		if header.Type == Pattern {
			nfields = 2
		}
		nvals := header.NVals
		for {
			sText, ok := nextDataLine(s)
			if !ok {
				break
			}
			fields := strings.Fields(sText)
			if len(fields) != nfields {
				return nil, errors.Errorf("Matrix Market coordinate line: expected %v entries, got %v", nfields, len(fields))
			}
			row, err := parseIndex(fields[0], header.NRows, "row")
			if err != nil {
				return nil, err
			}
			col, err := parseIndex(fields[1], header.NCols, "col")
			if err != nil {
				return nil, err
			}
			val := 1.0
			if nfields == 3 {
				if val, err = parseValue(fields[2]); err != nil {
					return nil, err
				}
			}
			if nvals == 0 {
				return nil, errors.New("Matrix Market too many coordinate lines")
			}
			addValue(row, col, val)
			nvals--
		}
		if nvals > 0 {
			return nil, errors.New("Matrix Market too few coordinate lines")
		}
	case Array:
		if header.Type == Pattern {
			return nil, errors.New("Matrix Market array format not supported for pattern type")
		}
		var row, col int
		resetRow := func() {
			switch header.Storage {
			case Symmetric:
				row = col
			case SkewSymmetric:
				row = col + 1
			default:
				row = 0
			}
		}
		resetRow()
		for {
			sText, ok := nextDataLine(s)
			if !ok {
				break
			}
			fields := strings.Fields(sText)
			if len(fields) != 1 {
				return nil, errors.Errorf("Matrix Market array line: expected 1 entry, got %v", len(fields))
			}
			if row >= header.NRows || col >= header.NCols {
				return nil, errors.New("Matrix Market too many array lines")
			}
			val, err := parseValue(fields[0])
			if err != nil {
				return nil, err
			}
			if val != 0 {
				addValue(row, col, val)
			}
			if row++; row >= header.NRows {
				col++
				resetRow()
			}
		}
	}
	return m, s.Err()
}
