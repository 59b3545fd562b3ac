package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Matrix is a square N×N occupancy grid, indexed [row][col].
// N is the piece's declared size; there is no padding beyond it.
type Matrix [][]bool

// NewMatrix returns an empty n×n matrix.
func NewMatrix(n int) Matrix {
	m := make(Matrix, n)
	for r := range m {
		m[r] = make([]bool, n)
	}
	return m
}

// ParseMatrix builds a matrix from rows of '#' (filled) and '.' (empty).
// It panics if the rows do not form a square, since it is only used for
// static tables.
func ParseMatrix(rows ...string) Matrix {
	n := len(rows)
	m := NewMatrix(n)
	for r, row := range rows {
		if len(row) != n {
			panic(fmt.Sprintf("blocks: row %d of matrix is %d wide, want %d", r, len(row), n))
		}
		for c, ch := range row {
			m[r][c] = ch == '#'
		}
	}
	return m
}

// Size returns N.
func (m Matrix) Size() int {
	return len(m)
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for r := range m {
		out[r] = make([]bool, len(m[r]))
		copy(out[r], m[r])
	}
	return out
}

// Rotate returns the matrix turned 90° clockwise: transpose, then reverse
// each row. The receiver is left untouched.
func (m Matrix) Rotate() Matrix {
	n := m.Size()
	out := NewMatrix(n)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[r][c] = m[c][r]
		}
	}
	for r := 0; r < n; r++ {
		row := out[r]
		for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
	return out
}

// Equal reports whether both matrices have the same size and occupancy.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for r := range m {
		if len(m[r]) != len(other[r]) {
			return false
		}
		for c := range m[r] {
			if m[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// Cells returns the offsets of occupied cells, row by row.
func (m Matrix) Cells() []core.Point {
	var cells []core.Point
	for r := range m {
		for c, filled := range m[r] {
			if filled {
				cells = append(cells, core.Point{X: c, Y: r})
			}
		}
	}
	return cells
}

// Count returns the number of occupied cells.
func (m Matrix) Count() int {
	n := 0
	for r := range m {
		for _, filled := range m[r] {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the matrix in the same '#'/'.' form ParseMatrix accepts.
func (m Matrix) String() string {
	var b strings.Builder
	for r := range m {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, filled := range m[r] {
			if filled {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
