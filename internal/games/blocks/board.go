package blocks

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/blockfall/internal/core"
)

// PointsPerLine is the flat score awarded for each cleared row.
const PointsPerLine = 100

// Cell is one position of the board.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board is the fixed-size grid of locked cells. Row 0 is the top.
type Board struct {
	width  int
	height int
	rows   [][]Cell
}

// NewBoard creates an empty width×height board.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("blocks: invalid board size %dx%d", width, height))
	}
	b := &Board{width: width, height: height}
	b.rows = make([][]Cell, height)
	for y := range b.rows {
		b.rows[y] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (x, y) addresses a board cell.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// At returns the cell at (x, y). Out-of-range coordinates are a caller bug
// and panic.
func (b *Board) At(x, y int) Cell {
	b.mustBeInBounds(x, y)
	return b.rows[y][x]
}

// Filled reports whether the cell at (x, y) is occupied. It panics on
// out-of-range coordinates.
func (b *Board) Filled(x, y int) bool {
	return b.At(x, y).Filled
}

// Set stores a cell. It panics on out-of-range coordinates.
func (b *Board) Set(x, y int, c Cell) {
	b.mustBeInBounds(x, y)
	b.rows[y][x] = c
}

func (b *Board) mustBeInBounds(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("blocks: cell (%d,%d) outside %dx%d board", x, y, b.width, b.height))
	}
}

// IsValid reports whether p, translated by (dx, dy), fits: every occupied
// cell must be inside the side walls and above the floor, and any cell at or
// below the top row must be empty. Cells above the top row are allowed.
func (b *Board) IsValid(p Piece, dx, dy int) bool {
	for _, pt := range p.Cells.Cells() {
		x := p.X + pt.X + dx
		y := p.Y + pt.Y + dy
		if x < 0 || x >= b.width || y >= b.height {
			return false
		}
		if y >= 0 && b.rows[y][x].Filled {
			return false
		}
	}
	return true
}

// Lock writes every occupied cell of p into the board using p's color.
// The caller guarantees p is in a valid resting position. Cells above the top
// row cannot be stored and are dropped.
func (b *Board) Lock(p Piece) {
	for _, pt := range p.Blocks() {
		if pt.Y < 0 {
			continue
		}
		b.Set(pt.X, pt.Y, Cell{Filled: true, Color: p.Color})
	}
}

// RowFull reports whether every column of row y is occupied.
func (b *Board) RowFull(y int) bool {
	for _, c := range b.rows[y] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// ClearLines removes full rows, shifting everything above down, and returns
// how many rows were removed. After a removal the same row index is checked
// again because it now holds the row that was above it.
func (b *Board) ClearLines() int {
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if !b.RowFull(y) {
			continue
		}
		cleared++
		for yy := y; yy > 0; yy-- {
			b.rows[yy] = b.rows[yy-1]
		}
		b.rows[0] = make([]Cell, b.width)
		y++
	}
	return cleared
}

// LineScore returns the score for clearing the given number of rows.
func LineScore(lines int) int {
	return lines * PointsPerLine
}

// Cells returns a copy of the grid for renderers and snapshots.
func (b *Board) Cells() [][]Cell {
	out := make([][]Cell, b.height)
	for y := range b.rows {
		out[y] = make([]Cell, b.width)
		copy(out[y], b.rows[y])
	}
	return out
}

// FilledCount returns the number of occupied cells.
func (b *Board) FilledCount() int {
	n := 0
	for _, row := range b.rows {
		for _, c := range row {
			if c.Filled {
				n++
			}
		}
	}
	return n
}

// String renders the board as '#' and '.' rows, top row first.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.width + 1) * b.height)
	for y, row := range b.rows {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			if c.Filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
