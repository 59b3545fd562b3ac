package blocks

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is a placed, possibly rotated, copy of a catalog shape.
// X and Y locate the top-left corner of its matrix in board coordinates.
type Piece struct {
	Kind  Kind
	Color core.Color
	Cells Matrix
	X, Y  int
}

// NewPiece places a copy of shape at (x, y).
func NewPiece(shape Shape, x, y int) Piece {
	return Piece{
		Kind:  shape.Kind,
		Color: shape.Color,
		Cells: shape.Cells.Clone(),
		X:     x,
		Y:     y,
	}
}

// Spawn places shape horizontally centered in the top row of a board of the
// given width.
func Spawn(shape Shape, boardWidth int) Piece {
	return NewPiece(shape, (boardWidth-shape.Size())/2, 0)
}

// Size returns the side length of the piece's matrix.
func (p Piece) Size() int {
	return p.Cells.Size()
}

// Moved returns the piece translated by (dx, dy). The matrix is shared.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned 90° clockwise about its matrix.
func (p Piece) Rotated() Piece {
	p.Cells = p.Cells.Rotate()
	return p
}

// Blocks returns the board coordinates of every occupied cell.
func (p Piece) Blocks() []core.Point {
	cells := p.Cells.Cells()
	for i := range cells {
		cells[i] = cells[i].Add(p.X, p.Y)
	}
	return cells
}
