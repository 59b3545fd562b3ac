package blocks

import (
	"math/rand"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Kind identifies one of the seven piece geometries.
type Kind int

const (
	KindL Kind = iota
	KindZ
	KindI
	KindJ
	KindO
	KindS
	KindT
)

// String returns the single-letter piece name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(catalog) {
		return "?"
	}
	return catalog[k].Name
}

// Shape is an immutable catalog entry.
type Shape struct {
	Kind  Kind
	Name  string
	Color core.Color
	Cells Matrix
}

// Size returns the side length of the shape's matrix.
func (s Shape) Size() int {
	return s.Cells.Size()
}

// catalog is indexed by Kind and never modified after init.
var catalog = [...]Shape{
	{Kind: KindL, Name: "L", Color: core.ColorOrange, Cells: ParseMatrix(
		"..#",
		"###",
		"...",
	)},
	{Kind: KindZ, Name: "Z", Color: core.ColorRed, Cells: ParseMatrix(
		"##.",
		".##",
		"...",
	)},
	{Kind: KindI, Name: "I", Color: core.ColorBrightCyan, Cells: ParseMatrix(
		"####",
		"....",
		"....",
		"....",
	)},
	{Kind: KindJ, Name: "J", Color: core.ColorBlue, Cells: ParseMatrix(
		"#..",
		"###",
		"...",
	)},
	{Kind: KindO, Name: "O", Color: core.ColorYellow, Cells: ParseMatrix(
		"##",
		"##",
	)},
	{Kind: KindS, Name: "S", Color: core.ColorGreen, Cells: ParseMatrix(
		".##",
		"##.",
		"...",
	)},
	{Kind: KindT, Name: "T", Color: core.ColorMagenta, Cells: ParseMatrix(
		".#.",
		"###",
		"...",
	)},
}

// Catalog returns a copy of all shapes in Kind order.
func Catalog() []Shape {
	out := make([]Shape, len(catalog))
	for i, s := range catalog {
		s.Cells = s.Cells.Clone()
		out[i] = s
	}
	return out
}

// ShapeOf returns the catalog entry for a kind.
func ShapeOf(k Kind) Shape {
	s := catalog[k]
	s.Cells = s.Cells.Clone()
	return s
}

// PickRandom returns a uniformly chosen shape, independently of earlier
// picks, using one draw from rng. Repeats are possible.
func PickRandom(rng *rand.Rand) Shape {
	return ShapeOf(Kind(rng.Intn(len(catalog))))
}
