package game

import "fmt"

const gridSize = 3

// Square identifies one of the nine board positions, indexed 0..8 in
// row-major order (index = x + y*3). A Square is always in range; the only
// way to build one from coordinates is NewSquare, which rejects anything
// outside the grid.
type Square uint8

// NewSquare - builds a square from grid coordinates; ok is false when either
// coordinate falls outside [0,3).
func NewSquare(x, y int) (Square, bool) {
	if x < 0 || x >= gridSize || y < 0 || y >= gridSize {
		return 0, false
	}
	return Square(x + y*gridSize), true
}

func (that Square) X() int {
	return int(that) % gridSize
}

func (that Square) Y() int {
	return int(that) / gridSize
}

// IsCorner - true for the four squares touching two board edges. Every
// square is exactly one of corner, center or edge.
func (that Square) IsCorner() bool {
	return that.X() != 1 && that.Y() != 1
}

func (that Square) IsCenter() bool {
	return that.X() == 1 && that.Y() == 1
}

func (that Square) IsEdge() bool {
	return (that.X() == 1) != (that.Y() == 1)
}

func (that Square) String() string {
	return fmt.Sprintf("(%d,%d)", that.X(), that.Y())
}

var (
	// Squares lists all nine squares in index order.
	Squares = []Square{0, 1, 2, 3, 4, 5, 6, 7, 8}

	CornerSquares = []Square{0, 2, 6, 8}
	EdgeSquares   = []Square{1, 3, 5, 7}
)
