package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSquare(t *testing.T) {
	t.Run("Builds every in-range square with round-trip coordinates", func(t *testing.T) {
		for y := 0; y < 3; y++ {
			for x := 0; x < 3; x++ {
				// When: building a square from in-range coordinates
				square, ok := NewSquare(x, y)

				// Then: it succeeds and keeps its coordinates
				require.True(t, ok)
				assert.Equal(t, x, square.X())
				assert.Equal(t, y, square.Y())
				assert.Equal(t, Square(x+y*3), square)
			}
		}
	})

	t.Run("Rejects out-of-range coordinates", func(t *testing.T) {
		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {3, 3}, {-1, -1}} {
			_, ok := NewSquare(coords[0], coords[1])
			assert.False(t, ok, "coords %v", coords)
		}
	})
}

func TestSquare_Classification(t *testing.T) {
	t.Run("Every square is exactly one of corner, center or edge", func(t *testing.T) {
		corners := 0
		centers := 0
		edges := 0

		for _, square := range Squares {
			kinds := 0
			if square.IsCorner() {
				kinds++
				corners++
			}
			if square.IsCenter() {
				kinds++
				centers++
			}
			if square.IsEdge() {
				kinds++
				edges++
			}
			assert.Equal(t, 1, kinds, "square %s", square)
		}

		assert.Equal(t, 4, corners)
		assert.Equal(t, 1, centers)
		assert.Equal(t, 4, edges)
	})

	t.Run("The center is index 4", func(t *testing.T) {
		assert.True(t, Square(4).IsCenter())
	})
}

func TestSquare_Collections(t *testing.T) {
	t.Run("Squares lists all nine in index order", func(t *testing.T) {
		require.Len(t, Squares, 9)
		for index, square := range Squares {
			assert.Equal(t, Square(index), square)
		}
	})

	t.Run("Corner and edge collections agree with the predicates", func(t *testing.T) {
		require.Len(t, CornerSquares, 4)
		for _, square := range CornerSquares {
			assert.True(t, square.IsCorner(), "square %s", square)
		}

		require.Len(t, EdgeSquares, 4)
		for _, square := range EdgeSquares {
			assert.True(t, square.IsEdge(), "square %s", square)
		}
	})
}
