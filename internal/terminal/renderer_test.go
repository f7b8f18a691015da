package terminal

import (
	"io"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

func asciiOutput() *termenv.Output {
	return termenv.NewOutput(io.Discard, termenv.WithProfile(termenv.Ascii))
}

func TestRenderer_Render(t *testing.T) {
	board := game.NewBoardFromString("X.O\n.X.\n..O")

	t.Run("ASCII style draws the grid with dots for empty slots", func(t *testing.T) {
		// Given: a plain renderer
		renderer := NewRenderer(asciiOutput(), StyleASCII, false)

		// When: rendering a mid-game board
		rendered := renderer.Render(board)

		// Then: the grid matches cell for cell
		want := "" +
			" X | . | O \n" +
			"---+---+---\n" +
			" . | X | . \n" +
			"---+---+---\n" +
			" . | . | O \n"
		assert.Equal(t, want, rendered)
	})

	t.Run("Color on an ASCII-profile terminal degrades to plain text", func(t *testing.T) {
		plain := NewRenderer(asciiOutput(), StyleASCII, false).Render(board)
		colored := NewRenderer(asciiOutput(), StyleASCII, true).Render(board)

		assert.Equal(t, plain, colored)
	})

	t.Run("Emoji style round-trips through the board parser", func(t *testing.T) {
		renderer := NewRenderer(asciiOutput(), StyleEmoji, false)

		rendered := renderer.Render(board)

		assert.Equal(t, "❌⬜⭕\n⬜❌⬜\n⬜⬜⭕\n", rendered)
		assert.Equal(t, board, game.NewBoardFromString(rendered))
	})

	t.Run("The empty board renders all empty slots", func(t *testing.T) {
		renderer := NewRenderer(asciiOutput(), StyleEmoji, false)

		assert.Equal(t, "⬜⬜⬜\n⬜⬜⬜\n⬜⬜⬜\n", renderer.Render(game.NewBoard()))
	})
}
