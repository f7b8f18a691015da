package terminal

import (
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

const (
	StyleASCII = "ascii"
	StyleEmoji = "emoji"
)

// Renderer builds terminal views of a board. Rendering is a pure function of
// board state; the emoji form happens to parse back through the board
// constructors, but nothing beyond that is guaranteed.
type Renderer struct {
	output *termenv.Output
	style  string
	color  bool
}

func NewRenderer(output *termenv.Output, style string, color bool) *Renderer {
	return &Renderer{
		output: output,
		style:  style,
		color:  color,
	}
}

func (that *Renderer) Render(board game.Board) string {
	if that.style == StyleEmoji {
		return that.renderEmoji(board)
	}
	return that.renderASCII(board)
}

func (that *Renderer) renderASCII(board game.Board) string {
	var builder strings.Builder

	for y := 0; y < 3; y++ {
		if y > 0 {
			builder.WriteString("---+---+---\n")
		}
		for x := 0; x < 3; x++ {
			if x > 0 {
				builder.WriteString("|")
			}
			builder.WriteString(" " + that.symbol(board, x, y) + " ")
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Renderer) renderEmoji(board game.Board) string {
	var builder strings.Builder

	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			mark, ok := board.MarkAt(x, y)
			switch {
			case !ok:
				builder.WriteString("⬜")
			case mark == game.MarkX:
				builder.WriteString("❌")
			default:
				builder.WriteString("⭕")
			}
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func (that *Renderer) symbol(board game.Board, x, y int) string {
	mark, ok := board.MarkAt(x, y)
	if !ok {
		return "."
	}

	if !that.color {
		return mark.String()
	}

	return that.output.String(mark.String()).Foreground(that.markColor(mark)).Bold().String()
}

func (that *Renderer) markColor(mark game.Mark) termenv.Color {
	if mark == game.MarkX {
		return that.output.Color("1")
	}
	return that.output.Color("4")
}
