package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-engine/internal/game"
)

// GameLoop plays a hot-seat match between two humans on one terminal. It is
// a plain consumer of the game package: every rule lives there.
type GameLoop struct {
	logger   *slog.Logger
	renderer *Renderer
	input    io.Reader
	output   io.Writer
}

func NewGameLoop(logger *slog.Logger, renderer *Renderer, input io.Reader, output io.Writer) *GameLoop {
	return &GameLoop{
		logger:   logger.With("component", "game-loop"),
		renderer: renderer,
		input:    input,
		output:   output,
	}
}

// Run - plays one match until it finishes, a player quits, the input ends or
// the context is canceled.
func (that *GameLoop) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(that.input)
	log := that.logger.With("match_id", uuid.NewString())

	match := game.NewGame()
	log.Info("match started")

	for {
		if ctx.Err() != nil {
			log.Info("match interrupted")
			return nil
		}

		fmt.Fprintln(that.output, that.renderer.Render(match.Board()))

		if that.announceResult(match) {
			log.Info("match finished", "moves", len(match.History()))
			return nil
		}

		fmt.Fprintf(that.output, "%s to move (x y, undo, redo, quit): ", match.CurrentMark())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}
			return nil
		}

		if quit := that.handle(log, match, strings.TrimSpace(scanner.Text())); quit {
			log.Info("match abandoned", "moves", len(match.History()))
			return nil
		}
	}
}

// handle - applies one line of input to the match; quit is true when the
// players are done.
func (that *GameLoop) handle(log *slog.Logger, match *game.Game, line string) bool {
	switch line {
	case "quit", "q":
		return true
	case "undo":
		if square, ok := match.Undo(); ok {
			log.Debug("move undone", "square", square.String())
		} else {
			fmt.Fprintln(that.output, "nothing to undo")
		}
		return false
	case "redo":
		if square, ok := match.Redo(); ok {
			log.Debug("move redone", "square", square.String())
		} else {
			fmt.Fprintln(that.output, "nothing to redo")
		}
		return false
	}

	var x, y int
	if _, err := fmt.Sscanf(line, "%d %d", &x, &y); err != nil {
		fmt.Fprintln(that.output, "enter a move as two coordinates in 0..2, e.g. 1 1")
		return false
	}

	square, ok := game.NewSquare(x, y)
	if !ok {
		fmt.Fprintln(that.output, "those coordinates are off the board")
		return false
	}

	if err := match.ApplyMark(square); err != nil {
		that.explain(err)
		return false
	}

	log.Debug("move applied", "square", square.String())

	return false
}

func (that *GameLoop) explain(err error) {
	var occupied *game.OccupiedSquareError
	var won *game.WonGameError

	switch {
	case errors.As(err, &occupied):
		fmt.Fprintf(that.output, "square %s is taken, pick another\n", occupied.Square)
	case errors.As(err, &won):
		fmt.Fprintf(that.output, "the game is over, %s already won\n", won.Winner)
	default:
		fmt.Fprintln(that.output, err)
	}
}

func (that *GameLoop) announceResult(match *game.Game) bool {
	board := match.Board()

	if winner, won := board.Winner(); won {
		fmt.Fprintf(that.output, "%s wins!\n", winner)
		return true
	}

	if board.IsFull() {
		fmt.Fprintln(that.output, "it's a tie")
		return true
	}

	return false
}
