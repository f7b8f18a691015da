package game

import (
	"fmt"
	"slices"
)

// OccupiedSquareError - the caller tried to mark a square that already holds
// a mark. Carries the offending square.
type OccupiedSquareError struct {
	Square Square
}

func (that *OccupiedSquareError) Error() string {
	return fmt.Sprintf("square %s is already occupied", that.Square)
}

// WonGameError - the caller tried to move after the game was decided.
// Carries the winning mark.
type WonGameError struct {
	Winner Mark
}

func (that *WonGameError) Error() string {
	return fmt.Sprintf("game is already won by %s", that.Winner)
}

// Game owns one board plus the undo and redo histories that produced it.
// The board always equals the undo history replayed from empty, X first,
// marks alternating. A Game has a single owner: callers needing concurrent
// access must serialize it themselves.
type Game struct {
	board Board
	undo  []Square
	redo  []Square
}

// NewGame - a fresh game on the empty board, X to move.
func NewGame() *Game {
	return &Game{}
}

// NewGameFromHistory - replays moves from the empty board, validating each
// one; the first illegal move aborts construction with its error.
func NewGameFromHistory(moves []Square) (*Game, error) {
	game := NewGame()
	for _, square := range moves {
		if err := game.ApplyMark(square); err != nil {
			return nil, fmt.Errorf("could not replay history: %w", err)
		}
	}
	return game, nil
}

// NewGameFromUncheckedHistory - replays a history the caller guarantees to
// be legal, skipping validation.
func NewGameFromUncheckedHistory(moves []Square) *Game {
	game := NewGame()
	for _, square := range moves {
		game.ApplyUncheckedMark(square)
	}
	return game
}

// Board - a copy of the current board.
func (that *Game) Board() Board {
	return that.board
}

// CurrentMark - X when an even number of moves has been played, O otherwise.
func (that *Game) CurrentMark() Mark {
	if len(that.undo)%2 == 0 {
		return MarkX
	}
	return MarkO
}

// ApplyMark - plays the current mark at the given square. Occupancy is
// checked before decidedness, so marking a taken square on a finished board
// reports the occupancy rather than the stale winner. On error the game is
// left untouched.
func (that *Game) ApplyMark(square Square) error {
	if _, occupied := that.board.Mark(square); occupied {
		return &OccupiedSquareError{Square: square}
	}
	if winner, won := that.board.Winner(); won {
		return &WonGameError{Winner: winner}
	}

	that.ApplyUncheckedMark(square)

	return nil
}

// ApplyUncheckedMark - plays the current mark without validation; the caller
// guarantees the square is empty and the game undecided. Side effects match
// ApplyMark: the move is appended to the undo history and the redo history
// is cleared.
func (that *Game) ApplyUncheckedMark(square Square) {
	that.board.SetMark(square, that.CurrentMark())
	that.undo = append(that.undo, square)
	that.redo = nil
}

// Undo - takes back the most recent move and returns the square it freed;
// ok is false on a game with no moves.
func (that *Game) Undo() (Square, bool) {
	if len(that.undo) == 0 {
		return 0, false
	}

	square := that.undo[len(that.undo)-1]
	that.undo = that.undo[:len(that.undo)-1]
	that.board.Clear(square)
	that.redo = append(that.redo, square)

	return square, true
}

// Redo - replays the most recently undone move with the mark whose turn it
// now is; ok is false when nothing has been undone.
func (that *Game) Redo() (Square, bool) {
	if len(that.redo) == 0 {
		return 0, false
	}

	square := that.redo[len(that.redo)-1]
	that.redo = that.redo[:len(that.redo)-1]
	that.board.SetMark(square, that.CurrentMark())
	that.undo = append(that.undo, square)

	return square, true
}

// AvailableSquares - the empty squares while the game is undecided, an empty
// slice once a winner exists.
func (that *Game) AvailableSquares() []Square {
	squares, ok := that.board.AvailableSquares()
	if !ok {
		return []Square{}
	}
	return squares
}

// History - a copy of the applied moves, oldest first.
func (that *Game) History() []Square {
	return slices.Clone(that.undo)
}

// Equal - true only when board, undo history and redo history all match.
// Two games reaching the same board through different move orders stay
// distinct.
func (that *Game) Equal(other *Game) bool {
	return that.board == other.board &&
		slices.Equal(that.undo, other.undo) &&
		slices.Equal(that.redo, other.redo)
}
