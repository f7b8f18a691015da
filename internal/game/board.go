package game

import "strings"

// cell is the storage form of one slot: empty, or one of the two marks.
type cell uint8

const (
	cellEmpty cell = iota
	cellX
	cellO
)

func (that cell) mark() (Mark, bool) {
	switch that {
	case cellX:
		return MarkX, true
	case cellO:
		return MarkO, true
	}
	return 0, false
}

func markCell(mark Mark) cell {
	if mark == MarkO {
		return cellO
	}
	return cellX
}

// winLines enumerates the eight winning lines, diagonals first. The scan
// order is a documented tie-break for hand-built boards where both marks
// hold a line at once; legal play can never produce such a board.
var winLines = [8][3]Square{
	{0, 4, 8},
	{2, 4, 6},
	{0, 1, 2},
	{0, 3, 6},
	{3, 4, 5},
	{1, 4, 7},
	{6, 7, 8},
	{2, 5, 8},
}

// Board is the 3x3 grid of optional marks. It is a plain value: copies are
// fully independent, and == compares slot-wise.
type Board struct {
	cells [9]cell
}

// NewBoard - returns the empty board.
func NewBoard() Board {
	return Board{}
}

// NewBoardFromHash - rebuilds a board from its compact encoding. Every 2-bit
// combination decodes: 00 is X, 01 is O, and both remaining combinations
// alias to empty, so the function is total over uint32 inputs.
func NewBoardFromHash(hash uint32) Board {
	var board Board
	for square := range board.cells {
		switch hash >> (2 * square) & 0b11 {
		case 0b00:
			board.cells[square] = cellX
		case 0b01:
			board.cells[square] = cellO
		default:
			board.cells[square] = cellEmpty
		}
	}
	return board
}

// NewBoardFromGrid - builds a board from rows of cell symbols. Input is
// clipped to the first three rows and columns; any symbol ParseMark does not
// recognize leaves its slot empty.
func NewBoardFromGrid(grid [][]string) Board {
	var board Board
	for y, row := range grid {
		if y >= gridSize {
			break
		}
		for x, symbol := range row {
			if x >= gridSize {
				break
			}
			if mark, ok := ParseMark(symbol); ok {
				board.cells[x+y*gridSize] = markCell(mark)
			}
		}
	}
	return board
}

// NewBoardFromString - builds a board from a line-broken string, one row per
// line, one symbol rune per cell. Clipping and unknown symbols behave as in
// NewBoardFromGrid.
func NewBoardFromString(text string) Board {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	grid := make([][]string, 0, len(lines))
	for _, line := range lines {
		row := make([]string, 0, gridSize)
		for _, symbol := range line {
			row = append(row, string(symbol))
		}
		grid = append(grid, row)
	}

	return NewBoardFromGrid(grid)
}

// Mark - returns the mark at the given square; ok is false for an empty slot.
func (that Board) Mark(square Square) (Mark, bool) {
	return that.cells[square].mark()
}

// MarkAt - like Mark, addressed by coordinates; ok is also false when the
// coordinates fall outside the grid.
func (that Board) MarkAt(x, y int) (Mark, bool) {
	square, ok := NewSquare(x, y)
	if !ok {
		return 0, false
	}
	return that.Mark(square)
}

// SetMark - places a mark on the given square, replacing whatever was there.
func (that *Board) SetMark(square Square, mark Mark) {
	that.cells[square] = markCell(mark)
}

// SetMarkAt - like SetMark, addressed by coordinates; out-of-range
// coordinates are a no-op.
func (that *Board) SetMarkAt(x, y int, mark Mark) {
	if square, ok := NewSquare(x, y); ok {
		that.SetMark(square, mark)
	}
}

// Clear - empties the given square.
func (that *Board) Clear(square Square) {
	that.cells[square] = cellEmpty
}

// Winner - scans the eight lines and returns the mark occupying all three
// cells of the first fully occupied one; ok is false when no line is taken.
func (that Board) Winner() (Mark, bool) {
	for _, line := range winLines {
		first := that.cells[line[0]]
		if first != cellEmpty && first == that.cells[line[1]] && first == that.cells[line[2]] {
			return first.mark()
		}
	}
	return 0, false
}

func (that Board) IsEmpty() bool {
	return that == Board{}
}

func (that Board) IsFull() bool {
	for _, c := range that.cells {
		if c == cellEmpty {
			return false
		}
	}
	return true
}

// IsFinished - the game on this board is over: a line is taken or no square
// is left to play.
func (that Board) IsFinished() bool {
	if _, won := that.Winner(); won {
		return true
	}
	return that.IsFull()
}

// IsValid - mark counts are consistent with X moving first and turns
// alternating: equal counts, or one extra X.
func (that Board) IsValid() bool {
	var xs, os int
	for _, c := range that.cells {
		switch c {
		case cellX:
			xs++
		case cellO:
			os++
		}
	}
	return xs == os || xs == os+1
}

// ReflectsHorizontally - the left and right columns match slot-wise.
func (that Board) ReflectsHorizontally() bool {
	for y := 0; y < gridSize; y++ {
		if that.cells[y*gridSize] != that.cells[y*gridSize+2] {
			return false
		}
	}
	return true
}

// ReflectsVertically - the top and bottom rows match slot-wise.
func (that Board) ReflectsVertically() bool {
	for x := 0; x < gridSize; x++ {
		if that.cells[x] != that.cells[x+2*gridSize] {
			return false
		}
	}
	return true
}

// ReflectsHorizontallyAndVertically - every slot matches its point
// reflection through the center.
func (that Board) ReflectsHorizontallyAndVertically() bool {
	for square := range that.cells {
		if that.cells[square] != that.cells[8-square] {
			return false
		}
	}
	return true
}

// EmptySquares - the unoccupied squares in ascending index order.
func (that Board) EmptySquares() []Square {
	squares := make([]Square, 0, len(that.cells))
	for square, c := range that.cells {
		if c == cellEmpty {
			squares = append(squares, Square(square))
		}
	}
	return squares
}

// AvailableSquares - the squares still open for play. Once a winner exists
// ok is false: a decided board has no available squares even if empty slots
// remain. A full but undecided board yields an empty slice with ok true,
// keeping "decided" and "full" distinguishable.
func (that Board) AvailableSquares() ([]Square, bool) {
	if _, won := that.Winner(); won {
		return nil, false
	}
	return that.EmptySquares(), true
}

// Placement pairs an empty square with the board produced by filling it.
type Placement struct {
	Square Square
	Board  Board
}

// NextPlacements - one successor board per empty square, in ascending square
// order. The receiver is never modified.
func (that Board) NextPlacements(mark Mark) []Placement {
	empty := that.EmptySquares()

	placements := make([]Placement, 0, len(empty))
	for _, square := range empty {
		next := that
		next.SetMark(square, mark)
		placements = append(placements, Placement{Square: square, Board: next})
	}

	return placements
}

// NextBoards - the successor boards of NextPlacements without the squares.
func (that Board) NextBoards(mark Mark) []Board {
	placements := that.NextPlacements(mark)

	boards := make([]Board, 0, len(placements))
	for _, placement := range placements {
		boards = append(boards, placement.Board)
	}

	return boards
}

// rotateLeftOnce maps each destination slot to its source for one
// counterclockwise quarter turn: each column becomes a row read bottom-up.
var rotateLeftOnce = [9]Square{2, 5, 8, 1, 4, 7, 0, 3, 6}

// RotatedLeft - the board turned counterclockwise by the given number of
// quarter turns. The count is taken modulo 4 and negative counts are
// normalized, so -1 equals 3 and any multiple of 4 is the identity.
func (that Board) RotatedLeft(turns int) Board {
	turns %= 4
	if turns < 0 {
		turns += 4
	}

	board := that
	for ; turns > 0; turns-- {
		var next Board
		for square, from := range rotateLeftOnce {
			next.cells[square] = board.cells[from]
		}
		board = next
	}

	return board
}

// RotatedRight - the inverse of RotatedLeft for the same count.
func (that Board) RotatedRight(turns int) Board {
	return that.RotatedLeft(-turns)
}

// RotateLeft - in-place form of RotatedLeft.
func (that *Board) RotateLeft(turns int) {
	*that = that.RotatedLeft(turns)
}

// RotateRight - in-place form of RotatedRight.
func (that *Board) RotateRight(turns int) {
	*that = that.RotatedRight(turns)
}

// FlipHorizontally - swaps the left and right columns, leaving the center
// column untouched.
func (that *Board) FlipHorizontally() {
	for y := 0; y < gridSize; y++ {
		row := y * gridSize
		that.cells[row], that.cells[row+2] = that.cells[row+2], that.cells[row]
	}
}

// FlipVertically - swaps the top and bottom rows, leaving the center row
// untouched.
func (that *Board) FlipVertically() {
	for x := 0; x < gridSize; x++ {
		that.cells[x], that.cells[x+2*gridSize] = that.cells[x+2*gridSize], that.cells[x]
	}
}

// FlipHorizontallyAndVertically - point reflection through the center, slot
// i swapping with slot 8-i. Equivalent to a horizontal then a vertical flip.
func (that *Board) FlipHorizontallyAndVertically() {
	for square := 0; square < len(that.cells)/2; square++ {
		that.cells[square], that.cells[8-square] = that.cells[8-square], that.cells[square]
	}
}

func (that Board) FlippedHorizontally() Board {
	board := that
	board.FlipHorizontally()
	return board
}

func (that Board) FlippedVertically() Board {
	board := that
	board.FlipVertically()
	return board
}

func (that Board) FlippedHorizontallyAndVertically() Board {
	board := that
	board.FlipHorizontallyAndVertically()
	return board
}

// Invert - swaps every X for an O and every O for an X; empty slots stay
// empty.
func (that *Board) Invert() {
	for square, c := range that.cells {
		switch c {
		case cellX:
			that.cells[square] = cellO
		case cellO:
			that.cells[square] = cellX
		}
	}
}

func (that Board) Inverse() Board {
	board := that
	board.Invert()
	return board
}

// Hash - packs the nine slots into 18 bits, 2 bits per slot LSB-first: 00 is
// X, 01 is O, 10 is empty. NewBoardFromHash(that.Hash()) always returns an
// equal board, and equal boards always hash alike, so the hash doubles as a
// portable identity for canonical comparison.
func (that Board) Hash() uint32 {
	var hash uint32
	for square, c := range that.cells {
		var bits uint32
		switch c {
		case cellX:
			bits = 0b00
		case cellO:
			bits = 0b01
		default:
			bits = 0b10
		}
		hash |= bits << (2 * square)
	}
	return hash
}
