package game

// Mark is one of the two player symbols. An empty slot on a board is the
// absence of a Mark, never a third variant.
type Mark uint8

const (
	MarkX Mark = iota
	MarkO
)

// Inverse - returns the opposing mark.
func (that Mark) Inverse() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Invert - swaps the mark for its opponent in place.
func (that *Mark) Invert() {
	*that = that.Inverse()
}

func (that Mark) String() string {
	if that == MarkO {
		return "O"
	}
	return "X"
}

// ParseMark - reads a mark from one cell of a textual board. Both the plain
// letters and the emoji forms emitted by the terminal renderer are accepted;
// ok is false for anything else.
func ParseMark(symbol string) (Mark, bool) {
	switch symbol {
	case "x", "X", "❌":
		return MarkX, true
	case "o", "O", "⭕":
		return MarkO, true
	}
	return 0, false
}
