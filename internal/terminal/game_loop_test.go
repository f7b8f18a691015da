package terminal

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLoop(input string, output *bytes.Buffer) *GameLoop {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer := NewRenderer(asciiOutput(), StyleASCII, false)
	return NewGameLoop(logger, renderer, strings.NewReader(input), output)
}

func TestGameLoop_Run(t *testing.T) {
	t.Run("Plays a full match to an X win", func(t *testing.T) {
		// Given: X takes the main diagonal while O plays along the top
		input := "0 0\n1 0\n1 1\n2 0\n2 2\n"
		var output bytes.Buffer

		// When: running the loop
		err := newTestLoop(input, &output).Run(context.Background())

		// Then: the match ends announcing X
		require.NoError(t, err)
		assert.Contains(t, output.String(), "X wins!")
	})

	t.Run("Explains an occupied square and keeps playing", func(t *testing.T) {
		input := "1 1\n1 1\nquit\n"
		var output bytes.Buffer

		err := newTestLoop(input, &output).Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, output.String(), "square (1,1) is taken")
	})

	t.Run("Undo and redo are driven from the prompt", func(t *testing.T) {
		input := "1 1\nundo\nredo\nundo\nquit\n"
		var output bytes.Buffer

		err := newTestLoop(input, &output).Run(context.Background())

		require.NoError(t, err)
		// after the final undo the board renders empty again
		assert.Contains(t, output.String(), " . | . | . ")
	})

	t.Run("Rejects malformed and off-board input with a hint", func(t *testing.T) {
		input := "middle\n5 5\nquit\n"
		var output bytes.Buffer

		err := newTestLoop(input, &output).Run(context.Background())

		require.NoError(t, err)
		assert.Contains(t, output.String(), "two coordinates")
		assert.Contains(t, output.String(), "off the board")
	})

	t.Run("Ends quietly when the input ends", func(t *testing.T) {
		var output bytes.Buffer

		err := newTestLoop("", &output).Run(context.Background())

		require.NoError(t, err)
	})

	t.Run("A canceled context stops the match", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		var output bytes.Buffer

		err := newTestLoop("1 1\n", &output).Run(ctx)

		require.NoError(t, err)
		assert.NotContains(t, output.String(), "to move")
	})
}
