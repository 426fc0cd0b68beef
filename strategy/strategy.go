package strategy

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/rand"

	"turnbased/game"
)

const movePrompt = "Enter a move:"

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks a move for the player to move in g. A nil move means the
// strategy could not come up with one (e.g. unparseable input).
type Strategy func(ctx context.Context, g game.Game) (game.Move, error)

type line struct {
	text string
	err  error
}

// Interactive asks for one move per call on out and reads a line from in.
// Unparseable input gives a nil move; retrying is up to the caller. Pass a
// *bufio.Reader to share in with other readers.
//
// The read runs in the background so that a cancelled ctx ends the call. A
// read still pending from a cancelled call answers the next one.
func Interactive(in io.Reader, out io.Writer) Strategy {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	var pending chan line
	return func(ctx context.Context, g game.Game) (game.Move, error) {
		fmt.Fprint(out, movePrompt)
		if pending == nil {
			pending = make(chan line, 1)
			go func(lines chan<- line) {
				text, err := reader.ReadString('\n')
				lines <- line{text: text, err: err}
			}(pending)
		}

		var read line
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case read = <-pending:
			pending = nil
		}
		if read.err != nil && (!errors.Is(read.err, io.EOF) || read.text == "") {
			return nil, fmt.Errorf("failed to read move: %w", read.err)
		}
		return g.ParseMove(strings.TrimRight(read.text, "\r\n")), nil
	}
}

// Random picks uniformly among the legal moves of the current state.
func Random(r *rand.Rand) Strategy {
	return func(_ context.Context, g game.Game) (game.Move, error) {
		moves := g.State().LegalMoves()
		if len(moves) == 0 {
			return nil, game.ErrNoMoves
		}
		move := moves[r.Intn(len(moves))]
		return g.ParseMove(move.String()), nil
	}
}

// ByName resolves the strategies selectable from configuration.
func ByName(name string, in io.Reader, out io.Writer, r *rand.Rand) (Strategy, error) {
	switch name {
	case "interactive":
		return Interactive(in, out), nil
	case "random":
		return Random(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}
