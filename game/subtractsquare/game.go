package subtractsquare

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"turnbased/game"
)

const Instructions = "Players take turns subtracting square numbers from the " +
	"starting number. The winner is the person who subtracts to 0."

const startPrompt = "Enter a non-negative whole number to subtract from: "

var ErrInvalidStart = errors.New("start must be a non-negative whole number")

// Game is Subtract Square.
type Game struct {
	game.Base
}

// New starts a game at start, with player 1 to move if isP1Turn.
func New(isP1Turn bool, start int) (*Game, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidStart, start)
	}
	g := &Game{Base: game.NewBase(isP1Turn)}
	g.SetState(NewState(g.Player(), start))
	return g, nil
}

func (g *Game) Instructions() string {
	return Instructions
}

// ParseMove accepts a string of decimal digits.
func (g *Game) ParseMove(raw string) game.Move {
	n, ok := parseWhole(raw)
	if !ok {
		return nil
	}
	return Square(n)
}

func (g *Game) Equal(other game.Game) bool {
	return game.SameGame(g, other)
}

func (g *Game) String() string {
	return "The game is Subtract Square."
}

// ReadStart prompts on out until a line of in holds a non-negative whole
// number and returns it.
func ReadStart(in io.Reader, out io.Writer) (int, error) {
	reader, ok := in.(*bufio.Reader)
	if !ok {
		reader = bufio.NewReader(in)
	}
	for {
		fmt.Fprint(out, startPrompt)
		line, err := reader.ReadString('\n')
		if n, ok := parseWhole(strings.TrimRight(line, "\r\n")); ok {
			return n, nil
		}
		if errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("failed to read start number: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return 0, fmt.Errorf("failed to read start number: %w", err)
		}
	}
}

func parseWhole(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
