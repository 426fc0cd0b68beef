// Package games builds the available games by name.
package games

import (
	"errors"
	"fmt"

	"turnbased/game"
	"turnbased/game/chopsticks"
	"turnbased/game/subtractsquare"
)

const (
	SubtractSquare = "subtract-square"
	Chopsticks     = "chopsticks"
)

var ErrUnknownGame = errors.New("unknown game")

// Names lists every game New accepts.
var Names = []string{SubtractSquare, Chopsticks}

// New starts the named game. start is only used by Subtract Square.
func New(name string, isP1Turn bool, start int) (game.Game, error) {
	switch name {
	case SubtractSquare:
		g, err := subtractsquare.New(isP1Turn, start)
		if err != nil {
			return nil, err
		}
		return g, nil
	case Chopsticks:
		return chopsticks.New(isP1Turn), nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", ErrUnknownGame, name, Names)
	}
}
