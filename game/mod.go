package game

import (
	"errors"
	"fmt"
	"reflect"

	"golang.org/x/exp/slices"
)

var (
	ErrNotImplemented = errors.New("not implemented: need a concrete game")
	ErrInvalidMove    = errors.New("invalid move")
	ErrNoMoves        = errors.New("no legal moves")
	ErrGameOver       = errors.New("game is over - no moves allowed")
)

// Player identifies one of the two players of a game.
type Player string

const (
	P1 Player = "p1"
	P2 Player = "p2"
)

// StartingPlayer returns P1 if isP1Turn, P2 otherwise.
func StartingPlayer(isP1Turn bool) Player {
	if isP1Turn {
		return P1
	}
	return P2
}

func (p Player) Opponent() Player {
	if p == P1 {
		return P2
	}
	return P1
}

// Number is the player's 1-based position, as shown to humans.
func (p Player) Number() int {
	if p == P2 {
		return 2
	}
	return 1
}

// Move is a game specific move. Its string form is the token accepted by
// Game.ParseMove. A nil Move means "no move".
type Move interface {
	fmt.Stringer
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	// LegalMoves returns every legal move in a fixed order, empty when terminal.
	LegalMoves() []Move
	IsValidMove(Move) bool
	// Play returns the state after move. ErrInvalidMove if move is not legal.
	Play(Move) (State, error)
	Equal(State) bool
	String() string
}

// Game binds a starting player to the current state of a ruleset.
type Game interface {
	Player() Player
	State() State
	// Play validates move against the current state and replaces it.
	Play(Move) error
	Instructions() string
	// ParseMove converts raw input into a move, nil if it cannot be parsed.
	ParseMove(raw string) Move
	IsOver(State) bool
	IsWinner(Player) bool
	Equal(Game) bool
	String() string
}

// IsValidMove reports whether move is one of state's legal moves.
func IsValidMove(state State, move Move) bool {
	if move == nil {
		return false
	}
	return slices.Contains(state.LegalMoves(), move)
}

// SameGame reports whether a and b are the same kind of game with the same
// rules. The current states are not compared.
func SameGame(a, b Game) bool {
	if a == nil || b == nil {
		return false
	}
	return reflect.TypeOf(a) == reflect.TypeOf(b) && a.Instructions() == b.Instructions()
}
