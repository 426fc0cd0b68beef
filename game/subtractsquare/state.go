package subtractsquare

import (
	"fmt"
	"strconv"

	"turnbased/game"
)

// Square is a move: the perfect square to subtract.
type Square int

func (s Square) String() string {
	return strconv.Itoa(int(s))
}

// State is the number left to subtract from and the player to move.
type State struct {
	player game.Player
	number int
}

func NewState(player game.Player, number int) State {
	return State{player: player, number: number}
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) Number() int {
	return s.number
}

// LegalMoves returns the positive perfect squares up to the current number,
// ascending.
func (s State) LegalMoves() []game.Move {
	moves := []game.Move{}
	for root := 1; root*root <= s.number; root++ {
		moves = append(moves, Square(root*root))
	}
	return moves
}

func (s State) IsValidMove(move game.Move) bool {
	return game.IsValidMove(s, move)
}

func (s State) Play(move game.Move) (game.State, error) {
	if !s.IsValidMove(move) {
		return nil, fmt.Errorf("%w: cannot subtract %v from %d", game.ErrInvalidMove, move, s.number)
	}
	return State{
		player: s.player.Opponent(),
		number: s.number - int(move.(Square)),
	}, nil
}

func (s State) Equal(other game.State) bool {
	o, ok := other.(State)
	return ok && o == s
}

func (s State) String() string {
	return fmt.Sprintf("The current player is Player %d and the current value is %d", s.player.Number(), s.number)
}
