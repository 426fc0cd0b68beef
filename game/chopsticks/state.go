package chopsticks

import (
	"fmt"

	"turnbased/game"
	"turnbased/utils"
)

// Fingers is the count at which a hand wraps around to 0 (dead).
const Fingers = 5

// Hand positions in Hands.
const (
	P1Left = iota
	P1Right
	P2Left
	P2Right
)

// Hands holds the fingers out on each hand, indexed by hand position.
type Hands [4]int

// Tap is a move: the first letter is the hand used, the second the
// opponent's hand that is touched.
type Tap string

const (
	LeftLeft   Tap = "ll"
	LeftRight  Tap = "lr"
	RightLeft  Tap = "rl"
	RightRight Tap = "rr"
)

var taps = []Tap{LeftLeft, LeftRight, RightLeft, RightRight}

func (t Tap) String() string {
	return string(t)
}

// ParseTap accepts exactly one of ll, lr, rl, rr.
func ParseTap(raw string) (Tap, bool) {
	for _, tap := range taps {
		if raw == string(tap) {
			return tap, true
		}
	}
	return "", false
}

// handIndex maps a player's own hand (l, r) and a tap's target to positions in
// Hands.
var handIndex = map[game.Player]map[string]int{
	game.P1: {"l": P1Left, "r": P1Right, "ll": P2Left, "rl": P2Left, "lr": P2Right, "rr": P2Right},
	game.P2: {"l": P2Left, "r": P2Right, "ll": P1Left, "rl": P1Left, "lr": P1Right, "rr": P1Right},
}

type State struct {
	player game.Player
	hands  Hands
}

// NewState normalizes every hand modulo Fingers.
func NewState(player game.Player, hands Hands) State {
	for i := range hands {
		hands[i] = utils.Mod(hands[i], Fingers)
	}
	return State{player: player, hands: hands}
}

func (s State) Player() game.Player {
	return s.player
}

func (s State) Hands() Hands {
	return s.hands
}

// LegalMoves drops every tap that uses or touches a dead hand.
func (s State) LegalMoves() []game.Move {
	own, opponent := P1Left, P2Left
	if s.player == game.P2 {
		own, opponent = P2Left, P1Left
	}

	removed := make(map[Tap]bool, len(taps))
	if s.hands[own] == 0 {
		removed[LeftLeft], removed[LeftRight] = true, true
	}
	if s.hands[own+1] == 0 {
		removed[RightLeft], removed[RightRight] = true, true
	}
	if s.hands[opponent] == 0 {
		removed[LeftLeft], removed[RightLeft] = true, true
	}
	if s.hands[opponent+1] == 0 {
		removed[LeftRight], removed[RightRight] = true, true
	}

	moves := make([]game.Move, 0, len(taps))
	for _, tap := range taps {
		if !removed[tap] {
			moves = append(moves, tap)
		}
	}
	return moves
}

func (s State) IsValidMove(move game.Move) bool {
	return game.IsValidMove(s, move)
}

func (s State) Play(move game.Move) (game.State, error) {
	if !s.IsValidMove(move) {
		return nil, fmt.Errorf("%w: %v on %s", game.ErrInvalidMove, move, s)
	}
	tap := move.(Tap)
	target := handIndex[s.player][string(tap)]
	source := handIndex[s.player][string(tap[0])]

	hands := s.hands
	hands[target] = utils.Mod(s.hands[target]+s.hands[source], Fingers)
	return State{player: s.player.Opponent(), hands: hands}, nil
}

func (s State) Equal(other game.State) bool {
	o, ok := other.(State)
	return ok && o == s
}

func (s State) String() string {
	return fmt.Sprintf("Player 1: %d-%d; Player 2: %d-%d",
		s.hands[P1Left], s.hands[P1Right], s.hands[P2Left], s.hands[P2Right])
}
