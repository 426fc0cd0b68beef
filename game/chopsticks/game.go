package chopsticks

import "turnbased/game"

const Instructions = "Players take turns adding the values of one of their " +
	"hands to one of their opponents (modulo 5). A hand with a total of 5 " +
	"(or 0; 5 modulo 5) is considered 'dead'. The first player to have 2 " +
	"dead hands is the loser."

// Game is Chopsticks, every hand starting with one finger out.
type Game struct {
	game.Base
}

func New(isP1Turn bool) *Game {
	g := &Game{Base: game.NewBase(isP1Turn)}
	g.SetState(NewState(g.Player(), Hands{1, 1, 1, 1}))
	return g
}

func (g *Game) Instructions() string {
	return Instructions
}

func (g *Game) ParseMove(raw string) game.Move {
	tap, ok := ParseTap(raw)
	if !ok {
		return nil
	}
	return tap
}

func (g *Game) Equal(other game.Game) bool {
	return game.SameGame(g, other)
}

func (g *Game) String() string {
	return "The game is Chopsticks."
}
