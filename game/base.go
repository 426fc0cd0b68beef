package game

// Base is the abstract game. It keeps the starting player and the current
// state; concrete games embed it and provide the rules text and move parsing.
type Base struct {
	player Player
	state  State
}

func NewBase(isP1Turn bool) Base {
	return Base{player: StartingPlayer(isP1Turn)}
}

func (b *Base) Player() Player {
	return b.player
}

func (b *Base) State() State {
	return b.current()
}

// SetState installs the initial state of a concrete game.
func (b *Base) SetState(state State) {
	b.state = state
}

// Play replaces the current state with the one move leads to. Illegal moves
// are rejected by State.Play with ErrInvalidMove.
func (b *Base) Play(move Move) error {
	state := b.current()
	if b.IsOver(state) {
		return ErrGameOver
	}
	next, err := state.Play(move)
	if err != nil {
		return err
	}
	b.state = next
	return nil
}

func (b *Base) IsOver(state State) bool {
	if state == nil {
		panic(ErrNotImplemented)
	}
	return len(state.LegalMoves()) == 0
}

// IsWinner reports whether player won: the game is over and it is the other
// player who is left to move.
func (b *Base) IsWinner(player Player) bool {
	state := b.current()
	if b.IsOver(state) {
		return state.Player() != player
	}
	return false
}

func (b *Base) Instructions() string {
	panic(ErrNotImplemented)
}

func (b *Base) ParseMove(string) Move {
	panic(ErrNotImplemented)
}

func (b *Base) Equal(other Game) bool {
	return SameGame(b, other)
}

func (b *Base) String() string {
	panic(ErrNotImplemented)
}

func (b *Base) current() State {
	if b.state == nil {
		panic(ErrNotImplemented)
	}
	return b.state
}
