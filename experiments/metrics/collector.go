package metrics

import (
	"time"

	"github.com/google/uuid"

	"turnbased/game"
)

type MoveMetric struct {
	Step     int
	Player   game.Player
	Move     string
	State    string // State after the move
	Attempts int    // Strategy calls needed for a legal move
}

type GameMetric struct {
	ID             uuid.UUID
	Game           string
	StartingPlayer game.Player
	Winner         game.Player // "" if the game was cut off
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(g game.Game)
	AddMove(player game.Player, move game.Move, state game.State, attempts int)
	Complete(winner game.Player) (GameMetric, []MoveMetric)
}

type collector struct {
	game  GameMetric
	moves []MoveMetric
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(g game.Game) {
	c.game = GameMetric{
		ID:             uuid.New(),
		Game:           g.String(),
		StartingPlayer: g.Player(),
		StartTime:      time.Now(),
	}
	c.moves = nil
}

func (c *collector) AddMove(player game.Player, move game.Move, state game.State, attempts int) {
	c.moves = append(c.moves, MoveMetric{
		Step:     len(c.moves) + 1,
		Player:   player,
		Move:     move.String(),
		State:    state.String(),
		Attempts: attempts,
	})
}

func (c *collector) Complete(winner game.Player) (GameMetric, []MoveMetric) {
	c.game.Winner = winner
	c.game.EndTime = time.Now()
	c.game.Duration = c.game.EndTime.Sub(c.game.StartTime)
	c.game.TotalMoves = len(c.moves)
	return c.game, c.moves
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(g game.Game)                               {}
func (c *dummyCollector) AddMove(game.Player, game.Move, game.State, int) {}
func (c *dummyCollector) Complete(winner game.Player) (GameMetric, []MoveMetric) {
	return GameMetric{Winner: winner}, nil
}
