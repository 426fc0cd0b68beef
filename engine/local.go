package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"turnbased/experiments/metrics"
	"turnbased/game"
	"turnbased/meta"
	"turnbased/strategy"
)

var (
	ErrMissingStrategy = errors.New("missing strategy")
	ErrTooManyAttempts = errors.New("too many invalid moves")
)

type Option func(e *Engine)

// WithOutput prints the instructions, every state and the outcome to out.
func WithOutput(out io.Writer) Option {
	return func(e *Engine) {
		if out != nil {
			e.out = out
		}
	}
}

func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = metrics.NewCollector()
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func WithMaxAttempts(attempts int) Option {
	return func(e *Engine) {
		if attempts > 0 {
			e.maxAttempts = attempts
		}
	}
}

// Engine drives one game, asking each player's strategy for moves in turn.
type Engine struct {
	Game        game.Game
	Strategies  map[game.Player]strategy.Strategy
	out         io.Writer
	metrics     metrics.Collector
	maxTurns    int
	maxAttempts int
}

func New(g game.Game, strategies map[game.Player]strategy.Strategy, options ...Option) (*Engine, error) {
	for _, player := range []game.Player{game.P1, game.P2} {
		if strategies[player] == nil {
			return nil, fmt.Errorf("%w for player %d", ErrMissingStrategy, player.Number())
		}
	}

	e := &Engine{ // Default values
		Game:        g,
		Strategies:  strategies,
		out:         io.Discard,
		metrics:     metrics.NewDummyCollector(),
		maxTurns:    meta.MAX_TURNS,
		maxAttempts: meta.MAX_ATTEMPTS,
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// Run plays until the game is over or the turn cap is reached, in which case
// there is no winner ("").
func (e *Engine) Run(ctx context.Context) (game.Player, metrics.GameMetric, []metrics.MoveMetric, error) {
	g := e.Game
	e.metrics.Start(g)

	log.Info().Msgf("%s player %d is starting", g, g.Player().Number())
	fmt.Fprintf(e.out, "%s\n%s\n", g, g.Instructions())

	turn := 1
	for ; !g.IsOver(g.State()) && turn <= e.maxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			gameMetric, moveMetrics := e.metrics.Complete("")
			return "", gameMetric, moveMetrics, err
		}

		state := g.State()
		player := state.Player()
		fmt.Fprintln(e.out, state)

		move, attempts, err := e.nextMove(ctx, player)
		if err != nil {
			gameMetric, moveMetrics := e.metrics.Complete("")
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}
		if err := g.Play(move); err != nil {
			gameMetric, moveMetrics := e.metrics.Complete("")
			return "", gameMetric, moveMetrics, fmt.Errorf("turn %d: %w", turn, err)
		}

		log.Debug().Msgf("turn %d: player %d played %s", turn, player.Number(), move)
		e.metrics.AddMove(player, move, g.State(), attempts)
	}

	winner := e.winner()
	if winner == "" {
		log.Warn().Msgf("stopped after %d turns (no winner yet)", turn-1)
		fmt.Fprintf(e.out, "%s\nNo winner after %d turns.\n", g.State(), turn-1)
	} else {
		log.Info().Msgf("game over after %d turns, winner: player %d", turn-1, winner.Number())
		fmt.Fprintf(e.out, "%s\nPlayer %d wins!\n", g.State(), winner.Number())
	}

	gameMetric, moveMetrics := e.metrics.Complete(winner)
	return winner, gameMetric, moveMetrics, nil
}

// nextMove asks player's strategy until it returns a legal move.
func (e *Engine) nextMove(ctx context.Context, player game.Player) (game.Move, int, error) {
	choose := e.Strategies[player]
	for attempt := 1; attempt <= e.maxAttempts; attempt++ {
		move, err := choose(ctx, e.Game)
		if err != nil {
			return nil, attempt, err
		}
		if e.Game.State().IsValidMove(move) {
			return move, attempt, nil
		}
		log.Warn().Msgf("player %d chose invalid move %v (attempt %d of %d)", player.Number(), move, attempt, e.maxAttempts)
		fmt.Fprintln(e.out, "That is an invalid move.")
	}
	return nil, e.maxAttempts, fmt.Errorf("%w: player %d", ErrTooManyAttempts, player.Number())
}

func (e *Engine) winner() game.Player {
	for _, player := range []game.Player{game.P1, game.P2} {
		if e.Game.IsWinner(player) {
			return player
		}
	}
	return ""
}
