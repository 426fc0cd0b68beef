package experiments

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"turnbased/config"
	"turnbased/engine"
	"turnbased/experiments/metrics"
	"turnbased/game"
	"turnbased/game/games"
	"turnbased/meta"
	"turnbased/strategy"
)

// Tally counts wins per player. Games cut off at the turn cap count under "".
type Tally map[game.Player]int

// Run plays cfg.Experiment.Games games of cfg.Game between two random
// strategies, alternating the starting player, and writes the game and move
// records under cfg.Experiment.OutputDir.
func Run(ctx context.Context, cfg *config.Config, r *rand.Rand) (Tally, string, error) {
	name := fmt.Sprintf("%s_random_vs_random", cfg.Game)
	start := cfg.Start
	if start < 0 {
		start = meta.DEFAULT_START
	}

	tally := Tally{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for i := 0; i < cfg.Experiment.Games; i++ {
		g, err := games.New(cfg.Game, i%2 == 0, start)
		if err != nil {
			return tally, "", err
		}
		e, err := engine.New(g, map[game.Player]strategy.Strategy{
			game.P1: strategy.Random(r),
			game.P2: strategy.Random(r),
		}, engine.WithMetrics())
		if err != nil {
			return tally, "", err
		}

		winner, gameMetric, moveMetrics, err := e.Run(ctx)
		if err != nil {
			return tally, "", fmt.Errorf("game %d: %w", i+1, err)
		}
		tally[winner]++

		gameRecords = append(gameRecords, metrics.GameRecord{
			Strategy1:  "random",
			Strategy2:  "random",
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       gameMetric.ID,
				MoveMetric: mm,
			})
		}

		log.Info().Msgf("completed game %d of %d with winner: %q", i+1, cfg.Experiment.Games, winner)
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(cfg.Experiment.OutputDir, name)
	if err != nil {
		return tally, "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return tally, "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return tally, "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return tally, writer.Dir(), nil
}
