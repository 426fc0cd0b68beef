package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"turnbased/config"
	"turnbased/engine"
	"turnbased/experiments"
	"turnbased/game"
	"turnbased/game/games"
	"turnbased/game/subtractsquare"
	"turnbased/strategy"
)

func main() {
	configPath := flag.String("config", "", "YAML config file; the environment is used if empty")
	mode := flag.String("mode", "play", "play a single game or run an experiment")
	flag.Parse()

	if err := run(*configPath, *mode); err != nil {
		log.Error().Err(err).Msgf("%s failed", *mode)
		os.Exit(1)
	}
}

// run returns instead of exiting so that its deferred cleanup runs.
func run(configPath, mode string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	initLogger(cfg)

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	r := rand.New(rand.NewSource(seed))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch mode {
	case "play":
		return play(ctx, cfg, r)
	case "experiment":
		return experiment(ctx, cfg, r)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

func initLogger(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
}

// play runs one game on the terminal.
func play(ctx context.Context, cfg *config.Config, r *rand.Rand) error {
	stdin := bufio.NewReader(os.Stdin)

	start := cfg.Start
	if cfg.Game == games.SubtractSquare && start < 0 {
		var err error
		start, err = subtractsquare.ReadStart(stdin, os.Stdout)
		if err != nil {
			return err
		}
	}
	g, err := games.New(cfg.Game, cfg.P1First, start)
	if err != nil {
		return err
	}

	strategies := map[game.Player]strategy.Strategy{}
	for player, name := range map[game.Player]string{game.P1: cfg.Strategies.P1, game.P2: cfg.Strategies.P2} {
		s, err := strategy.ByName(name, stdin, os.Stdout, r)
		if err != nil {
			return err
		}
		strategies[player] = s
	}

	e, err := engine.New(g, strategies, engine.WithOutput(os.Stdout))
	if err != nil {
		return err
	}
	_, _, _, err = e.Run(ctx)
	return err
}

func experiment(ctx context.Context, cfg *config.Config, r *rand.Rand) error {
	tally, dir, err := experiments.Run(ctx, cfg, r)
	if err != nil {
		return err
	}
	fmt.Printf("Player 1 wins: %d, Player 2 wins: %d, no winner: %d\n", tally[game.P1], tally[game.P2], tally[""])
	fmt.Printf("Records written to %s\n", dir)
	return nil
}
