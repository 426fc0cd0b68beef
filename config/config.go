package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	// Game is "subtract-square" or "chopsticks".
	Game string `yaml:"game" env:"GAME" env-default:"chopsticks"`
	// P1First and Start take their defaults from Load: an env-default would
	// overwrite a false or 0 read from the file.
	P1First bool `yaml:"p1-first" env:"P1_FIRST"`
	// Start is the Subtract Square start number; negative means ask for it.
	Start int `yaml:"start" env:"START"`
	// Seed for the random strategies; 0 seeds from the clock.
	Seed       uint64     `yaml:"seed" env:"SEED" env-default:"0"`
	Strategies Strategies `yaml:"strategies"`
	Experiment Experiment `yaml:"experiment"`
}

type Strategies struct {
	P1 string `yaml:"p1" env:"P1_STRATEGY" env-default:"interactive"`
	P2 string `yaml:"p2" env:"P2_STRATEGY" env-default:"random"`
}

type Experiment struct {
	Games     int    `yaml:"games" env:"GAMES" env-default:"30"`
	OutputDir string `yaml:"output-dir" env:"OUTPUT_DIR" env-default:"experiments/results"`
}

// Load reads the YAML file at path, overridden by the environment. With an
// empty path only the environment is read.
func Load(path string) (*Config, error) {
	config := &Config{P1First: true, Start: -1}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}
	return config, nil
}
