package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("unknown mode is returned as an error", func(t *testing.T) {
		err := run("", "tournament")

		require.EqualError(t, err, `unknown mode "tournament"`)
	})

	t.Run("missing config file is returned as an error", func(t *testing.T) {
		err := run(filepath.Join(t.TempDir(), "missing.yml"), "play")

		require.ErrorContains(t, err, "unable to load config file")
	})

	t.Run("experiment writes its records", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("GAME", "subtract-square")
		t.Setenv("START", "30")
		t.Setenv("SEED", "3")
		t.Setenv("GAMES", "2")
		t.Setenv("OUTPUT_DIR", dir)

		require.NoError(t, run("", "experiment"))

		matches, err := filepath.Glob(filepath.Join(dir, "*", "*", "game_records.csv"))
		require.NoError(t, err)
		require.Len(t, matches, 1)
	})
}
