package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"turnbased/game"
	"turnbased/game/chopsticks"
)

func TestCollector(t *testing.T) {
	g := chopsticks.New(true)
	c := NewCollector()

	c.Start(g)
	require.NoError(t, g.Play(chopsticks.LeftLeft))
	c.AddMove(game.P1, chopsticks.LeftLeft, g.State(), 1)
	require.NoError(t, g.Play(chopsticks.RightRight))
	c.AddMove(game.P2, chopsticks.RightRight, g.State(), 2)
	gameMetric, moveMetrics := c.Complete(game.P1)

	require.NotEqual(t, uuid.Nil, gameMetric.ID)
	require.Equal(t, "The game is Chopsticks.", gameMetric.Game)
	require.Equal(t, game.P1, gameMetric.StartingPlayer)
	require.Equal(t, game.P1, gameMetric.Winner)
	require.Equal(t, 2, gameMetric.TotalMoves)
	require.False(t, gameMetric.EndTime.Before(gameMetric.StartTime))
	require.Equal(t, []MoveMetric{
		{Step: 1, Player: game.P1, Move: "ll", State: "Player 1: 1-1; Player 2: 2-1", Attempts: 1},
		{Step: 2, Player: game.P2, Move: "rr", State: "Player 1: 1-2; Player 2: 2-1", Attempts: 2},
	}, moveMetrics)

	t.Run("restarting clears moves", func(t *testing.T) {
		c.Start(chopsticks.New(false))
		_, moveMetrics := c.Complete("")

		require.Empty(t, moveMetrics)
	})
}

func TestDummyCollector(t *testing.T) {
	c := NewDummyCollector()
	g := chopsticks.New(true)

	c.Start(g)
	c.AddMove(game.P1, chopsticks.LeftLeft, g.State(), 1)
	gameMetric, moveMetrics := c.Complete(game.P2)

	require.Equal(t, game.P2, gameMetric.Winner)
	require.Nil(t, moveMetrics)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "random")
	require.NoError(t, err)
	require.DirExists(t, w.Dir())

	id := uuid.New()
	err = w.WriteGameRecords([]GameRecord{{
		Strategy1:  "random",
		Strategy2:  "random",
		GameMetric: GameMetric{ID: id, Game: "The game is Chopsticks.", StartingPlayer: game.P1, Winner: game.P2, TotalMoves: 9},
	}})
	require.NoError(t, err)

	err = w.WriteMoveRecords([]MoveRecord{{
		Game:       id,
		MoveMetric: MoveMetric{Step: 1, Player: game.P1, Move: "ll", State: "Player 1: 1-1; Player 2: 2-1", Attempts: 1},
	}})
	require.NoError(t, err)

	games := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, games, 2)
	require.Equal(t, "id", games[0][0])
	require.Equal(t, id.String(), games[1][0])
	require.Equal(t, []string{"p1", "p2"}, games[1][4:6])
	require.Equal(t, "9", games[1][9])

	moves := readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Equal(t, [][]string{
		{"game", "step", "player", "move", "state", "attempts"},
		{id.String(), "1", "p1", "ll", "Player 1: 1-1; Player 2: 2-1", "1"},
	}, moves)
}
