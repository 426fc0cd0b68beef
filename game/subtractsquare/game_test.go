package subtractsquare

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"turnbased/game"
	"turnbased/game/chopsticks"
)

func TestNew(t *testing.T) {
	t.Run("player 1 starts", func(t *testing.T) {
		g, err := New(true, 20)

		require.NoError(t, err)
		require.Equal(t, game.P1, g.Player())
		require.Equal(t, NewState(game.P1, 20), g.State())
	})

	t.Run("player 2 starts", func(t *testing.T) {
		g, err := New(false, 0)

		require.NoError(t, err)
		require.Equal(t, game.P2, g.Player())
		require.True(t, g.IsOver(g.State()))
	})

	t.Run("negative start", func(t *testing.T) {
		_, err := New(true, -1)

		require.ErrorIs(t, err, ErrInvalidStart)
	})
}

func TestParseMove(t *testing.T) {
	g, err := New(true, 10)
	require.NoError(t, err)

	tests := []struct {
		raw      string
		expected game.Move
	}{
		{"4", Square(4)},
		{"0", Square(0)},
		{"17", Square(17)},
		{"007", Square(7)},
		{"", nil},
		{"-4", nil},
		{"4.0", nil},
		{" 4", nil},
		{"ll", nil},
		{"99999999999999999999999", nil},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, g.ParseMove(tt.raw), "ParseMove(%q)", tt.raw)
	}
}

func TestGamePlay(t *testing.T) {
	t.Run("first player to reach zero wins", func(t *testing.T) {
		g, err := New(true, 5)
		require.NoError(t, err)

		require.NoError(t, g.Play(Square(4)))
		require.False(t, g.IsOver(g.State()))
		require.NoError(t, g.Play(Square(1)))

		require.True(t, g.IsOver(g.State()))
		require.True(t, g.IsWinner(game.P2))
		require.False(t, g.IsWinner(game.P1))
	})

	t.Run("illegal move leaves the state alone", func(t *testing.T) {
		g, err := New(true, 5)
		require.NoError(t, err)

		require.ErrorIs(t, g.Play(Square(9)), game.ErrInvalidMove)
		require.Equal(t, NewState(game.P1, 5), g.State())
	})
}

func TestGameEqual(t *testing.T) {
	a, err := New(true, 20)
	require.NoError(t, err)
	b, err := New(false, 3)
	require.NoError(t, err)

	// Game equality only looks at the rules, so different positions still compare equal.
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(chopsticks.New(true)))
}

func TestGameText(t *testing.T) {
	g, err := New(true, 1)
	require.NoError(t, err)

	require.Equal(t, "The game is Subtract Square.", g.String())
	require.Equal(t, Instructions, g.Instructions())
}

func TestReadStart(t *testing.T) {
	t.Run("retries until a whole number", func(t *testing.T) {
		in := strings.NewReader("abc\n-3\n\n12\n")
		var out bytes.Buffer

		n, err := ReadStart(in, &out)

		require.NoError(t, err)
		require.Equal(t, 12, n)
		require.Equal(t, 4, strings.Count(out.String(), startPrompt))
	})

	t.Run("input ends before a number", func(t *testing.T) {
		_, err := ReadStart(strings.NewReader("x\n"), io.Discard)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
