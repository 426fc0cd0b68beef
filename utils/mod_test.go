package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMod(t *testing.T) {
	tests := []struct {
		a, m, want int
	}{
		{0, 5, 0},
		{4, 5, 4},
		{5, 5, 0},
		{8, 5, 3},
		{-1, 5, 4},
		{-10, 5, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Mod(tt.a, tt.m), "Mod(%d, %d)", tt.a, tt.m)
	}
}
