package main

import (
	"bytes"
	"testing"

	"pandemic/engine"
	"pandemic/game"

	"github.com/stretchr/testify/require"
)

func TestRenderer(t *testing.T) {
	r := newRenderer(&bytes.Buffer{})
	board, err := game.NewBoard(game.WithSeed(5))
	require.NoError(t, err)
	board, err = board.Start()
	require.NoError(t, err)

	t.Run("board", func(t *testing.T) {
		out := r.board(board)

		require.Contains(t, out, "status:      in progress")
		require.Contains(t, out, "outbreaks:   0/7")
		require.Contains(t, out, "Atlanta")
		for _, p := range board.Pawns() {
			require.Contains(t, out, p.String())
		}
		require.NotContains(t, out, "\x1b[", "Buffers should get plain text")
	})

	t.Run("step", func(t *testing.T) {
		action := board.LegalActions()[0]
		next, reward, err := board.Execute(action)
		require.NoError(t, err)

		out := r.step(engine.Step{Number: 1, Action: action, Before: board, After: next, Reward: reward})

		require.Contains(t, out, action.String())
		require.Contains(t, out, board.ActivePawn().String())
	})
}

func TestLoadConfig(t *testing.T) {
	c, err := loadConfig("", 42)
	require.NoError(t, err)
	require.Equal(t, uint64(42), c.Seed)

	_, err = loadConfig("missing.yaml", 0)
	require.Error(t, err)
}
