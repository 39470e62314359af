package engine

import (
	"errors"
	"testing"

	"pandemic/game"
	"pandemic/searcher"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type failingPlanner struct{}

func (failingPlanner) Plan(game.State) (game.Action, error) {
	return nil, errors.New("no idea")
}

// drawingPlanner always asks for the draw, which is only legal at the end of a turn.
type drawingPlanner struct{}

func (drawingPlanner) Plan(game.State) (game.Action, error) {
	return game.DrawAndInfect{}, nil
}

// strangerPlanner discards for a pawn that is not in the game.
type strangerPlanner struct{}

func (strangerPlanner) Plan(game.State) (game.Action, error) {
	return game.Discard{Pawn: game.Pawn{Role: game.Medic}, Card: game.CityCard(game.Atlanta)}, nil
}

func newBoard(t *testing.T, seed uint64) game.Board {
	t.Helper()
	board, err := game.NewBoard(game.WithSeed(seed))
	require.NoError(t, err)
	return board
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("plays a game to the end", func(t *testing.T) {
		e := NewLocalEngine(newBoard(t, 1), 1, searcher.FirstLegal{}, WithName("first"))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.Board().Status().Terminal())
		require.Contains(t, []string{"won", "lost"}, gameMetric.Result)
		require.NotEmpty(t, gameMetric.Reason)
		require.Equal(t, "first", gameMetric.Planner)
		require.Equal(t, uint64(1), gameMetric.Seed)
		require.NotEqual(t, uuid.Nil, gameMetric.ID)
		require.Equal(t, e.ID(), gameMetric.ID)
		require.Len(t, moveMetrics, gameMetric.TotalMoves)
		for i, m := range moveMetrics {
			require.Equal(t, i+1, m.Step)
			require.NotEmpty(t, m.Action)
		}
		require.Zero(t, gameMetric.Fallbacks)
		require.Equal(t, e.Board().Outbreaks(), gameMetric.Outbreaks)
	})

	t.Run("planner errors fall back to the first legal action", func(t *testing.T) {
		e := NewLocalEngine(newBoard(t, 2), 2, failingPlanner{})

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.True(t, e.Board().Status().Terminal())
		require.Equal(t, gameMetric.TotalMoves, gameMetric.Fallbacks)
	})

	t.Run("illegal choices fall back too", func(t *testing.T) {
		e := NewLocalEngine(newBoard(t, 3), 3, drawingPlanner{})

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Positive(t, gameMetric.Fallbacks)
		require.Less(t, gameMetric.Fallbacks, gameMetric.TotalMoves, "Legal draws should be played as chosen")
	})

	t.Run("actions for unknown pawns fall back", func(t *testing.T) {
		e := NewLocalEngine(newBoard(t, 8), 8, strangerPlanner{}, WithMaxSteps(10))

		gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 10, gameMetric.TotalMoves)
		require.Equal(t, 10, gameMetric.Fallbacks)
	})

	t.Run("step cap", func(t *testing.T) {
		e := NewLocalEngine(newBoard(t, 4), 4, searcher.FirstLegal{}, WithMaxSteps(3))

		gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, "in progress", gameMetric.Result)
		require.False(t, gameMetric.Won())
	})

	t.Run("observers see every step", func(t *testing.T) {
		var steps []Step
		e := NewLocalEngine(newBoard(t, 5), 5, searcher.NewRandom(5),
			WithMaxSteps(20), WithObserver(func(s Step) { steps = append(steps, s) }))

		_, _, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, steps)
		for i := 1; i < len(steps); i++ {
			require.Equal(t, steps[i-1].After, steps[i].Before, "step %d", i)
		}
		require.Equal(t, e.Board(), steps[len(steps)-1].After)
	})

	t.Run("search metrics are recorded", func(t *testing.T) {
		mcts := searcher.NewMCTS(searcher.WithIterations(2), searcher.WithCutoff(5),
			searcher.WithRollout(searcher.NewRandom(6)), searcher.WithMetrics())
		e := NewLocalEngine(newBoard(t, 6), 6, mcts, WithMaxSteps(4))

		_, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, 2, moveMetrics[0].Iterations)
		require.Equal(t, 5, moveMetrics[0].Cutoff)
	})

	t.Run("started boards are played as they are", func(t *testing.T) {
		board, err := newBoard(t, 7).Start()
		require.NoError(t, err)

		_, _, err = NewLocalEngine(board, 7, searcher.FirstLegal{}, WithMaxSteps(1)).Run()

		require.NoError(t, err)
	})
}
