package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"pandemic/config"
	"pandemic/game"
	"pandemic/searcher"

	"github.com/stretchr/testify/require"
)

func TestNewPlanner(t *testing.T) {
	utility := game.NewUtility(game.DefaultWeights())

	t.Run("builds every kind", func(t *testing.T) {
		for _, kind := range []string{config.MCTS, config.Greedy, config.TurnGreedy, config.Random, config.FirstLegal} {
			c := config.PlannerConfig{Kind: kind}
			c.ApplyDefaults()
			planner, err := NewPlanner(c, utility, 1)
			require.NoError(t, err, kind)
			require.NotNil(t, planner, kind)
		}
	})

	t.Run("mcts is a searcher", func(t *testing.T) {
		c := config.PlannerConfig{Kind: config.MCTS}
		c.ApplyDefaults()
		planner, err := NewPlanner(c, utility, 1)
		require.NoError(t, err)
		_, ok := planner.(searcher.Searcher)
		require.True(t, ok)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewPlanner(config.PlannerConfig{Kind: "oracle"}, utility, 1)
		require.ErrorContains(t, err, "oracle")
	})

	t.Run("unknown rollout", func(t *testing.T) {
		_, err := NewPlanner(config.PlannerConfig{Kind: config.MCTS, Rollout: "oracle"}, utility, 1)
		require.ErrorContains(t, err, "rollout")
	})
}

func TestLabel(t *testing.T) {
	require.Equal(t, "mcts(n=10,c=1,rollout=greedy)", Label(config.PlannerConfig{Kind: config.MCTS, Iterations: 10, Exploration: 1, Rollout: config.Greedy}))
	require.Equal(t, "mcts(n=5,c=0.5,rollout=random,cutoff=30)", Label(config.PlannerConfig{Kind: config.MCTS, Iterations: 5, Exploration: 0.5, Rollout: config.Random, Cutoff: 30}))
	require.Equal(t, "turn_greedy(depth=3)", Label(config.PlannerConfig{Kind: config.TurnGreedy, Depth: 3}))
	require.Equal(t, "turn_greedy", Label(config.PlannerConfig{Kind: config.TurnGreedy}))
	require.Equal(t, "random", Label(config.PlannerConfig{Kind: config.Random}))
}

func cheapConfig(t *testing.T) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.Experiment.Games = 2
	c.Experiment.OutputDir = t.TempDir()
	c.Experiment.Planners = []config.PlannerConfig{{Kind: config.FirstLegal}, {Kind: config.Random}}
	c.ApplyDefaults()
	require.NoError(t, c.Validate())
	return c
}

func TestRun(t *testing.T) {
	c := cheapConfig(t)

	result, err := Run(c)

	require.NoError(t, err)
	require.Len(t, result.Configs, 2)
	require.Len(t, result.GameRecords, 4)
	require.Equal(t, 1, result.GameRecords[0].PlannerID)
	require.Equal(t, 2, result.GameRecords[3].PlannerID)
	require.Equal(t, result.GameRecords[0].Seed, result.GameRecords[2].Seed, "Planners should face the same deals")
	require.NotEqual(t, result.GameRecords[0].Seed, result.GameRecords[1].Seed)

	moves := 0
	for _, g := range result.GameRecords {
		require.Contains(t, []string{"won", "lost"}, g.Result)
		moves += g.TotalMoves
	}
	require.Len(t, result.MoveRecords, moves)

	t.Run("write", func(t *testing.T) {
		dir, err := Write(c, "smoke", result)

		require.NoError(t, err)
		for _, name := range []string{"planner_configs.csv", "game_records.csv", "move_records.csv", "summary.html"} {
			_, err := os.Stat(filepath.Join(dir, name))
			require.NoError(t, err, name)
		}
	})
}
