package experiments

import (
	"fmt"

	"pandemic/config"
	"pandemic/game"
	"pandemic/searcher"
)

// NewPlanner builds the planner a config describes. seed drives any
// randomness the planner needs.
func NewPlanner(c config.PlannerConfig, utility game.Utility, seed uint64) (searcher.Planner, error) {
	switch c.Kind {
	case config.MCTS:
		rollout, err := NewPlanner(config.PlannerConfig{Kind: c.Rollout, Depth: c.Depth}, utility, seed)
		if err != nil {
			return nil, fmt.Errorf("rollout: %w", err)
		}
		return searcher.NewMCTS(
			searcher.WithIterations(c.Iterations),
			searcher.WithExploration(c.Exploration),
			searcher.WithCutoff(c.Cutoff),
			searcher.WithRollout(rollout),
			searcher.WithMetrics(),
		), nil
	case config.Greedy:
		return searcher.NewGreedy(utility.Evaluate), nil
	case config.TurnGreedy:
		return searcher.NewTurnGreedy(utility.Evaluate, c.Depth), nil
	case config.Random:
		return searcher.NewRandom(seed), nil
	case config.FirstLegal:
		return searcher.FirstLegal{}, nil
	default:
		return nil, fmt.Errorf("unknown planner kind %q", c.Kind)
	}
}

// Label names a planner config in logs and output files.
func Label(c config.PlannerConfig) string {
	switch c.Kind {
	case config.MCTS:
		label := fmt.Sprintf("mcts(n=%d,c=%g,rollout=%s", c.Iterations, c.Exploration, c.Rollout)
		if c.Cutoff > 0 {
			label += fmt.Sprintf(",cutoff=%d", c.Cutoff)
		}
		return label + ")"
	case config.TurnGreedy:
		if c.Depth == 0 {
			return c.Kind
		}
		return fmt.Sprintf("turn_greedy(depth=%d)", c.Depth)
	default:
		return c.Kind
	}
}
