package experiments

import (
	"fmt"

	"pandemic/config"
	"pandemic/engine"
	"pandemic/experiments/metrics"
	"pandemic/game"

	"github.com/rs/zerolog/log"
)

// Result holds everything recorded while running an experiment.
type Result struct {
	Configs     []metrics.PlannerConfig
	GameRecords []metrics.GameRecord
	MoveRecords []metrics.MoveRecord
}

// Run plays c.Experiment.Games games for every planner config. Game i of
// every planner uses the same seed, so each planner faces the same deals.
func Run(c *config.Config) (Result, error) {
	utility, err := c.NewUtility()
	if err != nil {
		return Result{}, err
	}

	var result Result
	count := 0
	log.Info().Msgf("starting experiment with %d planners and %d games each...", len(c.Experiment.Planners), c.Experiment.Games)

	for pi, plannerConfig := range c.Experiment.Planners {
		label := Label(plannerConfig)
		result.Configs = append(result.Configs, metrics.PlannerConfig{
			ID:          pi + 1,
			Label:       label,
			Kind:        plannerConfig.Kind,
			Iterations:  plannerConfig.Iterations,
			Exploration: plannerConfig.Exploration,
			Cutoff:      plannerConfig.Cutoff,
			Rollout:     plannerConfig.Rollout,
			Depth:       plannerConfig.Depth,
		})
		log.Info().Msgf("starting planner %d of %d: %s...", pi+1, len(c.Experiment.Planners), label)

		for i := 0; i < c.Experiment.Games; i++ {
			seed := c.Seed + uint64(i)
			gameMetric, moveMetrics, err := runGame(c, plannerConfig, utility, seed, label)
			if err != nil {
				return result, fmt.Errorf("planner %s game %d: %w", label, i+1, err)
			}
			count++
			result.GameRecords = append(result.GameRecords, metrics.GameRecord{
				Index:      count,
				PlannerID:  pi + 1,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				result.MoveRecords = append(result.MoveRecords, metrics.MoveRecord{
					Game:       gameMetric.ID,
					MoveMetric: mm,
				})
			}
			log.Info().Msgf("completed planner %d game %d of %d: %s", pi+1, i+1, c.Experiment.Games, gameMetric.Result)
		}
	}

	log.Info().Msgf("completed experiment with %d games", count)
	return result, nil
}

// Write stores the result as CSV files and an HTML chart under a fresh
// timestamped directory in c.Experiment.OutputDir.
func Write(c *config.Config, name string, result Result) (string, error) {
	writer, err := metrics.NewWriter(c.Experiment.OutputDir, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WritePlannerConfigs(result.Configs); err != nil {
		return "", err
	}
	log.Info().Msg("stored planner configs")
	if err := writer.WriteGameRecords(result.GameRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored game records")
	if err := writer.WriteMoveRecords(result.MoveRecords); err != nil {
		return "", err
	}
	log.Info().Msg("stored move records")
	if err := writer.WriteChart(metrics.Summarize(result.Configs, result.GameRecords)); err != nil {
		return "", err
	}
	log.Info().Msg("stored chart")
	return writer.Dir(), nil
}

func runGame(c *config.Config, plannerConfig config.PlannerConfig, utility game.Utility, seed uint64, label string) (metrics.GameMetric, []metrics.MoveMetric, error) {
	options, err := c.BoardOptions(seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	board, err := game.NewBoard(options...)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	planner, err := NewPlanner(plannerConfig, utility, seed)
	if err != nil {
		return metrics.GameMetric{}, nil, err
	}
	return engine.NewLocalEngine(board, seed, planner, engine.WithName(label)).Run()
}
