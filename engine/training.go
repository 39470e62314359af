package engine

import (
	"fmt"

	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"
	"pandemic/searcher"

	"github.com/rs/zerolog/log"
)

// PlannerFactory builds the planner for one training episode from the
// current utility.
type PlannerFactory func(utility game.Utility, seed uint64) (searcher.Planner, error)

type Trainer struct {
	utility    game.Utility
	episodes   int
	seed       uint64
	newBoard   func(seed uint64) (game.Board, error)
	newPlanner PlannerFactory
}

type Episode struct {
	metrics.GameMetric
	Updates int
	Weights game.Weights
}

func NewTrainer(utility game.Utility, episodes int, seed uint64, newBoard func(seed uint64) (game.Board, error), newPlanner PlannerFactory) *Trainer {
	if episodes <= 0 {
		episodes = meta.TRAINING_EPISODES
	}
	return &Trainer{
		utility:    utility,
		episodes:   episodes,
		seed:       seed,
		newBoard:   newBoard,
		newPlanner: newPlanner,
	}
}

func (t *Trainer) Utility() game.Utility {
	return t.utility
}

// Run plays the episodes one after another. At the end of every turn the
// utility of the board at the start of the turn is the prediction and the
// utility after the draw and infect step is the outcome; the weights move
// to shrink the difference.
func (t *Trainer) Run() ([]Episode, error) {
	episodes := make([]Episode, 0, t.episodes)
	for i := 0; i < t.episodes; i++ {
		seed := t.seed + uint64(i)
		board, err := t.newBoard(seed)
		if err != nil {
			return episodes, fmt.Errorf("episode %d: %w", i+1, err)
		}

		planner, err := t.newPlanner(t.utility, seed)
		if err != nil {
			return episodes, fmt.Errorf("episode %d: %w", i+1, err)
		}
		var turnStart *game.Board
		updates := 0
		observe := func(step Step) {
			if turnStart == nil {
				before := step.Before
				turnStart = &before
			}
			if step.Action.Type() != game.DrawAndInfectAction {
				return
			}
			predicted := t.utility.Score(*turnStart)
			actual := t.utility.Score(step.After)
			t.utility.Weights = t.utility.UpdateWeights(*turnStart, t.utility.Weights, predicted, actual)
			updates++
			turnStart = nil
		}

		e := NewLocalEngine(board, seed, planner, WithObserver(observe), WithName("training"))
		gameMetric, _, err := e.Run()
		if err != nil {
			return episodes, fmt.Errorf("episode %d: %w", i+1, err)
		}

		episodes = append(episodes, Episode{GameMetric: gameMetric, Updates: updates, Weights: t.utility.Weights})
		log.Info().Msgf("episode %d of %d: %s with %d weight updates", i+1, t.episodes, gameMetric.Result, updates)
	}
	return episodes, nil
}
