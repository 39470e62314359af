package searcher

import (
	"errors"

	"pandemic/experiments/metrics"
	"pandemic/game"
)

// Planner picks the next action for the active pawn.
type Planner interface {
	Plan(state game.State) (game.Action, error)
}

// Searcher is a Planner that also reports how it searched.
type Searcher interface {
	Planner
	Search(state game.State) (game.Action, metrics.SearchMetric, error)
}

var ErrNoActions = errors.New("no legal actions")

// Rewards of a playout
const (
	WIN    = 1.0
	LOSS   = -WIN
	CUTOFF = 0.0
)

func outcome(status game.Status) float64 {
	switch status.Kind {
	case game.Won:
		return WIN
	case game.Lost:
		return LOSS
	default:
		return CUTOFF
	}
}
