package searcher

import (
	"math"

	"pandemic/game"
	"pandemic/utils"

	"golang.org/x/exp/rand"
)

// Random picks uniformly among the legal actions.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Plan(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	return actions[r.rng.Intn(len(actions))], nil
}

// FirstLegal always plays the first legal action.
type FirstLegal struct{}

func (FirstLegal) Plan(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	return actions[0], nil
}

// value scores a state, treating wins and losses as the extremes.
func value(state game.State, evaluate game.Evaluate) float64 {
	switch state.Status().Kind {
	case game.Won:
		return math.Inf(1)
	case game.Lost:
		return math.Inf(-1)
	default:
		return evaluate(state)
	}
}

// Greedy plays the action whose resulting state evaluates highest, keeping
// the first on ties.
type Greedy struct {
	evaluate game.Evaluate
}

func NewGreedy(evaluate game.Evaluate) Greedy {
	return Greedy{evaluate: evaluate}
}

func (g Greedy) Plan(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	if len(actions) == 1 {
		return actions[0], nil
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		next, _, err := state.Play(action)
		if err != nil {
			scores[i] = math.Inf(-1)
			continue
		}
		scores[i] = value(next, g.evaluate)
	}
	return actions[utils.ArgMax(scores)], nil
}

// TurnGreedy looks ahead through the rest of the acting pawn's turn and plays
// the first action of the best sequence found.
type TurnGreedy struct {
	evaluate game.Evaluate
	depth    int // 0 searches to the forced draw
}

// NewTurnGreedy caps the lookahead at depth actions when depth is positive.
func NewTurnGreedy(evaluate game.Evaluate, depth int) TurnGreedy {
	return TurnGreedy{evaluate: evaluate, depth: max(depth, 0)}
}

func (g TurnGreedy) Plan(state game.State) (game.Action, error) {
	actions := state.LegalActions()
	if len(actions) == 0 {
		return nil, ErrNoActions
	}
	if len(actions) == 1 {
		return actions[0], nil
	}

	scores := make([]float64, len(actions))
	for i, action := range actions {
		next, _, err := state.Play(action)
		if err != nil {
			scores[i] = math.Inf(-1)
			continue
		}
		scores[i] = g.best(next, g.depth-1)
	}
	return actions[utils.ArgMax(scores)], nil
}

// best is the highest value reachable from state before the forced draw.
// A negative depth never runs out.
func (g TurnGreedy) best(state game.State, depth int) float64 {
	if depth == 0 || state.Status().Terminal() {
		return value(state, g.evaluate)
	}
	actions := state.LegalActions()
	if len(actions) == 0 || isTurnOver(actions) {
		return value(state, g.evaluate)
	}

	best := math.Inf(-1)
	for _, action := range actions {
		next, _, err := state.Play(action)
		if err != nil {
			continue
		}
		best = max(best, g.best(next, depth-1))
	}
	return best
}

func isTurnOver(actions []game.Action) bool {
	return len(actions) == 1 && actions[0].Type() == game.DrawAndInfectAction
}
