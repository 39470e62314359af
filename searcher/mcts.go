package searcher

import (
	"fmt"

	"pandemic/experiments/metrics"
	"pandemic/game"
	"pandemic/meta"

	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

type MCTS struct {
	iterations  int
	exploration float64
	cutoff      int // 0 plays every rollout to the end of the game
	rollout     Planner
	metrics     metrics.Collector
}

func WithIterations(iterations int) Option {
	return func(m *MCTS) {
		if iterations > 0 {
			m.iterations = iterations
		}
	}
}

func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c >= 0 {
			m.exploration = c
		}
	}
}

func WithCutoff(depth int) Option {
	return func(m *MCTS) {
		if depth > 0 {
			m.cutoff = depth
		}
	}
}

// WithRollout sets the policy that plays out each new leaf.
func WithRollout(planner Planner) Option {
	return func(m *MCTS) {
		if planner != nil {
			m.rollout = planner
		}
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		iterations:  meta.ITERATIONS,
		exploration: Exploration,
		rollout:     NewGreedy(game.NewUtility(game.DefaultWeights()).Evaluate),
		metrics:     metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *MCTS) Plan(state game.State) (game.Action, error) {
	action, _, err := m.Search(state)
	return action, err
}

// Search builds a fresh tree rooted at state and returns the root action
// with the highest mean reward.
func (m *MCTS) Search(state game.State) (game.Action, metrics.SearchMetric, error) {
	root := newNode(nil, nil, state)
	if root.isTerminal() {
		return nil, metrics.SearchMetric{}, ErrNoActions
	}
	if len(root.actions) == 1 {
		return root.actions[0], metrics.SearchMetric{}, nil
	}

	m.metrics.Start(m.iterations, m.cutoff, m.exploration)
	for i := 0; i < m.iterations; i++ {
		if err := m.simulate(root); err != nil {
			return nil, m.metrics.Complete(), fmt.Errorf("iteration %d: %w", i, err)
		}
		m.metrics.AddIteration()
	}
	metric := m.metrics.Complete()

	action, _ := root.bestAction()
	log.Debug().Msgf("searched %d iterations over %d actions, chose %s", m.iterations, len(root.actions), action)
	return action, metric, nil
}

func (m *MCTS) simulate(root *node) error {
	leaf, err := selectThenExpand(root, m.exploration)
	if err != nil {
		return err
	}
	reward, err := rollout(leaf.state, m.cutoff, m.rollout, m.metrics)
	if err != nil {
		return err
	}
	backup(leaf, reward)
	return nil
}

func selectThenExpand(root *node, c float64) (*node, error) {
	parent := root
	for {
		child, expanded, err := parent.selectOrExpand(c)
		if err != nil {
			return nil, err
		}
		if expanded || child == parent {
			return child, nil
		}
		parent = child
	}
}

func rollout(state game.State, cutoff int, policy Planner, metrics metrics.Collector) (float64, error) {
	depth := 0
	// Rollout till game over or for cutoff number of actions
	for !state.Status().Terminal() && (cutoff <= 0 || depth < cutoff) {
		action, err := policy.Plan(state)
		if err != nil {
			return 0, fmt.Errorf("rollout at depth %d: %w", depth, err)
		}
		next, _, err := state.Play(action)
		if err != nil {
			return 0, fmt.Errorf("rollout at depth %d: %w", depth, err)
		}
		state = next
		depth++
	}

	if state.Status().Terminal() {
		metrics.AddFullPlayout()
	}
	return outcome(state.Status()), nil
}

func backup(leaf *node, reward float64) {
	n := leaf
	for n != nil {
		n = n.backup(reward)
	}
}
