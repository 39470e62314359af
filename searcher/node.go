package searcher

import (
	"fmt"
	"math"

	"pandemic/game"
	"pandemic/utils"
)

// node is bound to the state reached by its action. Board transitions are
// deterministic given the state, so the tree needs no chance nodes.
type node struct {
	parent   *node
	action   game.Action
	state    game.State
	actions  []game.Action
	children []*node // children[i] is reached by actions[i]
	rewards  float64
	visits   int
}

func newNode(parent *node, action game.Action, state game.State) *node {
	actions := state.LegalActions()
	return &node{
		parent:   parent,
		action:   action,
		state:    state,
		actions:  actions,
		children: make([]*node, 0, len(actions)),
	}
}

func (n *node) isTerminal() bool {
	return len(n.actions) == 0
}

func (n *node) isExpandable() bool {
	return len(n.children) < len(n.actions)
}

// selectOrExpand adds the next untried child if there is one, otherwise it
// selects the child with the highest UCB1 score. A terminal node returns
// itself.
func (n *node) selectOrExpand(c float64) (child *node, expanded bool, err error) {
	if n.isTerminal() {
		return n, false, nil
	}
	if n.isExpandable() {
		child, err := n.addChild()
		return child, true, err
	}
	return n.children[n.pickChild(c)], false, nil
}

func (n *node) addChild() (*node, error) {
	action := n.actions[len(n.children)]
	next, _, err := n.state.Play(action)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", action, err)
	}
	child := newNode(n, action, next)
	n.children = append(n.children, child)
	return child, nil
}

func (n *node) pickChild(c float64) int {
	if n.visits == 0 {
		panic("node has children but no visits")
	}

	policy := newUCT(c, float64(n.visits))
	scores := make([]float64, len(n.children))
	for i, child := range n.children {
		if child.visits == 0 {
			return i
		}
		scores[i] = policy.evaluate(child.rewards, float64(child.visits))
	}
	return utils.ArgMax(scores)
}

func (n *node) backup(reward float64) *node {
	n.rewards += reward
	n.visits++
	return n.parent
}

func (n *node) mean() float64 {
	if n.visits == 0 {
		return math.Inf(-1)
	}
	return n.rewards / float64(n.visits)
}

// bestAction returns the action of the child with the highest mean reward.
func (n *node) bestAction() (game.Action, bool) {
	if len(n.children) == 0 {
		return nil, false
	}
	means := make([]float64, len(n.children))
	for i, child := range n.children {
		means[i] = child.mean()
	}
	return n.children[utils.ArgMax(means)].action, true
}
