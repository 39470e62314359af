package searcher

import (
	"testing"

	"pandemic/game"

	"github.com/stretchr/testify/require"
)

func TestNodeSelectOrExpand(t *testing.T) {
	t.Run("expanding the next untried action", func(t *testing.T) {
		root := newNode(nil, nil, branch(0, won(), lost()))

		child, expanded, err := root.selectOrExpand(Exploration)

		require.NoError(t, err)
		require.True(t, expanded, "Node should perform expansion")
		require.Len(t, root.children, 1)
		require.Same(t, root, child.parent)
		require.Equal(t, to(0), child.action, "Child should follow the first legal action")
		require.True(t, child.state.Status().Equal(game.Win("")))
		require.Zero(t, child.visits, "Expansion should not visit the child")
	})

	t.Run("selecting fully expanded node", func(t *testing.T) {
		root := newNode(nil, nil, branch(0, won(), won()))
		for range root.actions {
			_, _, err := root.selectOrExpand(Exploration)
			require.NoError(t, err)
		}
		root.children[0].rewards, root.children[0].visits = -1, 1
		root.children[1].rewards, root.children[1].visits = 1, 1
		root.visits = 2

		child, expanded, err := root.selectOrExpand(Exploration)

		require.NoError(t, err)
		require.False(t, expanded)
		require.Same(t, root.children[1], child, "Node should select child with max UCB1 value")
		require.Equal(t, 2, root.visits, "Node stats should not change")
	})

	t.Run("unvisited children are selected first", func(t *testing.T) {
		root := newNode(nil, nil, branch(0, won(), won()))
		for range root.actions {
			_, _, err := root.selectOrExpand(Exploration)
			require.NoError(t, err)
		}
		root.children[0].rewards, root.children[0].visits = 1, 1
		root.visits = 1

		child, _, err := root.selectOrExpand(Exploration)

		require.NoError(t, err)
		require.Same(t, root.children[1], child)
	})

	t.Run("terminal node selects itself", func(t *testing.T) {
		leaf := newNode(nil, nil, lost())

		child, expanded, err := leaf.selectOrExpand(Exploration)

		require.NoError(t, err)
		require.False(t, expanded)
		require.Same(t, leaf, child)
	})

	t.Run("failed expansion reports the action", func(t *testing.T) {
		broken := mockState{status: inProgress(), actions: []game.Action{game.Pass{}}}

		_, _, err := newNode(nil, nil, broken).selectOrExpand(Exploration)

		require.ErrorIs(t, err, game.ErrInvalidMove)
		require.ErrorContains(t, err, "pass")
	})
}

func TestNodeBackup(t *testing.T) {
	root := newNode(nil, nil, branch(0, branch(0, won())))
	child, _, err := root.selectOrExpand(Exploration)
	require.NoError(t, err)
	grandChild, _, err := child.selectOrExpand(Exploration)
	require.NoError(t, err)

	backup(grandChild, WIN)
	backup(child, LOSS)

	require.Equal(t, 1, grandChild.visits)
	require.Equal(t, WIN, grandChild.rewards)
	require.Equal(t, 2, child.visits)
	require.Equal(t, 0.0, child.rewards)
	require.Equal(t, 2, root.visits, "Backup should reach the root")
	require.Equal(t, 0.0, root.rewards)
}

func TestNodeBestAction(t *testing.T) {
	t.Run("highest mean reward wins over most visits", func(t *testing.T) {
		root := newNode(nil, nil, branch(0, won(), won()))
		for range root.actions {
			_, _, err := root.selectOrExpand(Exploration)
			require.NoError(t, err)
		}
		root.children[0].rewards, root.children[0].visits = 3, 10
		root.children[1].rewards, root.children[1].visits = 1, 1

		action, ok := root.bestAction()

		require.True(t, ok)
		require.Equal(t, to(1), action)
	})

	t.Run("no children", func(t *testing.T) {
		_, ok := newNode(nil, nil, branch(0, won())).bestAction()
		require.False(t, ok)
	})
}
