package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewUCT(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCT(Exploration, 0)
		}, "Should panic when N is 0")
	})
}

func TestUCTEvaluate(t *testing.T) {
	t.Run("computing UCB1 value", func(t *testing.T) {
		policy := newUCT(1.0, 100)
		got := policy.evaluate(5.0, 10)

		expected := 5.0/10 + math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute q/n + c*sqrt(ln(N)/n)")
	})

	t.Run("exploration constant scales the bonus", func(t *testing.T) {
		got := newUCT(2.0, 100).evaluate(5.0, 10)

		expected := 5.0/10 + 2*math.Sqrt(math.Log(100)/10.0)
		require.InDelta(t, expected, got, 0.0001)
		require.InDelta(t, 0.5, newUCT(0, 100).evaluate(5.0, 10), 0.0001,
			"Zero exploration should leave the mean")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		policy := newUCT(1.0, 100)

		require.Panics(t, func() {
			policy.evaluate(5.0, 0)
		}, "Should panic when n is 0")
	})

	t.Run("exploration term increases with parent visits", func(t *testing.T) {
		rewards := 5.0
		visits := 10.0

		score1 := newUCT(1.0, 100).evaluate(rewards, visits)
		score2 := newUCT(1.0, 1000).evaluate(rewards, visits)

		require.Greater(t, score2, score1,
			"More parent visits should increase exploration term")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		policy := newUCT(1.0, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(5.0, 20)

		require.Greater(t, score1, score2,
			"More child visits should decrease exploration term")
	})

	t.Run("exploitation term increases with rewards", func(t *testing.T) {
		policy := newUCT(1.0, 100)

		score1 := policy.evaluate(5.0, 10)
		score2 := policy.evaluate(10.0, 10)

		require.Greater(t, score2, score1,
			"More rewards should increase exploitation term")
	})
}
