package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeatures(t *testing.T) {
	b := startedBoard(t)

	x := Features(b)

	require.Equal(t, float64(NumColors*CubeSupply-18), x[CubesRemainingFeature])
	require.Zero(t, x[CuredDiseasesFeature])
	require.Equal(t, 2.0, x[InfectionRateFeature])
	require.Equal(t, 7.0, x[MaxOutbreaksFeature])
	require.Equal(t, 45.0, x[PlayerDeckFeature])
	require.Equal(t, 4.0, x[UncuredDiseasesFeature])
	require.Zero(t, x[OutbreaksFeature])
	require.Equal(t, float64(b.Graph().DistanceToInfection(Atlanta)), x[DistanceToInfectionFeature])
}

func TestUtilityScore(t *testing.T) {
	t.Run("weighted sum of features", func(t *testing.T) {
		b := startedBoard(t)
		var weights Weights
		weights[PlayerDeckFeature] = 2
		weights[UncuredDiseasesFeature] = -1

		require.InDelta(t, 2*45.0-4, NewUtility(weights).Score(b), 1e-9)
	})

	t.Run("clean board earns the bonus", func(t *testing.T) {
		b := startedBoard(t)
		b.graph = NewGraph().AddResearchStation(Atlanta)

		require.InDelta(t, NoCubesBonus, NewUtility(Weights{}).Score(b), 1e-9)
	})

	t.Run("evaluate matches score", func(t *testing.T) {
		b := startedBoard(t)
		u := NewUtility(DefaultWeights())

		require.Equal(t, u.Score(b), u.Evaluate(b))
	})

	t.Run("more outbreaks score lower with default weights", func(t *testing.T) {
		b := startedBoard(t)
		worse := b
		worse.outbreaks = 3
		u := NewUtility(DefaultWeights())

		require.Less(t, u.Score(worse), u.Score(b))
	})
}

func TestUpdateWeights(t *testing.T) {
	b := startedBoard(t)
	u := NewUtility(DefaultWeights())
	x := Features(b)

	t.Run("no error leaves the weights alone", func(t *testing.T) {
		require.Equal(t, u.Weights, u.UpdateWeights(b, u.Weights, 10, 10))
	})

	t.Run("overestimates shrink weights of positive features", func(t *testing.T) {
		updated := u.UpdateWeights(b, u.Weights, 20, 10)

		for f := range updated {
			want := u.Weights[f] - 10*DefaultLearningRate*x[f]*0.01
			require.InDelta(t, want, updated[f], 1e-12, "feature %s", Feature(f))
		}
		require.Less(t, updated[PlayerDeckFeature], u.Weights[PlayerDeckFeature])
	})

	t.Run("underestimates grow them", func(t *testing.T) {
		updated := u.UpdateWeights(b, u.Weights, 10, 20)
		require.Greater(t, updated[PlayerDeckFeature], u.Weights[PlayerDeckFeature])
	})
}

func TestParseNames(t *testing.T) {
	f, err := ParseFeature("player_deck")
	require.NoError(t, err)
	require.Equal(t, PlayerDeckFeature, f)
	_, err = ParseFeature("nope")
	require.Error(t, err)

	r, err := ParseRole("Operations_Expert")
	require.NoError(t, err)
	require.Equal(t, OperationsExpert, r)
	_, err = ParseRole("pilot")
	require.Error(t, err)
}
