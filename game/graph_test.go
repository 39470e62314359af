package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestGraphPlace(t *testing.T) {
	t.Run("placing within the cap causes no outbreak", func(t *testing.T) {
		outbreaks, g := NewGraph().Place(3, Blue, Atlanta)

		require.Zero(t, outbreaks.Len())
		require.Equal(t, 3, g.CubeCount(Atlanta, Blue))
		require.Equal(t, CubeSupply-3, g.CubesRemaining(Blue))
	})

	t.Run("placing is a pure function of the graph", func(t *testing.T) {
		g := NewGraph()
		_, placed := g.Place(2, Red, Tokyo)

		require.Zero(t, g.CubeCount(Tokyo, Red), "Original graph should not change")
		require.Equal(t, 2, placed.CubeCount(Tokyo, Red))
	})

	t.Run("one cube over the cap outbreaks once and spreads one cube", func(t *testing.T) {
		_, g := NewGraph().Place(3, Black, Cairo)

		outbreaks, g := g.Place(1, Black, Cairo)

		require.Equal(t, []City{Cairo}, outbreaks.Cities())
		require.Equal(t, 3, g.CubeCount(Cairo, Black))
		for _, n := range Neighbors(Cairo) {
			require.Equal(t, 1, g.CubeCount(n, Black), "neighbour %s", n)
		}
		require.Equal(t, CubeSupply-3-len(Neighbors(Cairo)), g.CubesRemaining(Black))
	})

	t.Run("adjacent full cities outbreak once each", func(t *testing.T) {
		_, g := NewGraph().Place(3, Blue, Atlanta)
		_, g = g.Place(3, Blue, Chicago)

		outbreaks, g := g.Place(1, Blue, Atlanta)

		require.ElementsMatch(t, []City{Atlanta, Chicago}, outbreaks.Cities())
		require.Equal(t, 3, g.CubeCount(Atlanta, Blue))
		require.Equal(t, 3, g.CubeCount(Chicago, Blue))
		for _, c := range []City{Washington, Miami, SanFrancisco, LosAngeles, MexicoCity, Montreal} {
			require.Equal(t, 1, g.CubeCount(c, Blue), "city %s", c)
		}
	})

	t.Run("a cycle of full cities outbreaks each city once", func(t *testing.T) {
		g := NewGraph()
		for _, c := range []City{Atlanta, Washington, Miami} {
			_, g = g.Place(3, Blue, c)
		}

		outbreaks, g := g.Place(1, Blue, Atlanta)

		require.ElementsMatch(t, []City{Atlanta, Washington, Miami}, outbreaks.Cities())
		for _, c := range []City{Chicago, NewYork, Montreal, MexicoCity, Bogota} {
			require.Equal(t, 1, g.CubeCount(c, Blue), "city %s", c)
		}
	})

	t.Run("batched placements share the outbreak set", func(t *testing.T) {
		_, g := NewGraph().Place(3, Red, Osaka)

		outbreaks, g := g.PlaceAll([]Placement{
			{City: Osaka, Color: Red, Count: 1},
			{City: Osaka, Color: Red, Count: 1},
		})

		require.Equal(t, []City{Osaka}, outbreaks.Cities(), "Second placement should not outbreak again")
		require.Equal(t, 1, g.CubeCount(Tokyo, Red))
		require.Equal(t, 1, g.CubeCount(Taipei, Red))
	})

	t.Run("cube counts stay within bounds", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		g := NewGraph()
		for i := 0; i < 500; i++ {
			city := City(rng.Intn(NumCities))
			color := Color(rng.Intn(NumColors))
			if rng.Intn(3) == 0 {
				g, _ = g.RemoveCubes(rng.Intn(3), color, city)
			} else {
				_, g = g.Place(rng.Intn(4), color, city)
			}
			for _, c := range Cities() {
				for _, col := range Colors() {
					n := g.CubeCount(c, col)
					require.True(t, n >= 0 && n <= MaxCubes, "%s %s has %d cubes", c, col, n)
				}
			}
		}
	})
}

func TestGraphCubeSupply(t *testing.T) {
	t.Run("overdrawing a colour invalidates the cube count", func(t *testing.T) {
		g := NewGraph()
		for _, c := range Cities()[:8] {
			_, g = g.Place(3, Yellow, c)
		}
		require.Equal(t, 0, g.CubesRemaining(Yellow))
		require.True(t, g.HasValidCubeCount())

		_, g = g.Place(1, Yellow, Cities()[8])

		require.Equal(t, -1, g.CubesRemaining(Yellow))
		require.False(t, g.HasValidCubeCount())
	})

	t.Run("removing cubes never goes below zero", func(t *testing.T) {
		_, g := NewGraph().Place(1, Black, Delhi)

		g, err := g.RemoveCubes(2, Black, Delhi)

		require.NoError(t, err)
		require.Zero(t, g.CubeCount(Delhi, Black))
	})

	t.Run("negative removals are invalid", func(t *testing.T) {
		_, err := NewGraph().RemoveCubes(-1, Black, Delhi)
		require.ErrorIs(t, err, ErrInvalidMove)
	})
}

func TestGraphQueries(t *testing.T) {
	t.Run("research stations", func(t *testing.T) {
		g := NewGraph().AddResearchStation(Atlanta).AddResearchStation(Paris)

		require.ElementsMatch(t, []City{Atlanta, Paris}, g.ResearchStations())
		require.True(t, g.HasResearchStation(Paris))
		require.False(t, g.HasResearchStation(Lima))
	})

	t.Run("adjacency", func(t *testing.T) {
		g := NewGraph()
		require.True(t, g.IsAdjacent(Sydney, LosAngeles))
		require.True(t, g.IsAdjacent(LosAngeles, Sydney))
		require.False(t, g.IsAdjacent(Sydney, Tokyo))
	})

	t.Run("distance to the nearest infection", func(t *testing.T) {
		g := NewGraph()
		require.Zero(t, g.DistanceToInfection(Atlanta), "Clean board should report zero")

		_, g = g.Place(1, Blue, Montreal)
		_, g = g.Place(1, Red, Tokyo)

		require.Equal(t, 2, g.DistanceToInfection(Atlanta))
		require.Equal(t, 0, g.DistanceToInfection(Tokyo))
		require.ElementsMatch(t, []City{Montreal, Tokyo}, g.InfectedCities())
	})
}
