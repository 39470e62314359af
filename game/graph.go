package game

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	// MaxCubes is the per-city, per-colour cap; overflow becomes an outbreak.
	MaxCubes = 3
	// CubeSupply is the number of cubes of each colour in the box.
	CubeSupply = 24
)

// Cubes holds cube counts per colour, indexed by Color.
type Cubes [NumColors]int

// Total returns the number of cubes of any colour.
func (c Cubes) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Location is the state of one city on the board.
type Location struct {
	Cubes           Cubes
	ResearchStation bool
}

// Outbreaks is the set of cities that outbroke during one cascade.
type Outbreaks uint64

func (o Outbreaks) Has(c City) bool {
	return o&(1<<uint(c)) != 0
}

func (o Outbreaks) Add(c City) Outbreaks {
	return o | 1<<uint(c)
}

func (o Outbreaks) Len() int {
	return bits.OnesCount64(uint64(o))
}

// Cities lists the members in index order.
func (o Outbreaks) Cities() []City {
	var cities []City
	for c := City(0); c < NumCities; c++ {
		if o.Has(c) {
			cities = append(cities, c)
		}
	}
	return cities
}

func (o Outbreaks) String() string {
	names := make([]string, 0, o.Len())
	for _, c := range o.Cities() {
		names = append(names, c.String())
	}
	return "{" + strings.Join(names, ", ") + "}"
}

// Placement requests count cubes of Color on City.
type Placement struct {
	City  City
	Color Color
	Count int
}

// Graph is the board: one location per city over the static adjacency table.
// It is a value type; every operation returns a new Graph.
type Graph struct {
	locations [NumCities]Location
}

// NewGraph returns an empty board with no cubes and no research stations.
func NewGraph() Graph {
	return Graph{}
}

func (g Graph) Location(c City) Location {
	return g.locations[c]
}

func (g Graph) CubeCount(c City, color Color) int {
	return g.locations[c].Cubes[color]
}

// IsAdjacent checks if two cities share a border.
func (g Graph) IsAdjacent(a, b City) bool {
	return contains(adjacency[a], b)
}

// Place adds count cubes of color on city and resolves any resulting
// outbreak cascade. The returned set holds every city that outbroke.
func (g Graph) Place(count int, color Color, city City) (Outbreaks, Graph) {
	return g.place(count, color, city, 0)
}

// PlaceAll resolves several placements sharing one outbreak set, so a city
// that outbroke during an earlier placement does not outbreak again.
func (g Graph) PlaceAll(placements []Placement) (Outbreaks, Graph) {
	var seen Outbreaks
	for _, p := range placements {
		seen, g = g.place(p.Count, p.Color, p.City, seen)
	}
	return seen, g
}

// place threads seen through every recursive call. The graph has cycles, so
// a city already in seen must never outbreak or receive spread cubes again.
func (g Graph) place(count int, color Color, city City, seen Outbreaks) (Outbreaks, Graph) {
	total := g.locations[city].Cubes[color] + count
	if total <= MaxCubes {
		g.locations[city].Cubes[color] = total
		return seen, g
	}

	g.locations[city].Cubes[color] = MaxCubes
	if seen.Has(city) {
		return seen, g
	}

	seen = seen.Add(city)
	for _, neighbor := range adjacency[city] {
		if seen.Has(neighbor) {
			continue
		}
		seen, g = g.place(1, color, neighbor, seen)
	}
	return seen, g
}

// RemoveCubes takes up to count cubes of color off city.
func (g Graph) RemoveCubes(count int, color Color, city City) (Graph, error) {
	if count < 0 {
		return g, fmt.Errorf("%w: cannot remove %d cubes", ErrInvalidMove, count)
	}
	current := g.locations[city].Cubes[color]
	g.locations[city].Cubes[color] = max(0, current-count)
	return g, nil
}

// ClearCubes removes every cube of color from city.
func (g Graph) ClearCubes(color Color, city City) Graph {
	g.locations[city].Cubes[color] = 0
	return g
}

func (g Graph) AddResearchStation(c City) Graph {
	g.locations[c].ResearchStation = true
	return g
}

func (g Graph) HasResearchStation(c City) bool {
	return g.locations[c].ResearchStation
}

// ResearchStations lists every city with a research station.
func (g Graph) ResearchStations() []City {
	var stations []City
	for c := City(0); c < NumCities; c++ {
		if g.locations[c].ResearchStation {
			stations = append(stations, c)
		}
	}
	return stations
}

// CubesOnBoard returns the number of cubes of color placed on any city.
func (g Graph) CubesOnBoard(color Color) int {
	placed := 0
	for _, loc := range g.locations {
		placed += loc.Cubes[color]
	}
	return placed
}

// CubesRemaining returns the supply left for color. It goes negative once the
// board holds more cubes than the box does.
func (g Graph) CubesRemaining(color Color) int {
	return CubeSupply - g.CubesOnBoard(color)
}

// HasValidCubeCount is false once any colour's supply is overdrawn.
func (g Graph) HasValidCubeCount() bool {
	for _, color := range Colors() {
		if g.CubesRemaining(color) < 0 {
			return false
		}
	}
	return true
}

// InfectedCities lists cities holding at least one cube of any colour.
func (g Graph) InfectedCities() []City {
	var infected []City
	for c := City(0); c < NumCities; c++ {
		if g.locations[c].Cubes.Total() > 0 {
			infected = append(infected, c)
		}
	}
	return infected
}

// DistanceToInfection returns the drives from c to the nearest infected
// city, or 0 when the board is clean.
func (g Graph) DistanceToInfection(c City) int {
	nearest := -1
	for _, infected := range g.InfectedCities() {
		d := Distance(c, infected)
		if nearest < 0 || d < nearest {
			nearest = d
		}
	}
	return max(nearest, 0)
}
