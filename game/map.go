package game

import "fmt"

// Color is one of the four diseases.
type Color int

const (
	Red Color = iota
	Yellow
	Blue
	Black
)

const NumColors = 4

var colorNames = [NumColors]string{"red", "yellow", "blue", "black"}

func (c Color) String() string {
	if c < 0 || int(c) >= NumColors {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// Colors lists every disease colour in index order.
func Colors() []Color {
	return []Color{Red, Yellow, Blue, Black}
}

// City is a dense index into the static city tables.
type City int

const NoCity City = -1

// City IDs, grouped by colour
const (
	Atlanta City = iota
	Chicago
	Essen
	London
	Madrid
	Milan
	Montreal
	NewYork
	Paris
	SanFrancisco
	StPetersburg
	Washington

	Bogota
	BuenosAires
	Johannesburg
	Khartoum
	Kinshasa
	Lagos
	Lima
	LosAngeles
	MexicoCity
	Miami
	Santiago
	SaoPaulo

	Algiers
	Baghdad
	Cairo
	Chennai
	Delhi
	Istanbul
	Karachi
	Kolkata
	Moscow
	Mumbai
	Riyadh
	Tehran

	Bangkok
	Beijing
	HoChiMinhCity
	HongKong
	Jakarta
	Manila
	Osaka
	Seoul
	Shanghai
	Sydney
	Taipei
	Tokyo

	NumCities = iota
)

// StartCity holds the first research station and every pawn at setup.
const StartCity = Atlanta

var cityNames = [NumCities]string{
	"Atlanta", "Chicago", "Essen", "London", "Madrid", "Milan",
	"Montreal", "New York", "Paris", "San Francisco", "St. Petersburg", "Washington",
	"Bogota", "Buenos Aires", "Johannesburg", "Khartoum", "Kinshasa", "Lagos",
	"Lima", "Los Angeles", "Mexico City", "Miami", "Santiago", "Sao Paulo",
	"Algiers", "Baghdad", "Cairo", "Chennai", "Delhi", "Istanbul",
	"Karachi", "Kolkata", "Moscow", "Mumbai", "Riyadh", "Tehran",
	"Bangkok", "Beijing", "Ho Chi Minh City", "Hong Kong", "Jakarta", "Manila",
	"Osaka", "Seoul", "Shanghai", "Sydney", "Taipei", "Tokyo",
}

func (c City) String() string {
	if !c.Valid() {
		return fmt.Sprintf("City(%d)", int(c))
	}
	return cityNames[c]
}

func (c City) Valid() bool {
	return c >= 0 && c < NumCities
}

// Color returns the disease colour the city belongs to. Cities are laid out
// in blocks of twelve per colour.
func (c City) Color() Color {
	switch {
	case c < Bogota:
		return Blue
	case c < Algiers:
		return Yellow
	case c < Bangkok:
		return Black
	default:
		return Red
	}
}

// Cities lists every city in index order.
func Cities() []City {
	cities := make([]City, NumCities)
	for i := range cities {
		cities[i] = City(i)
	}
	return cities
}

// Adjacency data: each border is listed once and added in both directions
var borders = [][2]City{
	{SanFrancisco, Tokyo}, {SanFrancisco, Manila}, {SanFrancisco, LosAngeles}, {SanFrancisco, Chicago},
	{Chicago, LosAngeles}, {Chicago, MexicoCity}, {Chicago, Atlanta}, {Chicago, Montreal},
	{Montreal, NewYork}, {Montreal, Washington},
	{NewYork, Washington}, {NewYork, London}, {NewYork, Madrid},
	{Washington, Atlanta}, {Washington, Miami},
	{Atlanta, Miami},
	{London, Madrid}, {London, Paris}, {London, Essen},
	{Madrid, Paris}, {Madrid, Algiers}, {Madrid, SaoPaulo},
	{Paris, Essen}, {Paris, Milan}, {Paris, Algiers},
	{Essen, Milan}, {Essen, StPetersburg},
	{Milan, Istanbul},
	{StPetersburg, Istanbul}, {StPetersburg, Moscow},
	{LosAngeles, MexicoCity}, {LosAngeles, Sydney},
	{MexicoCity, Miami}, {MexicoCity, Bogota}, {MexicoCity, Lima},
	{Miami, Bogota},
	{Bogota, Lima}, {Bogota, BuenosAires}, {Bogota, SaoPaulo},
	{Lima, Santiago},
	{BuenosAires, SaoPaulo},
	{SaoPaulo, Lagos},
	{Lagos, Khartoum}, {Lagos, Kinshasa},
	{Kinshasa, Khartoum}, {Kinshasa, Johannesburg},
	{Johannesburg, Khartoum},
	{Khartoum, Cairo},
	{Algiers, Istanbul}, {Algiers, Cairo},
	{Cairo, Istanbul}, {Cairo, Baghdad}, {Cairo, Riyadh},
	{Istanbul, Moscow}, {Istanbul, Baghdad},
	{Moscow, Tehran},
	{Baghdad, Riyadh}, {Baghdad, Karachi}, {Baghdad, Tehran},
	{Riyadh, Karachi},
	{Tehran, Karachi}, {Tehran, Delhi},
	{Karachi, Mumbai}, {Karachi, Delhi},
	{Mumbai, Delhi}, {Mumbai, Chennai},
	{Delhi, Chennai}, {Delhi, Kolkata},
	{Chennai, Kolkata}, {Chennai, Bangkok}, {Chennai, Jakarta},
	{Kolkata, Bangkok}, {Kolkata, HongKong},
	{Beijing, Seoul}, {Beijing, Shanghai},
	{Seoul, Shanghai}, {Seoul, Tokyo},
	{Shanghai, Tokyo}, {Shanghai, Taipei}, {Shanghai, HongKong},
	{Tokyo, Osaka},
	{Osaka, Taipei},
	{Taipei, HongKong}, {Taipei, Manila},
	{HongKong, Manila}, {HongKong, HoChiMinhCity}, {HongKong, Bangkok},
	{Bangkok, HoChiMinhCity}, {Bangkok, Jakarta},
	{HoChiMinhCity, Jakarta}, {HoChiMinhCity, Manila},
	{Manila, Sydney},
	{Jakarta, Sydney},
}

var (
	adjacency [NumCities][]City
	distances [NumCities][NumCities]int
)

func init() {
	for _, b := range borders {
		addBorder(b[0], b[1])
	}
	for c := City(0); c < NumCities; c++ {
		distances[c] = bfs(c)
	}
}

// addBorder adds a bidirectional border between two cities.
func addBorder(a, b City) {
	if !contains(adjacency[a], b) {
		adjacency[a] = append(adjacency[a], b)
	}
	if !contains(adjacency[b], a) {
		adjacency[b] = append(adjacency[b], a)
	}
}

func contains(cities []City, city City) bool {
	for _, c := range cities {
		if c == city {
			return true
		}
	}
	return false
}

// Neighbors returns the cities adjacent to c. The slice is shared and must not be modified.
func Neighbors(c City) []City {
	return adjacency[c]
}

// Just BFS
func bfs(from City) [NumCities]int {
	var dist [NumCities]int
	for i := range dist {
		dist[i] = -1
	}
	dist[from] = 0
	queue := []City{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range adjacency[current] {
			if dist[n] < 0 {
				dist[n] = dist[current] + 1
				queue = append(queue, n)
			}
		}
	}
	return dist
}

// Distance returns the number of drives between two cities.
func Distance(a, b City) int {
	return distances[a][b]
}
