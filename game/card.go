package game

// Card is either a city card or the epidemic marker. Cards compare with ==.
type Card struct {
	city     City
	epidemic bool
}

// EpidemicCard is the marker planted in the player deck.
var EpidemicCard = Card{city: NoCity, epidemic: true}

func CityCard(c City) Card {
	return Card{city: c}
}

func (c Card) IsEpidemic() bool {
	return c.epidemic
}

// City returns the card's city, or NoCity for an epidemic.
func (c Card) City() City {
	return c.city
}

func (c Card) Color() Color {
	return c.city.Color()
}

func (c Card) String() string {
	if c.epidemic {
		return "Epidemic"
	}
	return c.city.String()
}

// CityCards returns one card per city in index order.
func CityCards() []Card {
	cards := make([]Card, 0, NumCities)
	for _, c := range Cities() {
		cards = append(cards, CityCard(c))
	}
	return cards
}
