package game

import (
	"fmt"
	"math"
	"slices"

	"golang.org/x/exp/rand"
)

// Deck is the read side shared by the player deck and the infection pile.
type Deck interface {
	// Len is the number of cards left to draw, excluding the discard pile.
	Len() int
	// Count is the number of cards equal to card left to draw.
	Count(card Card) int
	Discarded() []Card
}

// Probability of card being the next draw: matching cards left over cards
// left. Partition structure is ignored once cards have been drawn.
func Probability(d Deck, card Card) float64 {
	if d.Len() == 0 {
		return 0
	}
	return float64(d.Count(card)) / float64(d.Len())
}

// ProbabilityWithin treats the next n draws as independent trials:
// 1 - (1 - p)^n. It is an approximation, not without-replacement odds.
func ProbabilityWithin(d Deck, card Card, n int) float64 {
	if n <= 0 {
		return 0
	}
	p := Probability(d, card)
	return 1 - math.Pow(1-p, float64(n))
}

// ProbabilityAllWithin multiplies each card's independent ProbabilityWithin,
// and is 0 when more cards are asked for than will be drawn.
func ProbabilityAllWithin(d Deck, cards []Card, n int) float64 {
	if len(cards) > n {
		return 0
	}
	p := 1.0
	for _, card := range cards {
		p *= ProbabilityWithin(d, card, n)
	}
	return p
}

func shuffle(cards []Card, rng *rand.Rand) {
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}

func countIn(cards []Card, card Card) int {
	n := 0
	for _, c := range cards {
		if c == card {
			n++
		}
	}
	return n
}

// PlayerDeck is the player draw pile. The top of the deck is the end of cards.
type PlayerDeck struct {
	cards   []Card
	discard []Card
}

// NewPlayerDeck splits cards into one partition per epidemic, adds an
// epidemic to each partition, shuffles the partitions independently and
// stacks them, which spaces the epidemics through the deck. Leftover cards
// from an uneven split go to the first partitions.
func NewPlayerDeck(cards []Card, epidemics int, rng *rand.Rand) PlayerDeck {
	if epidemics <= 0 {
		deck := slices.Clone(cards)
		shuffle(deck, rng)
		return PlayerDeck{cards: deck}
	}

	deck := make([]Card, 0, len(cards)+epidemics)
	size, extra := len(cards)/epidemics, len(cards)%epidemics
	start := 0
	for i := 0; i < epidemics; i++ {
		end := start + size
		if i < extra {
			end++
		}
		partition := make([]Card, 0, end-start+1)
		partition = append(partition, cards[start:end]...)
		partition = append(partition, EpidemicCard)
		shuffle(partition, rng)
		deck = append(deck, partition...)
		start = end
	}
	return PlayerDeck{cards: deck}
}

func (d PlayerDeck) Len() int {
	return len(d.cards)
}

func (d PlayerDeck) Count(card Card) int {
	return countIn(d.cards, card)
}

func (d PlayerDeck) Discarded() []Card {
	return d.discard
}

// Draw pops n cards from the top; the first card returned is the top card.
func (d PlayerDeck) Draw(n int) ([]Card, PlayerDeck, error) {
	if n < 0 || n > len(d.cards) {
		return nil, d, fmt.Errorf("%w: drawing %d from a deck of %d", ErrInsufficientCards, n, len(d.cards))
	}
	drawn := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		drawn = append(drawn, d.cards[len(d.cards)-1-i])
	}
	d.cards = slices.Clip(d.cards[:len(d.cards)-n])
	return drawn, d, nil
}

func (d PlayerDeck) Discard(cards ...Card) PlayerDeck {
	d.discard = append(slices.Clip(d.discard), cards...)
	return d
}

// InfectionPile is a sequence of piles drawn front pile first, plus a discard
// pile. Epidemics restack the discard pile as a new front pile.
type InfectionPile struct {
	piles   [][]Card
	discard []Card
}

// NewInfectionPile shuffles cards into a single pile.
func NewInfectionPile(cards []Card, rng *rand.Rand) InfectionPile {
	pile := slices.Clone(cards)
	shuffle(pile, rng)
	return InfectionPile{piles: [][]Card{pile}}
}

func (p InfectionPile) Len() int {
	n := 0
	for _, pile := range p.piles {
		n += len(pile)
	}
	return n
}

func (p InfectionPile) Count(card Card) int {
	n := 0
	for _, pile := range p.piles {
		n += countIn(pile, card)
	}
	return n
}

func (p InfectionPile) Discarded() []Card {
	return p.discard
}

// Piles returns the piles front first. The slices are shared and must not be modified.
func (p InfectionPile) Piles() [][]Card {
	return p.piles
}

// Draw takes n cards from the front of the front pile, moving on to the
// next pile as each empties.
func (p InfectionPile) Draw(n int) ([]Card, InfectionPile, error) {
	if n < 0 || n > p.Len() {
		return nil, p, fmt.Errorf("%w: drawing %d from an infection pile of %d", ErrInsufficientCards, n, p.Len())
	}
	piles := slices.Clone(p.piles)
	drawn := make([]Card, 0, n)
	for len(drawn) < n {
		if len(piles[0]) == 0 {
			piles = piles[1:]
			continue
		}
		take := min(n-len(drawn), len(piles[0]))
		drawn = append(drawn, piles[0][:take]...)
		piles[0] = piles[0][take:]
	}
	p.piles = dropEmpty(piles)
	return drawn, p, nil
}

func (p InfectionPile) Discard(cards ...Card) InfectionPile {
	p.discard = append(slices.Clip(p.discard), cards...)
	return p
}

// Epidemic draws the bottommost card, then shuffles the discard pile together
// with it and pushes the result as the new front pile. The card is returned
// as drawn, even if it is an epidemic; the caller decides what that means.
func (p InfectionPile) Epidemic(rng *rand.Rand) (Card, InfectionPile, error) {
	piles := dropEmpty(slices.Clone(p.piles))
	if len(piles) == 0 {
		return Card{}, p, fmt.Errorf("%w: infection pile is empty", ErrInsufficientCards)
	}

	last := piles[len(piles)-1]
	card := last[len(last)-1]
	piles[len(piles)-1] = slices.Clip(last[:len(last)-1])
	piles = dropEmpty(piles)

	restack := make([]Card, 0, len(p.discard)+1)
	restack = append(restack, p.discard...)
	restack = append(restack, card)
	shuffle(restack, rng)

	p.piles = append([][]Card{restack}, piles...)
	p.discard = nil
	return card, p, nil
}

func dropEmpty(piles [][]Card) [][]Card {
	kept := piles[:0:0]
	for _, pile := range piles {
		if len(pile) > 0 {
			kept = append(kept, pile)
		}
	}
	return kept
}
