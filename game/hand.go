package game

import (
	"fmt"
	"slices"

	"pandemic/utils"
)

// HandLimit is the most cards a pawn may keep; the board forces discards
// above it, Hand itself does not.
const HandLimit = 7

// Hand is the ordered set of cards held by one pawn. Operations return a new Hand.
type Hand []Card

func (h Hand) Contains(card Card) bool {
	return utils.FindIndex(h, card) >= 0
}

// AtLimit reports whether the hand holds more cards than HandLimit.
func (h Hand) AtLimit() bool {
	return len(h) > HandLimit
}

func (h Hand) Add(cards ...Card) Hand {
	return append(slices.Clip(h), cards...)
}

// Remove drops the first copy of each card, failing without changes if any is missing.
func (h Hand) Remove(cards ...Card) (Hand, error) {
	out := slices.Clone(h)
	for _, card := range cards {
		i := utils.FindIndex(out, card)
		if i < 0 {
			return h, fmt.Errorf("%w: %s not in hand", ErrInsufficientCards, card)
		}
		out = slices.Delete(out, i, i+1)
	}
	return out, nil
}

// OfColor returns the city cards of color in hand order.
func (h Hand) OfColor(color Color) []Card {
	var cards []Card
	for _, card := range h {
		if !card.IsEpidemic() && card.Color() == color {
			cards = append(cards, card)
		}
	}
	return cards
}
