package session

import (
	"math/rand/v2"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

// ShuffleFunc returns a permutation of cards without modifying its input.
type ShuffleFunc func(cards []*models.Card) []*models.Card

// Shuffle returns a uniformly random permutation of cards.
func Shuffle(cards []*models.Card) []*models.Card {
	out := make([]*models.Card, len(cards))
	copy(out, cards)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// InOrder keeps the deck order. Useful when a reproducible order is needed.
func InOrder(cards []*models.Card) []*models.Card {
	out := make([]*models.Card, len(cards))
	copy(out, cards)
	return out
}
