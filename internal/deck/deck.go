package deck

import (
	"errors"

	"github.com/google/uuid"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

// ErrCardNotFound is returned by Remove when the card is not in the deck.
var ErrCardNotFound = errors.New("deck: card not found")

// Deck holds every card of a run in insertion order. It is not safe for
// concurrent use.
type Deck struct {
	cards []*models.Card
}

func New(cards ...*models.Card) *Deck {
	d := &Deck{}
	for _, c := range cards {
		d.Add(c)
	}
	return d
}

// Add appends card. Nil cards and cards already present are ignored.
func (d *Deck) Add(card *models.Card) {
	if card == nil || d.indexOf(card.ID) >= 0 {
		return
	}
	d.cards = append(d.cards, card)
}

// Remove deletes card by identity and returns ErrCardNotFound if it is absent.
func (d *Deck) Remove(card *models.Card) error {
	if card == nil {
		return ErrCardNotFound
	}
	i := d.indexOf(card.ID)
	if i < 0 {
		return ErrCardNotFound
	}
	d.cards = append(d.cards[:i], d.cards[i+1:]...)
	return nil
}

func (d *Deck) Find(id uuid.UUID) (*models.Card, bool) {
	if i := d.indexOf(id); i >= 0 {
		return d.cards[i], true
	}
	return nil, false
}

// FilterByTier returns the cards of the given tier in deck order. The result
// is a fresh slice and is empty, never nil, when nothing matches.
func (d *Deck) FilterByTier(tier models.Tier) []*models.Card {
	out := make([]*models.Card, 0, len(d.cards))
	for _, c := range d.cards {
		if c.Difficulty == tier {
			out = append(out, c)
		}
	}
	return out
}

func (d *Deck) CountByTier() map[models.Tier]int {
	counts := make(map[models.Tier]int, len(models.Progression))
	for _, t := range models.Progression {
		counts[t] = 0
	}
	for _, c := range d.cards {
		counts[c.Difficulty]++
	}
	return counts
}

func (d *Deck) Cards() []*models.Card {
	out := make([]*models.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func (d *Deck) Len() int {
	return len(d.cards)
}

func (d *Deck) indexOf(id uuid.UUID) int {
	for i, c := range d.cards {
		if c.ID == id {
			return i
		}
	}
	return -1
}
