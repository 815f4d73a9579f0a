package session

import (
	"errors"
	"fmt"

	"github.com/kpauljoseph/cardflip/pkg/models"
)

// ErrEmptySession is returned by edits and deletes when no card is showing.
var ErrEmptySession = errors.New("session: no current card")

// Store is the part of a deck a session works against.
type Store interface {
	Add(card *models.Card)
	Remove(card *models.Card) error
	FilterByTier(tier models.Tier) []*models.Card
}

// Result reports how a cursor move ended. Only Advanced and Moved change the
// cursor; the rest are boundaries the caller decides what to do with.
type Result int

const (
	Advanced Result = iota + 1
	Moved
	AtStart
	TierExhausted
	Empty
)

var resultNames = [...]string{
	Advanced:      "Advanced",
	Moved:         "Moved",
	AtStart:       "AtStart",
	TierExhausted: "TierExhausted",
	Empty:         "Empty",
}

func (r Result) String() string {
	if r >= Advanced && r <= Empty {
		return resultNames[r]
	}
	return fmt.Sprintf("Result(%d)", int(r))
}

const noCursor = -1

// Session is the review state for one tier: the shuffled working set, the
// cursor into it and which face of the current card is showing.
//
// Whenever working is non-empty the cursor is a valid index into it;
// otherwise it is noCursor. A Session is not safe for concurrent use.
type Session struct {
	store   Store
	shuffle ShuffleFunc

	tier            models.Tier
	working         []*models.Card
	cursor          int
	showingQuestion bool
}

type Option func(*Session)

// WithShuffle replaces the random shuffle, mostly for tests.
func WithShuffle(fn ShuffleFunc) Option {
	return func(s *Session) {
		s.shuffle = fn
	}
}

// New creates a session over store. Call LoadTier before use.
func New(store Store, options ...Option) *Session {
	s := &Session{
		store:           store,
		shuffle:         Shuffle,
		cursor:          noCursor,
		showingQuestion: true,
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// LoadTier replaces the working set with a fresh shuffle of tier's cards and
// resets the cursor to the first of them.
func (s *Session) LoadTier(tier models.Tier) {
	s.tier = tier
	s.working = s.shuffle(s.store.FilterByTier(tier))
	s.cursor = noCursor
	if len(s.working) > 0 {
		s.cursor = 0
	}
	s.showingQuestion = true
}

func (s *Session) Next() Result {
	switch {
	case len(s.working) == 0:
		return Empty
	case s.cursor >= len(s.working)-1:
		return TierExhausted
	}
	s.cursor++
	s.showingQuestion = true
	return Advanced
}

func (s *Session) Prev() Result {
	switch {
	case len(s.working) == 0:
		return Empty
	case s.cursor == 0:
		return AtStart
	}
	s.cursor--
	s.showingQuestion = true
	return Moved
}

// Flip toggles between question and answer. It does nothing on an empty
// working set.
func (s *Session) Flip() {
	if len(s.working) == 0 {
		return
	}
	s.showingQuestion = !s.showingQuestion
}

func (s *Session) CurrentCard() (*models.Card, bool) {
	if s.cursor == noCursor {
		return nil, false
	}
	return s.working[s.cursor], true
}

// AddCard creates a card in the current tier, reshuffles the tier and moves
// the cursor onto the new card.
func (s *Session) AddCard(question, answer string) *models.Card {
	card := models.NewCard(question, answer, s.tier)
	s.store.Add(card)
	s.LoadTier(s.tier)

	for i, c := range s.working {
		if c.ID == card.ID {
			s.cursor = i
			break
		}
	}
	return card
}

// EditCurrent changes the content of the current card in place and turns it
// back to the question. Order and cursor are untouched.
func (s *Session) EditCurrent(question, answer string) error {
	card, ok := s.CurrentCard()
	if !ok {
		return ErrEmptySession
	}
	card.SetContent(question, answer)
	s.showingQuestion = true
	return nil
}

// DeleteCurrent removes the current card from the working set and the store.
// The cursor stays on the same index, or the last one if the removed card was
// at the end.
func (s *Session) DeleteCurrent() (*models.Card, error) {
	card, ok := s.CurrentCard()
	if !ok {
		return nil, ErrEmptySession
	}
	if err := s.store.Remove(card); err != nil {
		return nil, fmt.Errorf("failed to remove card %s: %w", card.ID, err)
	}

	s.working = append(s.working[:s.cursor], s.working[s.cursor+1:]...)
	switch {
	case len(s.working) == 0:
		s.cursor = noCursor
	case s.cursor >= len(s.working):
		s.cursor = len(s.working) - 1
	}
	s.showingQuestion = true
	return card, nil
}

func (s *Session) Tier() models.Tier {
	return s.tier
}

func (s *Session) ShowingQuestion() bool {
	return s.showingQuestion
}

// Cursor returns the current index and false when the working set is empty.
func (s *Session) Cursor() (int, bool) {
	return s.cursor, s.cursor != noCursor
}

// Position returns the 1-based position of the current card and the size of
// the working set, or (0, 0) when it is empty.
func (s *Session) Position() (current, total int) {
	if s.cursor == noCursor {
		return 0, 0
	}
	return s.cursor + 1, len(s.working)
}

func (s *Session) Len() int {
	return len(s.working)
}

func (s *Session) Working() []*models.Card {
	out := make([]*models.Card, len(s.working))
	copy(out, s.working)
	return out
}
