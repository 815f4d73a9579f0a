package review

import (
	"errors"
	"fmt"

	"github.com/kpauljoseph/cardflip/internal/deck"
	"github.com/kpauljoseph/cardflip/internal/session"
	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

// Outcome is what a command did, for the front end to turn into text.
type Outcome int

const (
	Shown Outcome = iota + 1
	FirstCard
	TierAdvanced
	AllLevelsCompleted
	Added
	Edited
	Deleted
	NoCards
)

func (o Outcome) String() string {
	switch o {
	case Shown:
		return "Shown"
	case FirstCard:
		return "FirstCard"
	case TierAdvanced:
		return "TierAdvanced"
	case AllLevelsCompleted:
		return "AllLevelsCompleted"
	case Added:
		return "Added"
	case Edited:
		return "Edited"
	case Deleted:
		return "Deleted"
	case NoCards:
		return "NoCards"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Controller owns the deck and the session and moves the session on to the
// next tier once the current one runs out.
type Controller struct {
	deck    *deck.Deck
	session *session.Session
	logger  *logger.Logger
}

func NewController(d *deck.Deck, start models.Tier, logger *logger.Logger, options ...session.Option) (*Controller, error) {
	if !start.IsValid() {
		return nil, fmt.Errorf("invalid start tier: %v", start)
	}

	c := &Controller{
		deck:    d,
		session: session.New(d, options...),
		logger:  logger,
	}
	c.load(start)
	return c, nil
}

func (c *Controller) Session() *session.Session {
	return c.session
}

func (c *Controller) Deck() *deck.Deck {
	return c.deck
}

// Next shows the following card. At the end of a tier, or on an empty one,
// it loads the next tier; after Hard it reports AllLevelsCompleted and leaves
// the session where it is.
func (c *Controller) Next() Outcome {
	switch result := c.session.Next(); result {
	case session.Advanced:
		c.logger.Trace("Advanced to card %d of %d", c.position(), c.session.Len())
		return Shown
	case session.TierExhausted, session.Empty:
		tier := c.session.Tier()
		next, ok := models.NextTier(tier)
		if !ok {
			c.logger.Debug("All tiers completed (last tier %s, result %s)", tier, result)
			return AllLevelsCompleted
		}
		c.logger.Debug("Tier %s finished, moving to %s", tier, next)
		c.load(next)
		return TierAdvanced
	default:
		return Shown
	}
}

func (c *Controller) Prev() Outcome {
	switch c.session.Prev() {
	case session.Moved:
		return Shown
	case session.Empty:
		return NoCards
	default:
		return FirstCard
	}
}

func (c *Controller) Flip() Outcome {
	if c.session.Len() == 0 {
		return NoCards
	}
	c.session.Flip()
	return Shown
}

func (c *Controller) Add(question, answer string) Outcome {
	card := c.session.AddCard(question, answer)
	c.logger.Debug("Added card %s to tier %s", card.ID, card.Difficulty)
	return Added
}

func (c *Controller) Edit(question, answer string) (Outcome, error) {
	if err := c.session.EditCurrent(question, answer); err != nil {
		if errors.Is(err, session.ErrEmptySession) {
			return NoCards, nil
		}
		return 0, err
	}
	c.logger.Debug("Edited card %d of %d", c.position(), c.session.Len())
	return Edited, nil
}

func (c *Controller) Delete() (Outcome, error) {
	card, err := c.session.DeleteCurrent()
	if err != nil {
		if errors.Is(err, session.ErrEmptySession) {
			return NoCards, nil
		}
		return 0, err
	}
	c.logger.Debug("Deleted card %s, %d left in tier %s", card.ID, c.session.Len(), c.session.Tier())
	return Deleted, nil
}

func (c *Controller) load(tier models.Tier) {
	c.session.LoadTier(tier)
	c.logger.Info("Loaded %d %s cards", c.session.Len(), tier)
}

func (c *Controller) position() int {
	current, _ := c.session.Position()
	return current
}
