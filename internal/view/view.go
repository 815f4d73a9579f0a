// Package view renders review state for the terminal. It holds no state of
// its own; everything is read from the session on each render.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpauljoseph/cardflip/internal/review"
	"github.com/kpauljoseph/cardflip/internal/session"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

// Style is how a tier is shown: its label and its colour.
type Style struct {
	Label string
	Color lipgloss.Color
}

func (s Style) Render(text string) string {
	return lipgloss.NewStyle().Foreground(s.Color).Render(text)
}

var palette = map[models.Tier]Style{
	models.Easy:   {Label: "EASY", Color: lipgloss.Color("#FFFFFF")},
	models.Medium: {Label: "MEDIUM", Color: lipgloss.Color("#FFA500")},
	models.Hard:   {Label: "HARD", Color: lipgloss.Color("#FF3B30")},
}

var (
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD54F"))
	messageStyle = lipgloss.NewStyle().Italic(true)
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(48)
)

// StyleFor returns the style of tier. Unknown tiers get their String form
// and no colour.
func StyleFor(tier models.Tier) Style {
	if style, ok := palette[tier]; ok {
		return style
	}
	return Style{Label: tier.String()}
}

const (
	MsgFirstCard      = "This is the first card."
	MsgAllCompleted   = "You have completed all levels!"
	MsgNoCards        = "No cards available."
	MsgNoCardsInLevel = "No cards available for this level."
	MsgAdded          = "Card added."
	MsgEdited         = "Card updated."
	MsgDeleted        = "Card deleted."
)

// Message returns the text shown for an outcome, or "" when the card itself
// says enough.
func Message(outcome review.Outcome) string {
	switch outcome {
	case review.FirstCard:
		return MsgFirstCard
	case review.AllLevelsCompleted:
		return MsgAllCompleted
	case review.NoCards:
		return MsgNoCards
	case review.Added:
		return MsgAdded
	case review.Edited:
		return MsgEdited
	case review.Deleted:
		return MsgDeleted
	}
	return ""
}

func Progress(s *session.Session) string {
	current, total := s.Position()
	return fmt.Sprintf("Card %d of %d", current, total)
}

// Header is the tier label followed by the progress line.
func Header(s *session.Session) string {
	style := StyleFor(s.Tier())
	return fmt.Sprintf("[%s]  %s", style.Render(style.Label), Progress(s))
}

// Card draws the visible face of the current card.
func Card(s *session.Session) string {
	card, ok := s.CurrentCard()
	if !ok {
		return cardStyle.Render(MsgNoCardsInLevel)
	}

	if s.ShowingQuestion() {
		style := StyleFor(s.Tier())
		return cardStyle.BorderForeground(style.Color).Render("Q: " + style.Render(card.Question))
	}
	return cardStyle.BorderForeground(answerStyle.GetForeground()).Render("A: " + answerStyle.Render(card.Answer))
}

// Screen is the whole review screen: header, card and an optional message.
func Screen(s *session.Session, message string) string {
	var b strings.Builder
	b.WriteString(Header(s))
	b.WriteString("\n")
	b.WriteString(Card(s))
	b.WriteString("\n")
	if message != "" {
		b.WriteString(messageStyle.Render(message))
		b.WriteString("\n")
	}
	return b.String()
}

// Counts lists how many cards each tier of the deck holds.
func Counts(counts map[models.Tier]int) string {
	var b strings.Builder
	for _, t := range models.Progression {
		fmt.Fprintf(&b, "%-8s %d\n", StyleFor(t).Label, counts[t])
	}
	return b.String()
}
