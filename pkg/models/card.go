package models

import (
	"github.com/google/uuid"
)

// Card is a question/answer pair. ID is assigned once and never changes, so
// two cards with identical text remain distinguishable.
type Card struct {
	ID         uuid.UUID `json:"id" yaml:"-"`
	Question   string    `json:"question" yaml:"question"`
	Answer     string    `json:"answer" yaml:"answer"`
	Difficulty Tier      `json:"difficulty" yaml:"difficulty"`
}

func NewCard(question, answer string, difficulty Tier) *Card {
	return &Card{
		ID:         uuid.New(),
		Question:   question,
		Answer:     answer,
		Difficulty: difficulty,
	}
}

// SetContent replaces the question and answer. The tier is left alone.
func (c *Card) SetContent(question, answer string) {
	c.Question = question
	c.Answer = answer
}
