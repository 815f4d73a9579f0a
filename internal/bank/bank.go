package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

type entry struct {
	Question   string      `yaml:"question"`
	Answer     string      `yaml:"answer"`
	Difficulty models.Tier `yaml:"difficulty"`
}

type file struct {
	Cards []entry `yaml:"cards"`
}

var builtin = []entry{
	{"What is the capital of France?", "Paris", models.Easy},
	{"How many days are in a leap year?", "366", models.Easy},
	{"What colour do you get by mixing blue and yellow?", "Green", models.Easy},
	{"What is the chemical symbol for gold?", "Au", models.Medium},
	{"Who wrote 'Pride and Prejudice'?", "Jane Austen", models.Medium},
	{"What is the largest planet in the solar system?", "Jupiter", models.Medium},
	{"What is the speed of light in a vacuum, in km/s?", "About 299,792 km/s", models.Hard},
	{"In which year did the Byzantine Empire fall?", "1453", models.Hard},
	{"What is the derivative of ln(x)?", "1/x", models.Hard},
}

// Builtin returns fresh copies of the cards shipped with the app.
func Builtin() []*models.Card {
	return toCards(builtin)
}

// LoadFile reads a YAML card bank:
//
//	cards:
//	  - question: What is 2+2?
//	    answer: "4"
//	    difficulty: EASY
func LoadFile(path string, log *logger.Logger) ([]*models.Card, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read card bank: %w", err)
	}

	cards, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse card bank %s: %w", path, err)
	}

	log.Debug("Loaded %d cards from %s", len(cards), path)
	return cards, nil
}

func Parse(data []byte) ([]*models.Card, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	for i, e := range f.Cards {
		if !e.Difficulty.IsValid() {
			return nil, fmt.Errorf("card %d (%q): missing difficulty", i+1, e.Question)
		}
	}

	return toCards(f.Cards), nil
}

func toCards(entries []entry) []*models.Card {
	cards := make([]*models.Card, 0, len(entries))
	for _, e := range entries {
		cards = append(cards, models.NewCard(e.Question, e.Answer, e.Difficulty))
	}
	return cards
}
