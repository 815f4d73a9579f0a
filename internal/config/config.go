package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kpauljoseph/cardflip/internal/pdf"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

type Config struct {
	CardBank       string      `yaml:"card_bank"`
	IncludeBuiltin *bool       `yaml:"include_builtin"`
	StartTier      models.Tier `yaml:"start_tier"`
	PDFSourceDir   string      `yaml:"pdf_source_dir"`
	PDFDefaultTier models.Tier `yaml:"pdf_default_tier"`
	FlashcardSize  struct {
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	} `yaml:"flashcard_size"`
}

// Default is the configuration used when no file is given.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// UseBuiltin reports whether the built-in cards are part of the deck. They
// are dropped only when a card bank is set and include_builtin is false.
func (c *Config) UseBuiltin() bool {
	if c.CardBank == "" || c.IncludeBuiltin == nil {
		return true
	}
	return *c.IncludeBuiltin
}

func (c *Config) applyDefaults() {
	if !c.StartTier.IsValid() {
		c.StartTier = models.Easy
	}
	if !c.PDFDefaultTier.IsValid() {
		c.PDFDefaultTier = models.Medium
	}
	if c.FlashcardSize.Width == 0 {
		c.FlashcardSize.Width = pdf.GoodnotesPtWidth
	}
	if c.FlashcardSize.Height == 0 {
		c.FlashcardSize.Height = pdf.GoodnotesPtHeight
	}
}
