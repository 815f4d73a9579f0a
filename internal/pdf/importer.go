package pdf

import (
	"context"
	"fmt"

	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
	"github.com/kpauljoseph/cardflip/pkg/utils"
)

// Importer turns flashcard pages of PDF notes into text cards. A page is a
// flashcard when it has the configured size and carries QUESTION and ANSWER
// markers. Cards whose content was already imported by this Importer, from
// any PDF, are skipped.
type Importer struct {
	flashcardSize PageDimensions
	defaultTier   models.Tier
	open          Opener
	logger        *logger.Logger
	seen          map[string]bool
}

type ImporterOption func(*Importer)

// WithOpener replaces the fitz based PDF reader.
func WithOpener(open Opener) ImporterOption {
	return func(i *Importer) {
		i.open = open
	}
}

func NewImporter(flashcardSize PageDimensions, defaultTier models.Tier, logger *logger.Logger, options ...ImporterOption) *Importer {
	i := &Importer{
		flashcardSize: flashcardSize,
		defaultTier:   defaultTier,
		open:          FitzOpener(logger),
		logger:        logger,
		seen:          make(map[string]bool),
	}

	for _, opt := range options {
		opt(i)
	}

	return i
}

func (i *Importer) ImportPDF(ctx context.Context, pdfPath string) ([]*models.Card, error) {
	i.logger.Debug("Importing PDF: %s", pdfPath)

	doc, err := i.open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	var cards []*models.Card

	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		width, height, err := doc.PageSize(pageNum)
		if err != nil {
			return nil, fmt.Errorf("failed to get bounds for page %d: %w", pageNum, err)
		}

		i.logger.Trace("Page %d dimensions: %.2f x %.2f", pageNum, width, height)

		if !i.flashcardSize.Matches(width, height) {
			continue
		}

		text, err := doc.Text(pageNum)
		if err != nil {
			i.logger.Warn("Couldn't extract text from page %d of %s: %v", pageNum, pdfPath, err)
			continue
		}

		parsed, ok := ParseFlashcardText(text, i.defaultTier)
		if !ok {
			continue
		}

		hash := utils.ContentHash(parsed.Question, parsed.Answer)
		if i.seen[hash] {
			i.logger.Debug("Skipping duplicate flashcard on page %d", pageNum)
			continue
		}
		i.seen[hash] = true

		i.logger.Debug("Found %s flashcard on page %d", parsed.Difficulty, pageNum)
		cards = append(cards, models.NewCard(parsed.Question, parsed.Answer, parsed.Difficulty))
	}

	return cards, nil
}
