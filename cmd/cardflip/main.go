package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/kpauljoseph/cardflip/internal/bank"
	"github.com/kpauljoseph/cardflip/internal/config"
	"github.com/kpauljoseph/cardflip/internal/deck"
	"github.com/kpauljoseph/cardflip/internal/pdf"
	"github.com/kpauljoseph/cardflip/internal/review"
	"github.com/kpauljoseph/cardflip/internal/scanner"
	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
	"github.com/kpauljoseph/cardflip/pkg/version"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	cardBank := flag.String("cards", "", "YAML card bank (overrides config)")
	pdfDir := flag.String("pdf-dir", "", "directory of flashcard PDFs to import (overrides config)")
	startTier := flag.String("tier", "", "level to start at: easy, medium or hard (overrides config)")
	noColor := flag.Bool("no-color", false, "disable coloured output")
	verbose := flag.Bool("verbose", false, "enable verbose logging")
	debug := flag.Bool("debug", false, "enable debug mode with trace logging")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Print(version.GetDetailedVersionInfo())
		return
	}

	log := logger.New(logger.WithPrefix("[cardflip] "))
	log.SetVerbose(*verbose)

	if *debug {
		log.SetLevel(logger.LevelTrace)
	}

	log.Debug("%s", version.GetVersionInfo())

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal("Error loading config: %v", err)
		}
	}

	if *cardBank != "" {
		cfg.CardBank = *cardBank
	}
	if *pdfDir != "" {
		cfg.PDFSourceDir = *pdfDir
	}
	if *startTier != "" {
		tier, err := models.ParseTier(*startTier)
		if err != nil {
			log.Fatal("Bad -tier flag: %v", err)
		}
		cfg.StartTier = tier
	}

	d, err := buildDeck(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Error building deck: %v", err)
	}
	log.Info("Deck ready with %d cards", d.Len())

	ctrl, err := review.NewController(d, cfg.StartTier, log)
	if err != nil {
		log.Fatal("Error starting review: %v", err)
	}

	if *noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if _, err := tea.NewProgram(newModel(ctrl)).Run(); err != nil {
		log.Fatal("Error running review: %v", err)
	}
}

func buildDeck(ctx context.Context, cfg *config.Config, log *logger.Logger) (*deck.Deck, error) {
	d := deck.New()

	if cfg.UseBuiltin() {
		for _, card := range bank.Builtin() {
			d.Add(card)
		}
	}

	if cfg.CardBank != "" {
		cards, err := bank.LoadFile(cfg.CardBank, log)
		if err != nil {
			return nil, err
		}
		for _, card := range cards {
			d.Add(card)
		}
	}

	if cfg.PDFSourceDir != "" {
		if _, err := os.Stat(cfg.PDFSourceDir); err != nil {
			return nil, fmt.Errorf("PDF directory does not exist: %s", cfg.PDFSourceDir)
		}

		importer := pdf.NewImporter(
			pdf.PageDimensions{
				Width:  cfg.FlashcardSize.Width,
				Height: cfg.FlashcardSize.Height,
			},
			cfg.PDFDefaultTier,
			log,
		)

		log.Info("Scanning directory: %s", cfg.PDFSourceDir)
		cards, stats, err := scanner.New(log).ImportDirectory(ctx, cfg.PDFSourceDir, importer)
		if err != nil {
			return nil, fmt.Errorf("failed to import PDFs: %w", err)
		}
		log.Info("Imported %d flashcards from %d PDFs (%d failed)", stats.CardCount, stats.PDFCount, stats.FailedCount)

		for _, card := range cards {
			d.Add(card)
		}
	}

	return d, nil
}
