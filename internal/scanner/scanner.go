package scanner

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kpauljoseph/cardflip/internal/pdf"
	"github.com/kpauljoseph/cardflip/pkg/logger"
	"github.com/kpauljoseph/cardflip/pkg/models"
)

type PDFFile struct {
	AbsolutePath string
	RelativePath string
}

type Stats struct {
	PDFCount    int
	FailedCount int
	CardCount   int
}

type DirectoryScanner struct {
	logger *logger.Logger
}

func New(logger *logger.Logger) *DirectoryScanner {
	return &DirectoryScanner{
		logger: logger,
	}
}

// FindPDFs walks dir and returns every .pdf file below it.
func (s *DirectoryScanner) FindPDFs(ctx context.Context, dir string) ([]PDFFile, error) {
	var pdfs []PDFFile

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			return fmt.Errorf("error accessing path %s: %w", path, err)
		}

		if entry.IsDir() {
			s.logger.Trace("Scanning directory: %s", path)
			return nil
		}

		if !strings.EqualFold(filepath.Ext(path), ".pdf") {
			return nil
		}

		absPath, err := filepath.Abs(path)
		if err != nil {
			absPath = path
		}
		relPath, err := filepath.Rel(dir, path)
		if err != nil {
			relPath = path
		}

		pdfs = append(pdfs, PDFFile{AbsolutePath: absPath, RelativePath: relPath})
		return nil
	})

	if err != nil {
		return nil, err
	}

	if len(pdfs) == 0 {
		return nil, fmt.Errorf("no PDF files found in %s or its subdirectories", dir)
	}

	return pdfs, nil
}

// ImportDirectory imports cards from every PDF below dir. A PDF that fails to
// import is logged and skipped; only cancellation and walk errors abort.
func (s *DirectoryScanner) ImportDirectory(ctx context.Context, dir string, importer pdf.CardImporter) ([]*models.Card, Stats, error) {
	var stats Stats

	pdfs, err := s.FindPDFs(ctx, dir)
	if err != nil {
		return nil, stats, err
	}

	var cards []*models.Card
	for _, file := range pdfs {
		stats.PDFCount++

		imported, err := importer.ImportPDF(ctx, file.AbsolutePath)
		if err != nil {
			if ctx.Err() != nil {
				return nil, stats, ctx.Err()
			}
			stats.FailedCount++
			s.logger.Warn("Error importing %s: %v", file.RelativePath, err)
			continue
		}

		if len(imported) > 0 {
			s.logger.Info("Found %d flashcards in %s", len(imported), file.RelativePath)
		}
		stats.CardCount += len(imported)
		cards = append(cards, imported...)
	}

	return cards, stats, nil
}
